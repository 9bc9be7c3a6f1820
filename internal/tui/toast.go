package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/folio/internal/core/notify"
	"github.com/hay-kot/folio/internal/core/styles"
)

const (
	defaultToastTTL   = 3 * time.Second
	toastTickInterval = 250 * time.Millisecond
)

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastController holds the single toast shown in the footer. A newer
// notification replaces the current one.
type ToastController struct {
	current *notify.Notification
	ttl     time.Duration
	ticking bool
}

func NewToastController(ttl time.Duration) *ToastController {
	if ttl <= 0 {
		ttl = defaultToastTTL
	}
	return &ToastController{ttl: ttl}
}

// Push shows n, stamping CreatedAt when unset.
func (c *ToastController) Push(n notify.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	c.current = &n
}

// Tick drops the toast once it has been visible for the TTL at now.
func (c *ToastController) Tick(now time.Time) {
	if c.current != nil && c.current.Expired(now, c.ttl) {
		c.current = nil
	}
}

// Dismiss removes the toast.
func (c *ToastController) Dismiss() {
	c.current = nil
}

// Current returns the visible toast, if any.
func (c *ToastController) Current() (notify.Notification, bool) {
	if c.current == nil {
		return notify.Notification{}, false
	}
	return *c.current, true
}

// Ticking returns whether the expiry timer is running.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

// SetTicking sets the expiry timer state.
func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}

// View renders the toast, or "" when none is visible.
func (c *ToastController) View() string {
	n, ok := c.Current()
	if !ok {
		return ""
	}

	var style lipgloss.Style
	switch n.Level {
	case notify.LevelError:
		style = styles.ToastErrorStyle
	case notify.LevelWarning:
		style = styles.ToastWarningStyle
	default:
		style = styles.ToastInfoStyle
	}
	return style.Render(n.Message)
}

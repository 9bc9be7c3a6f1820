package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type typeTickMsg time.Time

// Typewriter reveals a line of text one rune per tick.
type Typewriter struct {
	text     []rune
	shown    int
	interval time.Duration
}

// NewTypewriter creates a typewriter for text. A non-positive interval shows
// the full text immediately.
func NewTypewriter(text string, interval time.Duration) *Typewriter {
	tw := &Typewriter{text: []rune(text), interval: interval}
	if interval <= 0 {
		tw.shown = len(tw.text)
	}
	return tw
}

// Done reports whether the full text is visible.
func (t *Typewriter) Done() bool {
	return t.shown >= len(t.text)
}

// Tick reveals one more rune. Returns true while more text remains.
func (t *Typewriter) Tick() bool {
	if t.Done() {
		return false
	}
	t.shown++
	return !t.Done()
}

// Skip reveals the remaining text at once.
func (t *Typewriter) Skip() {
	t.shown = len(t.text)
}

// View returns the visible portion.
func (t *Typewriter) View() string {
	return string(t.text[:t.shown])
}

// Schedule returns the next tick command, or nil once typing is done.
func (t *Typewriter) Schedule() tea.Cmd {
	if t.Done() {
		return nil
	}
	return tea.Tick(t.interval, func(ts time.Time) tea.Msg {
		return typeTickMsg(ts)
	})
}

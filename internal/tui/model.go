// Package tui implements the full-screen panel deck.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/hay-kot/folio/internal/content"
	"github.com/hay-kot/folio/internal/core/config"
	"github.com/hay-kot/folio/internal/core/eventbus"
	"github.com/hay-kot/folio/internal/core/gesture"
	"github.com/hay-kot/folio/internal/core/logging"
	"github.com/hay-kot/folio/internal/core/notify"
	"github.com/hay-kot/folio/internal/core/stack"
	"github.com/hay-kot/folio/pkg/executil"
	"github.com/hay-kot/folio/pkg/tmpl"
)

const (
	wheelScrollLines = 3
	openTimeout      = 10 * time.Second
)

type (
	frameTickMsg    time.Time
	notificationMsg notify.Notification
	openDoneMsg     struct{ err error }
)

// Options configures a Model.
type Options struct {
	Config  *config.Config
	Sources []content.Source
	Bus     *eventbus.EventBus // optional
	Start   int                // panel to open on

	// Clipboard writes text to the system clipboard. Defaults to atotto/clipboard.
	Clipboard func(string) error
	// Runner runs the contact opener command. Defaults to executil.Shell.
	Runner executil.Runner
}

// breadcrumb tracks the committed panel for the footer.
type breadcrumb struct {
	index int
	title string
}

// Model is the bubbletea model for the panel deck.
type Model struct {
	cfg    *config.Config
	keys   keyMap
	help   help.Model
	footer *tmpl.Template
	log    zerolog.Logger

	sched  *teaScheduler
	anim   *AnimationStore
	panels *PanelSet
	stack  *stack.Stack
	drag   *gesture.Drag
	wheel  *gesture.Wheel

	headline *Typewriter
	toasts   *ToastController
	crumb    *breadcrumb

	bus   *eventbus.EventBus
	notes chan notify.Notification

	clipboard func(string) error
	runner    executil.Runner

	width    int
	height   int
	dragY    int
	showHelp bool
}

// New builds the model and its panel stack.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	if len(opts.Sources) == 0 {
		return Model{}, stack.ErrNoPanels
	}

	footer, err := tmpl.Parse(cfg.TUI.Footer)
	if err != nil {
		return Model{}, fmt.Errorf("tui.footer: %w", err)
	}

	m := Model{
		cfg:       cfg,
		keys:      defaultKeyMap(),
		help:      help.New(),
		footer:    footer,
		log:       logging.Component("tui"),
		sched:     newTeaScheduler(),
		anim:      NewAnimationStore(cfg.Navigation.TransitionDuration, cfg.TUI.FrameInterval),
		panels:    NewPanelSet(opts.Sources, opts.Bus),
		headline:  NewTypewriter(cfg.TUI.Headline, cfg.TUI.TypingInterval),
		toasts:    NewToastController(defaultToastTTL),
		bus:       opts.Bus,
		clipboard: opts.Clipboard,
		runner:    opts.Runner,
	}
	if m.clipboard == nil {
		m.clipboard = clipboard.WriteAll
	}
	if m.runner == nil {
		m.runner = executil.Shell{}
	}
	if cfg.Contact.Email == "" {
		m.keys.Copy.SetEnabled(false)
		m.keys.Open.SetEnabled(false)
	}

	panels := make([]stack.Panel, len(opts.Sources))
	for i, src := range opts.Sources {
		panels[i] = stack.Panel{Title: src.Title, Content: src, Lazy: src.Lazy}
	}

	m.stack, err = stack.New(panels, stack.Deps{
		Renderer:  m.anim,
		Hydrator:  m.panels,
		Scroller:  m.panels,
		Scheduler: m.sched,
		Logger:    &m.log,
	}, stack.Options{TransitionDuration: cfg.Navigation.TransitionDuration})
	if err != nil {
		return Model{}, err
	}

	m.drag = gesture.NewDrag(m.stack, m.panels, gesture.DragConfig{
		Threshold:    cfg.Navigation.DragThreshold,
		PreviewScale: cfg.Navigation.PreviewScale,
	})
	m.wheel = gesture.NewWheel(m.stack, m.panels, m.drag, m.sched, gesture.WheelConfig{
		Threshold: cfg.Navigation.WheelThreshold,
		Debounce:  cfg.Navigation.WheelDebounce,
	})

	m.crumb = &breadcrumb{index: 0, title: m.panels.Title(0)}
	st, crumb, bus := m.stack, m.crumb, m.bus
	st.Subscribe(func(a stack.Activation) {
		p, _ := st.Panel(a.Current)
		crumb.index = a.Current
		crumb.title = p.Title
		if bus != nil {
			bus.PublishPanelActivated(eventbus.PanelActivatedPayload{
				Previous: a.Previous,
				Current:  a.Current,
				Title:    p.Title,
			})
		}
	})

	if bus != nil {
		m.notes = make(chan notify.Notification, 16)
		notes := m.notes
		bus.SubscribeNotificationPublished(func(p eventbus.NotificationPublishedPayload) {
			select {
			case notes <- notify.Notification{Level: p.Level, Message: p.Message}:
			default:
			}
		})
	}

	m.stack.Sync()

	if opts.Start != 0 {
		if opts.Start < 0 || opts.Start >= m.stack.Len() {
			return Model{}, fmt.Errorf("start panel %d out of range (1-%d)", opts.Start+1, m.stack.Len())
		}
		m.stack.Activate(opts.Start)
	}

	return m, nil
}

// Stack exposes the navigation state, mainly for the command that owns the program.
func (m Model) Stack() *stack.Stack {
	return m.stack
}

// Init starts the headline, notification listener and any pending timers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.flush(),
		m.headline.Schedule(),
		listenForNotification(m.notes),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	// Timers
	case timerFiredMsg:
		m.sched.Fire(msg.id)
		return m, m.flush()
	case frameTickMsg:
		return m.handleFrameTick()
	case typeTickMsg:
		m.headline.Tick()
		return m, m.headline.Schedule()
	case toastTickMsg:
		return m.handleToastTick(time.Time(msg))

	// Results
	case notificationMsg:
		m.toasts.Push(notify.Notification(msg))
		return m, tea.Batch(m.ensureToastTick(), listenForNotification(m.notes))
	case openDoneMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("open contact failed")
			m.toasts.Push(notify.Notification{Level: notify.LevelError, Message: "could not open mail client"})
			return m, m.ensureToastTick()
		}
		return m, nil

	// Input
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// flush hands queued scheduler ticks to the runtime and starts the frame
// timer when a transition began during this update.
func (m Model) flush() tea.Cmd {
	cmds := []tea.Cmd{m.sched.Drain()}
	if m.anim.Animating() && !m.anim.Ticking() {
		m.anim.SetTicking(true)
		cmds = append(cmds, m.scheduleFrame())
	}
	return tea.Batch(cmds...)
}

func (m Model) scheduleFrame() tea.Cmd {
	return tea.Tick(m.cfg.TUI.FrameInterval, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

func (m Model) ensureToastTick() tea.Cmd {
	if m.toasts.Ticking() {
		return nil
	}
	m.toasts.SetTicking(true)
	return scheduleToastTick()
}

func listenForNotification(ch <-chan notify.Notification) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return notificationMsg(n)
	}
}

func (m Model) openContact() tea.Cmd {
	data := config.OpenData{URL: "mailto:" + m.cfg.Contact.Email, Email: m.cfg.Contact.Email}
	cmdline, err := tmpl.Render(m.cfg.Contact.OpenCommand, data)
	if err != nil {
		return func() tea.Msg { return openDoneMsg{err: err} }
	}

	runner := m.runner
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
		defer cancel()
		return openDoneMsg{err: runner.RunSh(ctx, "", cmdline)}
	}
}

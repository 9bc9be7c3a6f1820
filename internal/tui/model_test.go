package tui

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/folio/internal/content"
	"github.com/hay-kot/folio/internal/core/config"
	"github.com/hay-kot/folio/internal/core/eventbus"
	"github.com/hay-kot/folio/internal/core/eventbus/testbus"
	"github.com/hay-kot/folio/internal/core/notify"
	"github.com/hay-kot/folio/pkg/executil"
	"github.com/hay-kot/folio/pkg/tuitest"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.TUI.Headline = ""
	return &cfg
}

func testSources() []content.Source {
	return []content.Source{
		{Title: "Home", Body: "home body"},
		{Title: "Work", Body: "work body"},
		{Title: "About", Body: "about body"},
		{Title: "Contact", Body: "contact body"},
	}
}

func newTestModel(t *testing.T, mutate ...func(*Options)) Model {
	t.Helper()
	opts := Options{Config: testConfig(t), Sources: testSources()}
	for _, fn := range mutate {
		fn(&opts)
	}

	m, err := New(opts)
	require.NoError(t, err)
	return update(t, m, tuitest.WindowSize(80, 24))
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

// settle fires every pending scheduler timer in creation order, including
// timers scheduled by earlier callbacks.
func settle(t *testing.T, m Model) Model {
	t.Helper()
	for m.sched.Pending() > 0 {
		ids := make([]uint64, 0, m.sched.Pending())
		for id := range m.sched.pending {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		m = update(t, m, timerFiredMsg{id: ids[0]})
	}
	return m
}

func press(t *testing.T, m Model, keys ...rune) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, tuitest.KeyPress(k))
	}
	return m
}

func TestModel_NextKeyTransitions(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, 'n')
	assert.True(t, m.stack.IsTransitioning())
	assert.Equal(t, 0, m.crumb.index, "breadcrumb moves on completion")

	m = settle(t, m)
	assert.False(t, m.stack.IsTransitioning())
	assert.Equal(t, 1, m.stack.Current())
	assert.Equal(t, 1, m.crumb.index)
	assert.Contains(t, tuitest.StripANSI(m.View()), "viewing Work (2/4)")
}

func TestModel_KeysIgnoredWhileLocked(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, 'n', 'n', 'n')
	m = settle(t, m)

	assert.Equal(t, 1, m.stack.Current())
}

func TestModel_DirectKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []rune
		want int
	}{
		{name: "jump", keys: []rune{'3'}, want: 2},
		{name: "jump out of range", keys: []rune{'9'}, want: 0},
		{name: "contact", keys: []rune{'c'}, want: 3},
		{name: "home", keys: []rune{'2', 'g'}, want: 0},
		{name: "back", keys: []rune{'3', 'p'}, want: 1},
		{name: "back skips to origin from last", keys: []rune{'c', 'p'}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			for _, k := range tt.keys {
				m = press(t, m, k)
				m = settle(t, m)
			}
			assert.Equal(t, tt.want, m.stack.Current())
		})
	}
}

func TestModel_WheelCommits(t *testing.T) {
	m := newTestModel(t)

	for range 3 {
		m = update(t, m, tuitest.WheelDown())
	}
	assert.False(t, m.stack.IsTransitioning(), "300 units is not past the threshold")

	m = update(t, m, tuitest.WheelDown())
	assert.True(t, m.stack.IsTransitioning())

	m = settle(t, m)
	assert.Equal(t, 1, m.stack.Current())
}

func TestModel_WheelSnapsBackWhenIdle(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tuitest.WheelDown())
	m = update(t, m, tuitest.WheelDown())
	m = settle(t, m)

	assert.Equal(t, 0, m.stack.Current())
	assert.False(t, m.stack.IsTransitioning())
	assert.Zero(t, m.stack.Intent())
}

func TestModel_WheelBackwardOnBaseScrolls(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tuitest.WheelUp())

	assert.False(t, m.stack.IsTransitioning())
	assert.Zero(t, m.stack.Intent())
}

func TestModel_Drag(t *testing.T) {
	t.Run("past threshold commits", func(t *testing.T) {
		m := newTestModel(t)

		m = update(t, m, tuitest.MousePress(20))
		m = update(t, m, tuitest.MouseMotion(10))
		m = update(t, m, tuitest.MouseRelease(10))
		m = settle(t, m)

		assert.Equal(t, 1, m.stack.Current())
	})

	t.Run("short drag snaps back", func(t *testing.T) {
		m := newTestModel(t)

		m = update(t, m, tuitest.MousePress(20))
		m = update(t, m, tuitest.MouseMotion(16))
		m = update(t, m, tuitest.MouseRelease(16))
		assert.True(t, m.stack.IsTransitioning(), "snap-back runs a transition")

		m = settle(t, m)
		assert.Equal(t, 0, m.stack.Current())
	})

	t.Run("press on footer is ignored", func(t *testing.T) {
		m := newTestModel(t)

		m = update(t, m, tuitest.MousePress(23))
		assert.False(t, m.drag.Dragging())
	})
}

func TestModel_CopyEmail(t *testing.T) {
	var copied []string
	m := newTestModel(t, func(o *Options) {
		o.Config.Contact.Email = "me@example.com"
		o.Clipboard = func(s string) error {
			copied = append(copied, s)
			return nil
		}
	})

	m = press(t, m, 'y')

	assert.Equal(t, []string{"me@example.com"}, copied)
	n, ok := m.toasts.Current()
	require.True(t, ok)
	assert.Equal(t, notify.LevelInfo, n.Level)
	assert.Contains(t, tuitest.StripANSI(m.View()), "copied me@example.com")
}

func TestModel_CopyEmailFailure(t *testing.T) {
	m := newTestModel(t, func(o *Options) {
		o.Config.Contact.Email = "me@example.com"
		o.Clipboard = func(string) error { return errors.New("no clipboard") }
	})

	m = press(t, m, 'y')

	n, ok := m.toasts.Current()
	require.True(t, ok)
	assert.Equal(t, notify.LevelError, n.Level)
}

func TestModel_CopyDisabledWithoutEmail(t *testing.T) {
	called := false
	m := newTestModel(t, func(o *Options) {
		o.Clipboard = func(string) error { called = true; return nil }
	})

	m = press(t, m, 'y')

	assert.False(t, called)
	_, ok := m.toasts.Current()
	assert.False(t, ok)
}

func TestModel_OpenContact(t *testing.T) {
	rec := &executil.Recorder{}
	m := newTestModel(t, func(o *Options) {
		o.Config.Contact.Email = "me@example.com"
		o.Config.Contact.OpenCommand = "xdg-open {{ shq .URL }}"
		o.Runner = rec
	})

	msg := m.openContact()()
	assert.Equal(t, openDoneMsg{}, msg)

	cmds := rec.Commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, "xdg-open 'mailto:me@example.com'", cmds[0].Cmd)

	rec.Err = errors.New("no opener")
	m = update(t, m, m.openContact()())
	n, ok := m.toasts.Current()
	require.True(t, ok)
	assert.Equal(t, notify.LevelError, n.Level)
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t)

	assert.NotContains(t, tuitest.StripANSI(m.View()), "copy email")

	m = press(t, m, '?')
	assert.True(t, m.showHelp)
	assert.Contains(t, tuitest.StripANSI(m.View()), "contact")
}

func TestModel_ViewLayout(t *testing.T) {
	m := newTestModel(t)

	lines := tuitest.StripANSI(m.View())
	assert.Contains(t, lines, "Home")
	assert.Contains(t, lines, "viewing Home (1/4)")
	assert.Contains(t, lines, "●···")
}

func TestModel_Headline(t *testing.T) {
	m := newTestModel(t, func(o *Options) {
		o.Config.TUI.Headline = "folio"
	})

	assert.NotContains(t, tuitest.StripANSI(m.View()), "folio")

	for range 5 {
		m = update(t, m, typeTickMsg(time.Now()))
	}
	assert.True(t, m.headline.Done())
	assert.Contains(t, tuitest.StripANSI(m.View()), "folio")
}

func TestModel_FrameTicksRunTween(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, 'n')
	assert.True(t, m.anim.Animating())
	assert.True(t, m.anim.Ticking())

	for m.anim.Animating() {
		m = update(t, m, frameTickMsg(time.Now()))
	}
	m = update(t, m, frameTickMsg(time.Now()))
	assert.False(t, m.anim.Ticking())
	assert.InDelta(t, 0.0, m.anim.Visual(1).Offset, 0)
}

func TestModel_Start(t *testing.T) {
	m := newTestModel(t, func(o *Options) { o.Start = 2 })
	m = settle(t, m)
	assert.Equal(t, 2, m.stack.Current())

	_, err := New(Options{Config: testConfig(t), Sources: testSources(), Start: 4})
	assert.Error(t, err)
}

func TestModel_NoSources(t *testing.T) {
	_, err := New(Options{Config: testConfig(t)})
	assert.Error(t, err)
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tuitest.KeyPress('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_PublishesToBus(t *testing.T) {
	tb := testbus.New(t)
	eventbus.NewNotificationRouter(tb.EventBus).Register()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.md")
	require.NoError(t, os.WriteFile(good, []byte("# Good"), 0o644))

	m := newTestModel(t, func(o *Options) {
		o.Bus = tb.EventBus
		o.Sources = []content.Source{
			{Title: "Home", Body: "home"},
			{Title: "Good", Path: good, Lazy: true},
			{Title: "Broken", Path: filepath.Join(dir, "missing.md"), Lazy: true},
		}
	})

	assert.False(t, m.panels.Loaded(1))

	m = settle(t, press(t, m, 'n'))
	assert.True(t, m.panels.Loaded(1))
	tb.AssertPublished(t, eventbus.EventPanelActivated)
	tb.AssertPublished(t, eventbus.EventPanelHydrated)

	m = settle(t, press(t, m, 'n'))
	assert.Equal(t, 2, m.stack.Current())
	tb.AssertPublished(t, eventbus.EventNotificationPublished)

	select {
	case n := <-m.notes:
		assert.Equal(t, notify.LevelWarning, n.Level)
		assert.Contains(t, n.Message, "Broken")
	case <-time.After(time.Second):
		t.Fatal("notification did not reach the model")
	}

	require.Eventually(t, func() bool {
		return len(tb.Of(eventbus.EventPanelActivated)) == 2
	}, time.Second, 5*time.Millisecond)
	activations := tb.Of(eventbus.EventPanelActivated)
	assert.Equal(t, eventbus.PanelActivatedPayload{Previous: 1, Current: 2, Title: "Broken"}, activations[1])
}

func TestModel_NotificationBecomesToast(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, notificationMsg(notify.Notification{Level: notify.LevelWarning, Message: "heads up"}))

	n, ok := m.toasts.Current()
	require.True(t, ok)
	assert.Equal(t, "heads up", n.Message)
	assert.True(t, m.toasts.Ticking())
}

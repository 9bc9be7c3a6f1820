package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hay-kot/folio/internal/core/notify"
	"github.com/hay-kot/folio/internal/core/stack"
)

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	// One row for the panel title, one for the footer.
	m.panels.SetSize(msg.Width, max(m.bodyHeight()-1, 0))

	if !m.stack.IsTransitioning() {
		m.stack.Sync()
	}
	return m, m.flush()
}

func (m Model) handleFrameTick() (tea.Model, tea.Cmd) {
	if m.anim.Tick() {
		return m, m.scheduleFrame()
	}
	m.anim.SetTicking(false)
	return m, nil
}

func (m Model) handleToastTick(now time.Time) (tea.Model, tea.Cmd) {
	m.toasts.Tick(now)
	if _, ok := m.toasts.Current(); ok {
		return m, scheduleToastTick()
	}
	m.toasts.SetTicking(false)
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Next):
		m.headline.Skip()
		m.stack.ActivateNext()
	case key.Matches(msg, m.keys.Previous):
		m.stack.ActivatePrevious()
	case key.Matches(msg, m.keys.Home):
		m.stack.Activate(0)
	case key.Matches(msg, m.keys.Contact):
		m.stack.Activate(m.stack.Len() - 1)
	case key.Matches(msg, m.keys.Jump):
		m.stack.Activate(int(msg.Runes[0]-'1'))
	case key.Matches(msg, m.keys.Down):
		m.scroll(1)
	case key.Matches(msg, m.keys.Up):
		m.scroll(-1)
	case key.Matches(msg, m.keys.Copy):
		cmd = m.copyEmail()
	case key.Matches(msg, m.keys.Open):
		cmd = m.openContact()
	}

	return m, tea.Batch(cmd, m.flush())
}

// scroll moves the active panel's content unless a transition owns the screen.
func (m Model) scroll(lines int) {
	if m.stack.IsTransitioning() {
		return
	}
	m.panels.ScrollBy(m.stack.Current(), lines)
}

func (m Model) copyEmail() tea.Cmd {
	email := m.cfg.Contact.Email
	n := notify.Notification{Level: notify.LevelInfo, Message: "copied " + email}
	if err := m.clipboard(email); err != nil {
		m.log.Warn().Err(err).Msg("clipboard write failed")
		n = notify.Notification{Level: notify.LevelError, Message: fmt.Sprintf("copy failed: %v", err)}
	}
	m.toasts.Push(n)
	return m.ensureToastTick()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		m.handleWheel(1)
	case msg.Button == tea.MouseButtonWheelUp:
		m.handleWheel(-1)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y < m.bodyHeight() && m.drag.Start(m.rowUnits(msg.Y)) {
			m.dragY = msg.Y
		}

	case msg.Action == tea.MouseActionMotion && m.drag.Dragging():
		m.handleDragMotion(msg.Y)
		m.dragY = msg.Y

	case msg.Action == tea.MouseActionRelease && m.drag.Dragging():
		m.drag.End()
	}

	return m, m.flush()
}

// handleWheel feeds one wheel event to the accumulator. Ticks it does not
// consume scroll the active panel instead.
func (m Model) handleWheel(dir int) {
	delta := float64(dir) * m.cfg.Navigation.WheelTickDelta
	if _, ok := m.wheel.Tick(delta); ok {
		return
	}
	if m.drag.Dragging() {
		return
	}
	m.scroll(dir * wheelScrollLines)
}

// handleDragMotion previews the drag. Pulling down on a panel that is not at
// its top is handed to the panel as scrolling.
func (m Model) handleDragMotion(y int) {
	cur := m.stack.Current()
	atTop := stack.AtTop(m.panels, cur)

	m.drag.Move(m.rowUnits(y))

	if dy := y - m.dragY; dy > 0 && !atTop {
		m.panels.ScrollBy(cur, -dy)
	}
}

func (m Model) rowUnits(y int) float64 {
	return float64(y) * m.cfg.Navigation.DragUnitsPerRow
}

// bodyHeight is the number of rows available to panels.
func (m Model) bodyHeight() int {
	return max(m.height-1, 0)
}

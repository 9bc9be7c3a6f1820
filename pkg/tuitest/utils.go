// Package tuitest provides testing utilities for TUI components.
package tuitest

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes and trailing whitespace so rendered
// views can be compared as plain text.
func StripANSI(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// KeyPress creates a key message for a single rune.
func KeyPress(key rune) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{key}}
}

// KeyDown creates a down arrow key message.
func KeyDown() tea.Msg {
	return tea.KeyMsg{Type: tea.KeyDown}
}

// KeyUp creates an up arrow key message.
func KeyUp() tea.Msg {
	return tea.KeyMsg{Type: tea.KeyUp}
}

// KeyEnter creates an enter key message.
func KeyEnter() tea.Msg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

// WindowSize creates a window size message.
func WindowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}

// MousePress creates a left button press at row y.
func MousePress(y int) tea.Msg {
	return tea.MouseMsg{Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// MouseMotion creates a left-button drag motion to row y.
func MouseMotion(y int) tea.Msg {
	return tea.MouseMsg{Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

// MouseRelease creates a button release at row y.
func MouseRelease(y int) tea.Msg {
	return tea.MouseMsg{Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

// WheelDown creates one wheel-down event.
func WheelDown() tea.Msg {
	return tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
}

// WheelUp creates one wheel-up event.
func WheelUp() tea.Msg {
	return tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}
}

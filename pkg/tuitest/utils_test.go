package tuitest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[1mbold\x1b[0m   \nnext  \n\n"
	assert.Equal(t, "bold\nnext", StripANSI(in))
}

func TestKeyPress(t *testing.T) {
	msg, ok := KeyPress('n').(tea.KeyMsg)
	assert.True(t, ok)
	assert.Equal(t, "n", msg.String())
}

func TestMouseHelpers(t *testing.T) {
	press := MousePress(3).(tea.MouseMsg)
	assert.Equal(t, tea.MouseActionPress, press.Action)
	assert.Equal(t, 3, press.Y)

	wheel := WheelDown().(tea.MouseMsg)
	assert.Equal(t, tea.MouseButtonWheelDown, wheel.Button)
}

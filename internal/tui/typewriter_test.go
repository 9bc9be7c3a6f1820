package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTypewriter(t *testing.T) {
	tw := NewTypewriter("héllo", time.Millisecond)
	assert.Empty(t, tw.View())
	assert.NotNil(t, tw.Schedule())

	assert.True(t, tw.Tick())
	assert.True(t, tw.Tick())
	assert.Equal(t, "hé", tw.View())

	for tw.Tick() {
	}
	assert.Equal(t, "héllo", tw.View())
	assert.True(t, tw.Done())
	assert.Nil(t, tw.Schedule())
	assert.False(t, tw.Tick())
}

func TestTypewriter_Skip(t *testing.T) {
	tw := NewTypewriter("folio", time.Second)
	tw.Skip()
	assert.Equal(t, "folio", tw.View())
}

func TestTypewriter_NoInterval(t *testing.T) {
	tw := NewTypewriter("now", 0)
	assert.True(t, tw.Done())
	assert.Equal(t, "now", tw.View())
}

func TestTypewriter_Empty(t *testing.T) {
	tw := NewTypewriter("", time.Millisecond)
	assert.True(t, tw.Done())
	assert.Nil(t, tw.Schedule())
}

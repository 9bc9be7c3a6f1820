package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithPanel(t *testing.T) {
	ctx := WithPanel(context.Background(), "Projects")
	assert.Equal(t, "Projects", GetPanel(ctx))
}

func TestGetPanel_NotPresent(t *testing.T) {
	assert.Empty(t, GetPanel(context.Background()))
}

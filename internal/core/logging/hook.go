package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies the panel title carried by an event's context onto the event.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if title := GetPanel(ctx); title != "" {
		e.Str("panel", title)
	}
}

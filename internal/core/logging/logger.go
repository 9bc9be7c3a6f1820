// Package logging holds the small helpers folio uses to tag zerolog output.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component returns the global logger tagged with a "cmp" field naming the
// subsystem (stack, gesture, tui, ...).
func Component(name string) zerolog.Logger {
	return With(log.Logger, name)
}

// With tags an existing logger with a component name.
func With(base zerolog.Logger, name string) zerolog.Logger {
	return base.With().Str("cmp", name).Logger()
}

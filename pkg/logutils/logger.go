// Package logutils builds the application logger.
package logutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New returns a logger that appends JSON lines to file. The TUI owns the
// terminal, so an empty file discards output rather than writing to stdout.
//
// The level parameter can be one of: debug, info, warn, error, fatal.
func New(level string, file string) (zerolog.Logger, func(), error) {
	closer := func() {}

	if file == "" {
		l, err := NewWriter(level, io.Discard)
		return l, closer, err
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("open log file: %w", err)
	}
	closer = func() { _ = f.Close() }

	l, err := NewWriter(level, f)
	if err != nil {
		closer()
		return zerolog.Logger{}, func() {}, err
	}
	return l, closer, nil
}

// NewWriter returns a timestamped JSON logger writing to w.
func NewWriter(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("parse log level: %w", err)
	}

	return zerolog.New(w).
		With().
		Timestamp().
		Logger().
		Level(lvl), nil
}

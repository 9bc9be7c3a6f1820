// Package executil runs short-lived shell commands on behalf of the UI.
package executil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

const maxStderrLen = 500

// Runner runs a shell command line.
type Runner interface {
	RunSh(ctx context.Context, dir, cmd string) error
}

// Shell runs commands through sh -c.
type Shell struct{}

// RunSh executes cmd in dir (empty means inherit cwd). On failure the error
// carries stderr, capped at maxStderrLen bytes so escape-heavy output cannot
// flood a status line. The *exec.ExitError stays reachable through errors.As.
func (Shell) RunSh(ctx context.Context, dir, cmd string) error {
	c := exec.CommandContext(ctx, "sh", "-c", cmd)
	if dir != "" {
		c.Dir = dir
	}

	stderr := &cappedBuffer{max: maxStderrLen}
	c.Stdout = io.Discard
	c.Stderr = stderr

	if err := c.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w", msg, err)
		}
		return err
	}
	return nil
}

// cappedBuffer keeps the first max bytes written and drops the rest while
// still reporting full writes.
type cappedBuffer struct {
	bytes.Buffer
	max int
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	room := b.max - b.Len()
	if room <= 0 {
		return len(p), nil
	}
	if len(p) > room {
		_, err := b.Buffer.Write(p[:room])
		return len(p), err
	}
	return b.Buffer.Write(p)
}

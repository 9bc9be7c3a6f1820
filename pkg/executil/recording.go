package executil

import (
	"context"
	"sync"
)

// RecordedCommand captures a command that was run.
type RecordedCommand struct {
	Dir string
	Cmd string
}

// Recorder captures commands instead of running them. Err, when set, is
// returned from every call.
type Recorder struct {
	mu       sync.Mutex
	commands []RecordedCommand

	Err error
}

// RunSh records the command.
func (r *Recorder) RunSh(_ context.Context, dir, cmd string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, RecordedCommand{Dir: dir, Cmd: cmd})
	return r.Err
}

// Commands returns a copy of the recorded commands.
func (r *Recorder) Commands() []RecordedCommand {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RecordedCommand, len(r.commands))
	copy(out, r.commands)
	return out
}

package nextion

import "sync"

// Recorder is a Display that keeps every command in memory.
type Recorder struct {
	mu   sync.Mutex
	cmds []string
}

var _ Display = (*Recorder)(nil)

// Send records cmd.
func (r *Recorder) Send(cmd string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cmds = append(r.cmds, cmd)
}

// Commands returns a copy of the recorded commands, oldest first.
func (r *Recorder) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]string, len(r.cmds))
	copy(result, r.cmds)
	return result
}

// Take returns the recorded commands and clears the recording.
func (r *Recorder) Take() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := r.cmds
	r.cmds = nil
	return result
}

// Tee sends every command to all of its displays.
type Tee []Display

var _ Display = Tee(nil)

// Send forwards cmd to each display in order.
func (t Tee) Send(cmd string) {
	for _, d := range t {
		d.Send(cmd)
	}
}

// Func adapts a function to a Display.
type Func func(cmd string)

// Send calls f(cmd).
func (f Func) Send(cmd string) { f(cmd) }

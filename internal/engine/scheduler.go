// Package engine runs the frame loop of a session.
//
// A frame is input, then update, then render. The Engine owns two
// schedulers: the active one drives play, the overlay one takes over after
// the game ends and only listens for the exit intent.
package engine

import "time"

// FrameFunc is called once per frame with the session time.
type FrameFunc func(now time.Duration)

// Scheduler calls its frame function on every Tick while running.
// It is driven by an external clock and never spawns goroutines.
type Scheduler struct {
	name    string
	frame   FrameFunc
	running bool
	frames  uint64
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(name string, frame FrameFunc) *Scheduler {
	return &Scheduler{name: name, frame: frame}
}

// Name returns the scheduler name, used in logs.
func (s *Scheduler) Name() string { return s.name }

// Start lets Tick run frames.
func (s *Scheduler) Start() { s.running = true }

// Stop makes every later Tick a no-op. Stopping from inside a frame does not
// interrupt that frame.
func (s *Scheduler) Stop() { s.running = false }

// Running reports whether the scheduler is started.
func (s *Scheduler) Running() bool { return s.running }

// Frames returns the number of frames run so far.
func (s *Scheduler) Frames() uint64 { return s.frames }

// Tick runs one frame if the scheduler is running and reports whether it did.
func (s *Scheduler) Tick(now time.Duration) bool {
	if !s.running {
		return false
	}
	s.frames++
	s.frame(now)
	return true
}

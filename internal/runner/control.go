package runner

import "sync/atomic"

// RunControl carries the cooperative pause/stop flags for one run.
// One control is constructed per StartTopic/StartAll invocation, so
// independent runs never share flags. Setters are safe to call from
// any goroutine; the run loop only ever reads.
//
// Within a run both flags are monotonic: once stop is requested it is
// never cleared, and a stop clears any pending pause so a stopped run
// does not sit blocked in the pause poll.
type RunControl struct {
	pause atomic.Bool
	stop  atomic.Bool
}

// NewControl returns a fresh control with neither flag set.
func NewControl() *RunControl {
	return &RunControl{}
}

// Pause requests that the run block before starting its next item.
// A request already in flight is never interrupted.
func (c *RunControl) Pause() {
	if c.stop.Load() {
		return
	}
	c.pause.Store(true)
}

// Resume clears a pending pause.
func (c *RunControl) Resume() {
	c.pause.Store(false)
}

// Stop requests that the run abandon all remaining items. It also
// clears any pending pause.
func (c *RunControl) Stop() {
	c.stop.Store(true)
	c.pause.Store(false)
}

// Paused reports whether a pause is requested.
func (c *RunControl) Paused() bool {
	return c.pause.Load()
}

// Stopped reports whether a stop is requested.
func (c *RunControl) Stopped() bool {
	return c.stop.Load()
}

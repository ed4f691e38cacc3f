package sim

import "time"

// FrameClock measures elapsed time between frames, clamped to a maximum step
// so stalls never turn into large simulation jumps.
type FrameClock struct {
	maxStep float64
	last    time.Time
	started bool
}

// NewFrameClock creates a clock that never reports more than maxStep seconds.
func NewFrameClock(maxStep float64) *FrameClock {
	return &FrameClock{maxStep: maxStep}
}

// Elapsed returns seconds since the previous call, clamped to [0, maxStep].
// The first call returns 0.
func (c *FrameClock) Elapsed(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	if c.maxStep > 0 && dt > c.maxStep {
		return c.maxStep
	}
	return dt
}

// Reset forgets the previous frame; the next Elapsed returns 0.
func (c *FrameClock) Reset() {
	c.started = false
}

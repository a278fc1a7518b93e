package game

import "time"

// Frame carries the clock readings for one tick.
type Frame struct {
	// Now is monotonic time since the clock started
	Now time.Duration

	// Delta is the time elapsed since the previous frame
	Delta time.Duration
}

// FrameClock turns wall-clock readings into Frames. Delta is reported as
// measured, without clamping.
type FrameClock struct {
	now func() time.Time

	start   time.Time
	last    time.Time
	started bool
}

// NewFrameClock creates a clock backed by time.Now
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Next reads the clock. The first call returns a zero Frame.
func (c *FrameClock) Next() Frame {
	t := c.now()
	if !c.started {
		c.start = t
		c.last = t
		c.started = true
	}
	f := Frame{Now: t.Sub(c.start), Delta: t.Sub(c.last)}
	c.last = t
	return f
}

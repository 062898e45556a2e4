package core

import "time"

// FrameClock measures the time elapsed between consecutive frames.
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

// NewFrameClock returns a clock reading the wall clock.
func NewFrameClock() *FrameClock {
	return NewFrameClockWith(time.Now)
}

// NewFrameClockWith returns a clock reading time from now. Tests use it to
// drive deterministic deltas.
func NewFrameClockWith(now func() time.Time) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{now: now}
}

// Tick returns the seconds elapsed since the previous Tick. The first call
// returns 0.
func (c *FrameClock) Tick() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	delta := t.Sub(c.last)
	c.last = t
	if delta < 0 {
		return 0
	}
	return delta.Seconds()
}

// Reset forgets the previous frame so the next Tick returns 0.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}

// FrameInterval returns the frame duration for a frames-per-second rate.
func FrameInterval(tps int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}

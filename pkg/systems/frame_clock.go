package systems

import "time"

// FrameClock turns wall-clock frame timestamps into per-frame delta times.
//
// The first frame has a delta of zero. A clock that goes backwards also
// yields zero rather than a negative delta.
type FrameClock struct {
	last    time.Time
	started bool
}

// Elapsed records now as the current frame time and returns the seconds
// since the previous frame.
func (c *FrameClock) Elapsed(now time.Time) float64 {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// Reset forgets the previous frame so that the next call to Elapsed returns zero.
func (c *FrameClock) Reset() {
	c.started = false
}

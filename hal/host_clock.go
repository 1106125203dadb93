package hal

import "time"

// wallClock measures the real time between frames.
type wallClock struct {
	now   func() time.Time
	start time.Time
	last  time.Time
	dt    float32
}

func newWallClock(now func() time.Time) *wallClock {
	if now == nil {
		now = time.Now
	}
	return &wallClock{now: now}
}

func (c *wallClock) tick() {
	t := c.now()
	if c.start.IsZero() {
		c.start = t
		c.last = t
		c.dt = 0
		return
	}
	c.dt = float32(t.Sub(c.last).Seconds())
	c.last = t
}

func (c *wallClock) FrameDelta() float32 { return c.dt }

func (c *wallClock) Now() float64 {
	if c.start.IsZero() {
		return 0
	}
	return c.last.Sub(c.start).Seconds()
}

// fixedClock advances by a constant step per frame. Headless runs use it so that
// a given seed and tick count always produce the same frames. Unlike wallClock
// the delta is the step from the first frame on.
type fixedClock struct {
	step  float32
	ticks uint64
}

func newFixedClock(hz int) *fixedClock {
	if hz <= 0 {
		hz = 60
	}
	return &fixedClock{step: 1 / float32(hz)}
}

func (c *fixedClock) tick() { c.ticks++ }

func (c *fixedClock) FrameDelta() float32 { return c.step }

func (c *fixedClock) Now() float64 {
	return float64(c.ticks) * float64(c.step)
}

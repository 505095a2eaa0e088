package sim

import "time"

// Clock supplies the elapsed time for each tick in seconds.
type Clock interface {
	Delta() float64
}

// FixedClock returns the same delta every tick.
type FixedClock float64

// Delta returns the fixed step.
func (c FixedClock) Delta() float64 { return float64(c) }

// WallClock measures real time between calls, capped at Max seconds.
type WallClock struct {
	Max  float64
	last time.Time
	now  func() time.Time
}

// NewWallClock creates a wall clock. The first Delta call returns 0.
func NewWallClock(maxDelta float64) *WallClock {
	return &WallClock{Max: maxDelta, now: time.Now}
}

// Delta returns seconds since the previous call.
func (c *WallClock) Delta() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	d := t.Sub(c.last).Seconds()
	c.last = t
	if c.Max > 0 && d > c.Max {
		d = c.Max
	}
	return d
}

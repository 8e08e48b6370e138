package simulation

import "time"

// DefaultTimeScale turns wall seconds into simulation time: a 60 Hz frame is
// a dt of about 1.67.
const DefaultTimeScale = 100.0

// Clock supplies the elapsed simulation time since its previous Tick.
type Clock interface {
	Tick() float64
}

// FixedClock always returns Step.
type FixedClock struct {
	Step float64
}

func (c FixedClock) Tick() float64 {
	return c.Step
}

// WallClock measures real elapsed time and multiplies it by Scale.
type WallClock struct {
	Scale float64
	now   func() time.Time
	last  time.Time
}

// NewWallClock starts a clock now. now may be nil to use time.Now.
func NewWallClock(scale float64, now func() time.Time) *WallClock {
	if now == nil {
		now = time.Now
	}
	return &WallClock{Scale: scale, now: now, last: now()}
}

// Tick returns the scaled seconds since the previous Tick, or since creation.
func (c *WallClock) Tick() float64 {
	t := c.now()
	elapsed := t.Sub(c.last)
	c.last = t
	return elapsed.Seconds() * c.Scale
}

package game

import "time"

// Clock supplies the time used for collision cooldowns.
// The game reads it once per tick.
type Clock interface {
	Now() time.Time
}

// Advancer is implemented by clocks that step once per tick.
type Advancer interface {
	Advance()
}

// WallClock reads the system time.
type WallClock struct{}

// Now returns time.Now().
func (WallClock) Now() time.Time { return time.Now() }

// TickClock is a deterministic clock that moves forward a fixed step per tick.
// Cooldowns then count frames instead of milliseconds, so seeded runs
// reproduce exactly regardless of host speed.
type TickClock struct {
	epoch time.Time
	step  time.Duration
	ticks int64
}

// NewTickClock creates a tick clock starting at the Unix epoch.
func NewTickClock(step time.Duration) *TickClock {
	return &TickClock{epoch: time.Unix(0, 0), step: step}
}

// Now returns epoch + ticks*step.
func (c *TickClock) Now() time.Time {
	return c.epoch.Add(time.Duration(c.ticks) * c.step)
}

// Advance moves the clock forward one step.
func (c *TickClock) Advance() {
	c.ticks++
}

// Ticks returns how many steps the clock has taken.
func (c *TickClock) Ticks() int64 {
	return c.ticks
}

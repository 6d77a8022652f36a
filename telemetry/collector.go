package telemetry

import "github.com/pthm-cable/rpsls/systems"

// WindowStats holds collision counters accumulated between two samples.
type WindowStats struct {
	StartFrame  int
	EndFrame    int
	Collisions  int // pairs within contact distance
	Conversions int
	Ties        int
	Suppressed  int // ignored by cooldown
}

// Collector accumulates collision outcomes within a sampling window.
type Collector struct {
	windowStart int
	collisions  int
	conversions int
	ties        int
	suppressed  int
}

// NewCollector creates a new stats collector.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordOutcome records one detected collision.
func (c *Collector) RecordOutcome(o systems.Outcome) {
	c.collisions++
	switch {
	case o == systems.OutcomeCooldown:
		c.suppressed++
	case o == systems.OutcomeTie:
		c.ties++
	case o.Converted():
		c.conversions++
	}
}

// Flush produces the window ending at frame and resets counters for the next one.
func (c *Collector) Flush(frame int) WindowStats {
	stats := WindowStats{
		StartFrame:  c.windowStart,
		EndFrame:    frame,
		Collisions:  c.collisions,
		Conversions: c.conversions,
		Ties:        c.ties,
		Suppressed:  c.suppressed,
	}

	c.windowStart = frame
	c.collisions = 0
	c.conversions = 0
	c.ties = 0
	c.suppressed = 0

	return stats
}

// Reset discards the current window.
func (c *Collector) Reset() {
	*c = Collector{}
}

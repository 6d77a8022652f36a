// Package systems holds the per-entity simulation rules: motion, collision and census.
package systems

import (
	"fmt"
	"math"

	"github.com/pthm-cable/rpsls/components"
)

// Bounds represents the arena and the wall band that triggers a bounce.
type Bounds struct {
	Width, Height float32
	Margin        float32
}

// Move advances pos by vel and reflects vel off the arena walls.
// A component flips when the new coordinate is within Margin of either wall.
// Axes are independent and the position is never clamped.
// It panics if the result is negative or not finite.
func Move(pos *components.Position, vel *components.Velocity, b Bounds) {
	pos.X += vel.X
	pos.Y += vel.Y
	if !valid(pos.X) || !valid(pos.Y) || !finite(vel.X) || !finite(vel.Y) {
		panic(fmt.Sprintf("systems: entity left the arena: pos %+v vel %+v", *pos, *vel))
	}

	if pos.X <= b.Margin || pos.X >= b.Width-b.Margin {
		vel.X = -vel.X
	}
	if pos.Y <= b.Margin || pos.Y >= b.Height-b.Margin {
		vel.Y = -vel.Y
	}
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func valid(coord float32) bool {
	return finite(coord) && coord >= 0
}

// Package components defines ECS components for the simulation.
package components

import (
	"time"

	"github.com/pthm-cable/rpsls/rules"
)

// Position represents an entity's arena position.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's per-tick displacement.
// Its magnitude is fixed at spawn; wall bounces only flip signs.
type Velocity struct {
	X, Y float32
}

// Species holds the entity's current type. It changes when the entity loses a collision.
type Species struct {
	Type rules.Type
}

// Contact records the last counted collision.
// The zero Last means the entity has never collided.
type Contact struct {
	Last time.Time
}

// Collided reports whether the entity has a recorded collision.
func (c *Contact) Collided() bool {
	return !c.Last.IsZero()
}

package systems

import (
	"fmt"
	"math"
	"time"

	"github.com/pthm-cable/rpsls/components"
	"github.com/pthm-cable/rpsls/rules"
)

// Body bundles the components of one entity that collision resolution touches.
type Body struct {
	Species *components.Species
	Contact *components.Contact
}

// Outcome describes what a resolved collision did.
type Outcome uint8

const (
	OutcomeCooldown  Outcome = iota // ignored, first entity still cooling down
	OutcomeTie                      // same type, only timestamps changed
	OutcomeAConverts                // first entity won, second took its type
	OutcomeBConverts                // second entity won, first took its type
)

// String returns the outcome name used in logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeCooldown:
		return "cooldown"
	case OutcomeTie:
		return "tie"
	case OutcomeAConverts:
		return "a_converts"
	case OutcomeBConverts:
		return "b_converts"
	default:
		return "unknown"
	}
}

// Converted reports whether a type changed.
func (o Outcome) Converted() bool {
	return o == OutcomeAConverts || o == OutcomeBConverts
}

// Colliding reports whether two entities of the given radius overlap.
func Colliding(a, b components.Position, radius float32) bool {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Hypot(dx, dy) < float64(radius*2)
}

// Resolve applies the dominance rule to a colliding pair.
//
// Only a's last contact is checked against the cooldown; b may be mid-cooldown
// and still get converted. A counted collision stamps both entities with now,
// including same-type collisions.
func Resolve(a, b Body, now time.Time, cooldown time.Duration) Outcome {
	if a.Contact.Collided() {
		if now.Before(a.Contact.Last) {
			panic(fmt.Sprintf("systems: clock went backwards: now %v before last contact %v", now, a.Contact.Last))
		}
		if now.Sub(a.Contact.Last) < cooldown {
			return OutcomeCooldown
		}
	}

	a.Contact.Last = now
	b.Contact.Last = now

	ta, tb := a.Species.Type, b.Species.Type
	switch {
	case ta == tb:
		return OutcomeTie
	case rules.Beats(ta, tb):
		b.Species.Type = ta
		return OutcomeAConverts
	case rules.Beats(tb, ta):
		a.Species.Type = tb
		return OutcomeBConverts
	}
	panic(fmt.Sprintf("systems: no dominance between %s and %s", ta, tb))
}

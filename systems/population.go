package systems

import (
	"fmt"
	"strings"

	"github.com/pthm-cable/rpsls/rules"
)

// Counts holds the live population per type, indexed by rules.Type.
type Counts [rules.NumTypes]int

// Add counts one entity of type t.
func (c *Counts) Add(t rules.Type) {
	if !t.Valid() {
		panic(fmt.Sprintf("systems: counting invalid type %d", uint8(t)))
	}
	c[t]++
}

// Of returns the count for type t.
func (c Counts) Of(t rules.Type) int {
	return c[t]
}

// Total returns the number of entities across all types.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Alive returns the number of types with a nonzero count.
func (c Counts) Alive() int {
	n := 0
	for _, v := range c {
		if v > 0 {
			n++
		}
	}
	return n
}

// Survivor returns the only type still present.
// ok is false when zero or several types remain.
func (c Counts) Survivor() (t rules.Type, ok bool) {
	if c.Alive() != 1 {
		return 0, false
	}
	for _, tt := range rules.All {
		if c[tt] > 0 {
			return tt, true
		}
	}
	return 0, false
}

// String formats the counts as "🪨 3 | 📄 0 | ...".
func (c Counts) String() string {
	parts := make([]string, 0, rules.NumTypes)
	for _, t := range rules.All {
		parts = append(parts, fmt.Sprintf("%s %d", t.Emoji(), c[t]))
	}
	return strings.Join(parts, " | ")
}

// Label formats the counts with ASCII names, for surfaces without emoji.
func (c Counts) Label() string {
	parts := make([]string, 0, rules.NumTypes)
	for _, t := range rules.All {
		parts = append(parts, fmt.Sprintf("%s %d", t, c[t]))
	}
	return strings.Join(parts, "  ")
}

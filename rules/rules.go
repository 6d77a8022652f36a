// Package rules defines the five particle types and the dominance table between them.
package rules

import (
	"fmt"
	"strings"
)

// Type identifies a particle kind.
type Type uint8

const (
	Rock Type = iota
	Paper
	Scissors
	Lizard
	Spock
)

// NumTypes is the number of particle types.
const NumTypes = 5

// All lists every type in collection order. Spawning, counting and charting
// iterate in this order.
var All = [NumTypes]Type{Rock, Paper, Scissors, Lizard, Spock}

// Set is a bitmask of types.
type Set uint8

// Of returns a set containing the given types.
func Of(types ...Type) Set {
	var s Set
	for _, t := range types {
		s = s.Add(t)
	}
	return s
}

// Has checks if the set contains a type.
func (s Set) Has(t Type) bool {
	return s&(1<<t) != 0
}

// Add adds a type to the set.
func (s Set) Add(t Type) Set {
	return s | 1<<t
}

// Len returns the number of types in the set.
func (s Set) Len() int {
	n := 0
	for _, t := range All {
		if s.Has(t) {
			n++
		}
	}
	return n
}

// defeats is the dominance table. Each type beats exactly two others.
var defeats = [NumTypes]Set{
	Rock:     Of(Scissors, Lizard),
	Paper:    Of(Rock, Spock),
	Scissors: Of(Paper, Lizard),
	Lizard:   Of(Spock, Paper),
	Spock:    Of(Scissors, Rock),
}

var names = [NumTypes]string{"rock", "paper", "scissors", "lizard", "spock"}

var emoji = [NumTypes]string{"🪨", "📄", "✂️", "🦎", "🖖"}

// Glyphs are single-cell labels for surfaces that can't draw emoji.
var glyphs = [NumTypes]rune{'R', 'P', 'S', 'L', 'K'}

var colors = [NumTypes][3]uint8{
	{150, 150, 160},
	{240, 240, 220},
	{230, 80, 80},
	{90, 200, 90},
	{90, 150, 240},
}

// Valid reports whether t is one of the five types.
func (t Type) Valid() bool {
	return t < NumTypes
}

func (t Type) mustValid() {
	if !t.Valid() {
		panic(fmt.Sprintf("rules: invalid type %d", uint8(t)))
	}
}

// Defeats returns the set of types t beats.
func Defeats(t Type) Set {
	t.mustValid()
	return defeats[t]
}

// Beats reports whether a defeats b.
func Beats(a, b Type) bool {
	b.mustValid()
	return Defeats(a).Has(b)
}

// String returns the lowercase type name.
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return names[t]
}

// Emoji returns the display emoji for t.
func (t Type) Emoji() string {
	t.mustValid()
	return emoji[t]
}

// Glyph returns an ASCII label for t.
func (t Type) Glyph() rune {
	t.mustValid()
	return glyphs[t]
}

// Color returns an RGB triple for t.
func (t Type) Color() (r, g, b uint8) {
	t.mustValid()
	c := colors[t]
	return c[0], c[1], c[2]
}

// Parse looks up a type by name, case-insensitively.
func Parse(name string) (Type, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, t := range All {
		if names[t] == n {
			return t, nil
		}
	}
	return 0, fmt.Errorf("rules: unknown type %q", name)
}

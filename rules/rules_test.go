package rules

import "testing"

func TestDominanceIsTournament(t *testing.T) {
	for _, a := range All {
		if Beats(a, a) {
			t.Errorf("%s beats itself", a)
		}
		for _, b := range All {
			if a == b {
				continue
			}
			ab, ba := Beats(a, b), Beats(b, a)
			if ab == ba {
				t.Errorf("Beats(%s,%s)=%v, Beats(%s,%s)=%v: want exactly one true", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestEachTypeBeatsTwo(t *testing.T) {
	for _, a := range All {
		if n := Defeats(a).Len(); n != 2 {
			t.Errorf("%s defeats %d types, want 2", a, n)
		}
	}
}

func TestClassicMatchups(t *testing.T) {
	tests := []struct {
		a, b Type
		want bool
	}{
		{Rock, Scissors, true},
		{Rock, Lizard, true},
		{Paper, Rock, true},
		{Paper, Spock, true},
		{Scissors, Paper, true},
		{Scissors, Lizard, true},
		{Lizard, Spock, true},
		{Lizard, Paper, true},
		{Spock, Scissors, true},
		{Spock, Rock, true},
		{Rock, Paper, false},
		{Lizard, Rock, false},
	}

	for _, tt := range tests {
		t.Run(tt.a.String()+"_"+tt.b.String(), func(t *testing.T) {
			if got := Beats(tt.a, tt.b); got != tt.want {
				t.Errorf("Beats(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestInvalidTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Beats with invalid type should panic")
		}
	}()
	Beats(Type(7), Rock)
}

func TestParse(t *testing.T) {
	for _, want := range All {
		got, err := Parse(" " + want.String() + " ")
		if err != nil {
			t.Fatalf("Parse(%q): %v", want.String(), err)
		}
		if got != want {
			t.Errorf("Parse(%q) = %s, want %s", want.String(), got, want)
		}
	}
	if _, err := Parse("SPOCK"); err != nil {
		t.Errorf("Parse should be case-insensitive: %v", err)
	}
	if _, err := Parse("dynamite"); err == nil {
		t.Error("Parse(dynamite) should fail")
	}
}

func TestString(t *testing.T) {
	if Type(9).String() != "Type(9)" {
		t.Errorf("invalid type String() = %q", Type(9).String())
	}
	if Scissors.Emoji() != "✂️" {
		t.Errorf("Scissors.Emoji() = %q", Scissors.Emoji())
	}
	if Spock.Glyph() != 'K' {
		t.Errorf("Spock.Glyph() = %q", Spock.Glyph())
	}
}

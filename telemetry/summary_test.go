package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/rpsls/rules"
	"github.com/pthm-cable/rpsls/systems"
)

func TestSummarize(t *testing.T) {
	s := NewSeries()
	s.Append(Sample{Frame: 20, Counts: systems.Counts{2, 2, 0, 0, 0}})
	s.Append(Sample{Frame: 40, Counts: systems.Counts{3, 1, 0, 0, 0}})
	s.Append(Sample{Frame: 60, Counts: systems.Counts{4, 0, 0, 0, 0}})

	sum := Summarize(s, 1, 61, "rock")
	if sum.Samples != 3 || sum.Frames != 61 || sum.Winner != "rock" {
		t.Errorf("header = %+v", sum)
	}

	rock := sum.Types[rules.Rock]
	if math.Abs(rock.Mean-3) > 1e-9 {
		t.Errorf("rock mean = %v, want 3", rock.Mean)
	}
	// Sample standard deviation of {2,3,4}
	if math.Abs(rock.StdDev-1) > 1e-9 {
		t.Errorf("rock std = %v, want 1", rock.StdDev)
	}
	if rock.Peak != 4 || rock.PeakFrame != 60 {
		t.Errorf("rock peak = %d@%d, want 4@60", rock.Peak, rock.PeakFrame)
	}
	if rock.ExtinctAt != -1 {
		t.Errorf("rock extinct_at = %d, want -1", rock.ExtinctAt)
	}

	paper := sum.Types[rules.Paper]
	if paper.ExtinctAt != 60 {
		t.Errorf("paper extinct_at = %d, want 60", paper.ExtinctAt)
	}
	if paper.Peak != 2 || paper.PeakFrame != 20 {
		t.Errorf("paper peak = %d@%d, want 2@20", paper.Peak, paper.PeakFrame)
	}

	if sum.Types[rules.Spock].ExtinctAt != 20 {
		t.Errorf("spock extinct_at = %d, want 20", sum.Types[rules.Spock].ExtinctAt)
	}
}

func TestSummarizeShortSeries(t *testing.T) {
	empty := Summarize(NewSeries(), 0, 3, "")
	for _, ts := range empty.Types {
		if ts.Mean != 0 || ts.StdDev != 0 || ts.ExtinctAt != -1 {
			t.Errorf("%s: empty series summary = %+v", ts.Type, ts)
		}
	}

	s := NewSeries()
	s.Append(Sample{Frame: 20, Counts: systems.Counts{5, 0, 0, 0, 0}})
	one := Summarize(s, 0, 20, "rock")
	rock := one.Types[rules.Rock]
	if rock.Mean != 5 || rock.StdDev != 0 || math.IsNaN(rock.StdDev) {
		t.Errorf("single sample rock = %+v, want mean 5 std 0", rock)
	}
}

func TestSummaryFirstExtinct(t *testing.T) {
	s := NewSeries()
	s.Append(Sample{Frame: 20, Counts: systems.Counts{2, 2, 1, 1, 0}})
	s.Append(Sample{Frame: 40, Counts: systems.Counts{3, 0, 3, 0, 0}})
	s.Append(Sample{Frame: 60, Counts: systems.Counts{6, 0, 0, 0, 0}})

	ts, ok := Summarize(s, 1, 60, "rock").FirstExtinct()
	if !ok || ts.Type != "spock" || ts.ExtinctAt != 20 {
		t.Errorf("first extinct = %s@%d %v, want spock@20", ts.Type, ts.ExtinctAt, ok)
	}

	s = NewSeries()
	s.Append(Sample{Frame: 20, Counts: systems.Counts{1, 1, 1, 1, 1}})
	if _, ok := Summarize(s, 1, 20, "").FirstExtinct(); ok {
		t.Error("no type died out, want ok=false")
	}
}

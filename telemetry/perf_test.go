package telemetry

import (
	"testing"
	"time"
)

// steppedClock advances by a scripted duration on every read.
type steppedClock struct {
	t     time.Time
	steps []time.Duration
}

func (c *steppedClock) now() time.Time {
	if len(c.steps) > 0 {
		c.t = c.t.Add(c.steps[0])
		c.steps = c.steps[1:]
	}
	return c.t
}

func collectorWith(steps ...time.Duration) *PerfCollector {
	c := &steppedClock{t: time.Unix(0, 0), steps: steps}
	return &PerfCollector{now: c.now}
}

// tick runs one tick whose entities and census phases take the given times.
// Reads: StartTick, StartPhase(entities), StartPhase(census), EndTick.
func tickSteps(entities, census time.Duration) []time.Duration {
	return []time.Duration{0, 0, entities, census}
}

func runTicks(p *PerfCollector, n int) {
	for i := 0; i < n; i++ {
		p.StartTick()
		p.StartPhase(PhaseEntities)
		p.StartPhase(PhaseCensus)
		p.EndTick()
	}
}

func TestPerfCollectorTotals(t *testing.T) {
	var steps []time.Duration
	steps = append(steps, tickSteps(300*time.Microsecond, 100*time.Microsecond)...)
	steps = append(steps, tickSteps(700*time.Microsecond, 100*time.Microsecond)...)
	p := collectorWith(steps...)
	p.Reset(1)

	runTicks(p, 2)
	s := p.Stats()

	if s.Run != 1 || s.Ticks != 2 {
		t.Fatalf("run/ticks = %d/%d, want 1/2", s.Run, s.Ticks)
	}
	if s.Total != 1200*time.Microsecond {
		t.Errorf("total = %v, want 1.2ms", s.Total)
	}
	if s.AvgTickDuration != 600*time.Microsecond {
		t.Errorf("avg = %v, want 600µs", s.AvgTickDuration)
	}
	if s.MinTickDuration != 400*time.Microsecond || s.MaxTickDuration != 800*time.Microsecond {
		t.Errorf("min/max = %v/%v, want 400µs/800µs", s.MinTickDuration, s.MaxTickDuration)
	}
	if s.PhaseAvg[PhaseEntities] != 500*time.Microsecond {
		t.Errorf("entities avg = %v, want 500µs", s.PhaseAvg[PhaseEntities])
	}
	if got := s.PhasePct[PhaseEntities]; got < 83.3 || got > 83.4 {
		t.Errorf("entities pct = %v, want ~83.3", got)
	}
	if s.PhasePct[PhaseTelemetry] != 0 {
		t.Errorf("telemetry pct = %v, want 0 when the phase never ran", s.PhasePct[PhaseTelemetry])
	}
	if got := s.TicksPerSecond; got < 1666 || got > 1667 {
		t.Errorf("ticks/sec = %v, want ~1666.7", got)
	}
}

func TestPerfCollectorResetStartsNewRun(t *testing.T) {
	var steps []time.Duration
	for i := 0; i < 16; i++ {
		steps = append(steps, tickSteps(5*time.Millisecond, time.Millisecond)...)
	}
	steps = append(steps, tickSteps(10*time.Microsecond, 0)...)
	p := collectorWith(steps...)

	p.Reset(1)
	runTicks(p, 16)
	p.Reset(2)
	runTicks(p, 1)

	s := p.Stats()
	if s.Run != 2 || s.Ticks != 1 {
		t.Fatalf("run/ticks = %d/%d, want 2/1", s.Run, s.Ticks)
	}
	if s.AvgTickDuration != 10*time.Microsecond || s.MaxTickDuration != 10*time.Microsecond {
		t.Errorf("avg/max = %v/%v, earlier run leaked in", s.AvgTickDuration, s.MaxTickDuration)
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	p := NewPerfCollector()
	p.Reset(3)

	s := p.Stats()
	if s.Run != 3 || s.Ticks != 0 || s.AvgTickDuration != 0 || s.TicksPerSecond != 0 || s.FPS != 0 {
		t.Errorf("empty stats = %+v", s)
	}
}

func TestPerfCollectorFrameRate(t *testing.T) {
	tests := []struct {
		name   string
		frames int
		want   float64
	}{
		{"no frames", 0, 0},
		{"single frame", 1, 0},
		{"steady 50fps", 11, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := make([]time.Duration, tt.frames)
			for i := range steps {
				steps[i] = 20 * time.Millisecond
			}
			p := collectorWith(steps...)
			for i := 0; i < tt.frames; i++ {
				p.RecordFrame()
			}
			if got := p.Stats().FPS; got < tt.want-0.01 || got > tt.want+0.01 {
				t.Errorf("fps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseEntities.String() != "entities" || PhaseTelemetry.String() != "telemetry" {
		t.Error("phase names changed")
	}
	if NumPhases.String() != "unknown" {
		t.Errorf("NumPhases.String() = %q", NumPhases.String())
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	var stats PerfStats
	stats.Run = 2
	stats.Ticks = 140
	stats.AvgTickDuration = 1500 * time.Microsecond
	stats.PhasePct = [NumPhases]float64{90, 6, 4}

	row := stats.ToCSV(140)

	if row.Run != 2 || row.Frame != 140 || row.Ticks != 140 {
		t.Errorf("run/frame/ticks = %d/%d/%d, want 2/140/140", row.Run, row.Frame, row.Ticks)
	}
	if row.AvgTickUS != 1500 {
		t.Errorf("avg tick = %dus, want 1500", row.AvgTickUS)
	}
	if row.EntitiesPct != 90 || row.CensusPct != 6 || row.TelemetryPct != 4 {
		t.Errorf("phase pct = %v/%v/%v", row.EntitiesPct, row.CensusPct, row.TelemetryPct)
	}
}

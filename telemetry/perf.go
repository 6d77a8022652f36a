package telemetry

import (
	"log/slog"
	"time"
)

// Phase identifies one stage of a tick.
type Phase uint8

const (
	PhaseEntities  Phase = iota // motion, pairwise collisions and drawing
	PhaseCensus                 // population recount
	PhaseTelemetry              // stats sink, sampling and output
	NumPhases
)

var phaseNames = [NumPhases]string{"entities", "census", "telemetry"}

func (p Phase) String() string {
	if p >= NumPhases {
		return "unknown"
	}
	return phaseNames[p]
}

// PerfCollector accumulates tick timings for a single run. Reset starts the
// next run from zero, so Stats never mixes ticks of different runs.
type PerfCollector struct {
	now func() time.Time

	run    int
	ticks  int
	total  time.Duration
	fast   time.Duration
	slow   time.Duration
	phases [NumPhases]time.Duration

	tickStart  time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool

	frames     int
	firstFrame time.Time
	lastFrame  time.Time
}

// NewPerfCollector returns an empty collector measuring wall time.
func NewPerfCollector() *PerfCollector {
	return &PerfCollector{now: time.Now}
}

// Reset drops everything measured so far and labels what follows with run.
func (p *PerfCollector) Reset(run int) {
	*p = PerfCollector{now: p.now, run: run}
}

// StartTick begins timing a tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = p.now()
	p.inPhase = false
}

// StartPhase closes the open phase, if any, and opens phase.
func (p *PerfCollector) StartPhase(phase Phase) {
	now := p.now()
	p.closePhase(now)
	p.phase, p.phaseStart, p.inPhase = phase, now, true
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.inPhase {
		p.phases[p.phase] += now.Sub(p.phaseStart)
		p.inPhase = false
	}
}

// EndTick closes the open phase and adds the tick to the run totals.
func (p *PerfCollector) EndTick() {
	now := p.now()
	p.closePhase(now)

	d := now.Sub(p.tickStart)
	if p.ticks == 0 || d < p.fast {
		p.fast = d
	}
	if d > p.slow {
		p.slow = d
	}
	p.total += d
	p.ticks++
}

// RecordFrame counts one presented host frame of the current run.
func (p *PerfCollector) RecordFrame() {
	now := p.now()
	if p.frames == 0 {
		p.firstFrame = now
	}
	p.lastFrame = now
	p.frames++
}

// PerfStats summarises the ticks of one run.
type PerfStats struct {
	Run   int
	Ticks int

	Total           time.Duration
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	PhaseAvg [NumPhases]time.Duration
	PhasePct [NumPhases]float64 // share of total tick time

	TicksPerSecond float64
	FPS            float64 // host frames per second, zero without frame data
}

// Stats reports the run so far.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		Run:             p.run,
		Ticks:           p.ticks,
		Total:           p.total,
		MinTickDuration: p.fast,
		MaxTickDuration: p.slow,
	}

	if p.frames > 1 {
		if span := p.lastFrame.Sub(p.firstFrame); span > 0 {
			s.FPS = float64(p.frames-1) / span.Seconds()
		}
	}

	if p.ticks == 0 {
		return s
	}

	s.AvgTickDuration = p.total / time.Duration(p.ticks)
	for ph := Phase(0); ph < NumPhases; ph++ {
		s.PhaseAvg[ph] = p.phases[ph] / time.Duration(p.ticks)
		if p.total > 0 {
			s.PhasePct[ph] = float64(p.phases[ph]) / float64(p.total) * 100
		}
	}
	if p.total > 0 {
		s.TicksPerSecond = float64(p.ticks) / p.total.Seconds()
	}
	return s
}

// LogStats logs the run's timings at info level.
func (s PerfStats) LogStats() {
	slog.Info("perf", "stats", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("run", s.Run),
		slog.Int("ticks", s.Ticks),
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for ph := Phase(0); ph < NumPhases; ph++ {
		attrs = append(attrs, slog.Float64(ph.String()+"_pct", s.PhasePct[ph]))
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	Run          int     `csv:"run"`
	Frame        int     `csv:"frame"`
	Ticks        int     `csv:"ticks"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	EntitiesPct  float64 `csv:"entities_pct"`
	CensusPct    float64 `csv:"census_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the stats for the run that ended at frame.
func (s PerfStats) ToCSV(frame int) PerfStatsCSV {
	return PerfStatsCSV{
		Run:          s.Run,
		Frame:        frame,
		Ticks:        s.Ticks,
		AvgTickUS:    s.AvgTickDuration.Microseconds(),
		MinTickUS:    s.MinTickDuration.Microseconds(),
		MaxTickUS:    s.MaxTickDuration.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		EntitiesPct:  s.PhasePct[PhaseEntities],
		CensusPct:    s.PhasePct[PhaseCensus],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}

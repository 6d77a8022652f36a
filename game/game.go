// Package game runs the RPSLS simulation loop: it owns the entities, steps
// them once per scheduled frame and reports population to its sinks.
package game

import (
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rpsls/components"
	"github.com/pthm-cable/rpsls/config"
	"github.com/pthm-cable/rpsls/rules"
	"github.com/pthm-cable/rpsls/systems"
	"github.com/pthm-cable/rpsls/telemetry"
)

// State is the loop's lifecycle stage.
type State uint8

const (
	Idle State = iota
	Running
	Ended
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// Renderer receives per-tick draw requests.
type Renderer interface {
	Clear()
	DrawEntity(t rules.Type, x, y float32)
	DrawBanner(text string)
}

// StatsSink displays the live population line.
type StatsSink interface {
	ShowStats(c systems.Counts)
	ClearStats()
}

// Setup holds the user-supplied parameters for a run.
type Setup struct {
	Counts systems.Counts
	Speed  float32
}

// DefaultSetup returns the initial counts and speed from config.
func DefaultSetup(cfg *config.Config) Setup {
	return Setup{
		Counts: systems.Counts(cfg.Population.Counts()),
		Speed:  float32(cfg.Entity.Speed),
	}
}

// Options configures a new game instance.
type Options struct {
	Config    *config.Config // nil uses config.Cfg()
	Seed      int64
	Clock     Clock     // nil picks from config clock.mode
	Scheduler Scheduler // nil uses a FrameScheduler
	Renderer  Renderer  // nil discards drawing
	Stats     StatsSink // nil discards stats
	Output    *telemetry.OutputManager
	LogStats  bool
}

// Game holds the complete simulation state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	clock    Clock
	sched    Scheduler
	renderer Renderer
	stats    StatsSink

	world *ecs.World

	// Entity mapper for creation; all four components are always present
	entityMapper *ecs.Map4[
		components.Position,
		components.Velocity,
		components.Species,
		components.Contact,
	]
	speciesFilter *ecs.Filter1[components.Species]

	// Individual component mappers for lookups
	posMap     *ecs.Map1[components.Position]
	velMap     *ecs.Map1[components.Velocity]
	speciesMap *ecs.Map1[components.Species]
	contactMap *ecs.Map1[components.Contact]

	// Collection order
	entities []ecs.Entity

	// Per-tick component pointers, indexed like entities
	scratch tickScratch

	bounds   systems.Bounds
	radius   float32
	cooldown time.Duration

	// State
	state     State
	winner    rules.Type
	hasWinner bool
	over      bool
	frame     int
	run       int
	counts    systems.Counts
	pending   Handle

	// Telemetry
	series        *telemetry.Series
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	summary       telemetry.Summary
}

// NewGame creates an idle game. Nothing is spawned until Start.
func NewGame(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	g := &Game{
		cfg:           cfg,
		rng:           rand.New(rand.NewSource(opts.Seed)),
		clock:         opts.Clock,
		sched:         opts.Scheduler,
		renderer:      opts.Renderer,
		stats:         opts.Stats,
		outputManager: opts.Output,
		logStats:      opts.LogStats,
		bounds: systems.Bounds{
			Width:  cfg.Derived.ArenaW32,
			Height: cfg.Derived.ArenaH32,
			Margin: cfg.Derived.Margin32,
		},
		radius:        cfg.Derived.Radius32,
		cooldown:      cfg.Derived.Cooldown,
		series:        telemetry.NewSeries(),
		collector:     telemetry.NewCollector(),
		perfCollector: telemetry.NewPerfCollector(),
	}

	if g.clock == nil {
		g.clock = clockFromConfig(cfg)
	}
	if g.sched == nil {
		g.sched = NewFrameScheduler()
	}
	if g.renderer == nil {
		g.renderer = discard{}
	}
	if g.stats == nil {
		g.stats = discard{}
	}

	g.newWorld()

	return g
}

func clockFromConfig(cfg *config.Config) Clock {
	if cfg.Clock.Mode == config.ClockTick {
		return NewTickClock(cfg.Derived.TickDuration)
	}
	return WallClock{}
}

// newWorld replaces the ECS world and its mappers, dropping every entity.
func (g *Game) newWorld() {
	world := ecs.NewWorld()
	g.world = world
	g.entityMapper = ecs.NewMap4[
		components.Position,
		components.Velocity,
		components.Species,
		components.Contact,
	](world)
	g.speciesFilter = ecs.NewFilter1[components.Species](world)
	g.posMap = ecs.NewMap1[components.Position](world)
	g.velMap = ecs.NewMap1[components.Velocity](world)
	g.speciesMap = ecs.NewMap1[components.Species](world)
	g.contactMap = ecs.NewMap1[components.Contact](world)
	g.entities = g.entities[:0]
}

// Scheduler returns the scheduler driving the loop.
func (g *Game) Scheduler() Scheduler { return g.sched }

// State returns the current lifecycle stage.
func (g *Game) State() State { return g.state }

// Winner returns the surviving type once the run has ended with one.
func (g *Game) Winner() (rules.Type, bool) { return g.winner, g.hasWinner }

// Frame returns the number of ticks run since the last Start.
func (g *Game) Frame() int { return g.frame }

// Run returns the number of Start calls so far.
func (g *Game) Run() int { return g.run }

// Counts returns the population computed by the last tick.
func (g *Game) Counts() systems.Counts { return g.counts }

// Series returns the sampled population series for charting.
func (g *Game) Series() *telemetry.Series { return g.series }

// Summary returns the summary of the last ended run.
func (g *Game) Summary() telemetry.Summary { return g.summary }

// Perf returns the tick timing collector of the current run.
func (g *Game) Perf() *telemetry.PerfCollector { return g.perfCollector }

// Len returns the number of entities.
func (g *Game) Len() int { return len(g.entities) }

// Entity returns the type and position of the i-th entity in collection order.
func (g *Game) Entity(i int) (rules.Type, components.Position) {
	e := g.entities[i]
	return g.speciesMap.Get(e).Type, *g.posMap.Get(e)
}

// Pending reports whether a tick is scheduled.
func (g *Game) Pending() bool { return g.pending != 0 }

type discard struct{}

func (discard) Clear()                                  {}
func (discard) DrawEntity(rules.Type, float32, float32) {}
func (discard) DrawBanner(string)                       {}
func (discard) ShowStats(systems.Counts)                {}
func (discard) ClearStats()                             {}

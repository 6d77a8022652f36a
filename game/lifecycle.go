package game

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rpsls/components"
	"github.com/pthm-cable/rpsls/rules"
	"github.com/pthm-cable/rpsls/systems"
	"github.com/pthm-cable/rpsls/telemetry"
)

// Start cancels any pending tick, respawns the population from setup and
// runs the first tick immediately. It is valid from every state.
func (g *Game) Start(setup Setup) {
	g.checkSpeed(setup.Speed)
	for _, t := range rules.All {
		if setup.Counts[t] < 0 {
			panic(fmt.Sprintf("game: negative %s count %d", t, setup.Counts[t]))
		}
	}

	g.beginRun()
	g.counts = setup.Counts
	g.spawnPopulation(setup)

	slog.Info("simulation_started",
		"run", g.run,
		"entities", len(g.entities),
		"counts", setup.Counts.Label(),
		"speed", setup.Speed,
	)

	g.state = Running
	g.tick()
}

// Reset cancels any pending tick, blanks the drawing surface and stats line
// and returns to Idle. Entities are left as they are.
func (g *Game) Reset() {
	g.cancelPending()
	g.renderer.Clear()
	g.stats.ClearStats()
	g.state = Idle

	slog.Info("simulation_reset", "run", g.run, "frame", g.frame)
}

// beginRun cancels any pending tick and clears every per-run record.
func (g *Game) beginRun() {
	g.cancelPending()

	g.newWorld()
	g.state = Idle
	g.over = false
	g.hasWinner = false
	g.winner = 0
	g.frame = 0
	g.counts = systems.Counts{}
	g.summary = telemetry.Summary{}
	g.series.Reset()
	g.collector.Reset()
	g.run++
	g.perfCollector.Reset(g.run)
}

func (g *Game) cancelPending() {
	if g.pending != 0 {
		g.sched.Cancel(g.pending)
		g.pending = 0
	}
}

// spawnPopulation creates count entities of each type, in type order.
func (g *Game) spawnPopulation(setup Setup) {
	w, h := float64(g.cfg.Arena.Width), float64(g.cfg.Arena.Height)
	for _, t := range rules.All {
		for i := 0; i < setup.Counts[t]; i++ {
			g.entities = append(g.entities, g.createEntity(t, w, h, setup.Speed))
		}
	}
}

// createEntity places an entity uniformly inside the inset arena, heading in
// a uniformly random direction.
func (g *Game) createEntity(t rules.Type, width, height float64, speed float32) ecs.Entity {
	if !t.Valid() {
		panic(fmt.Sprintf("game: spawning invalid type %d", uint8(t)))
	}
	g.checkSpeed(speed)

	inset := g.cfg.Entity.SpawnInset

	// Draw order is part of seeded reproducibility: angle, x, y
	angle := g.rng.Float64() * 2 * math.Pi
	x := g.rng.Float64()*(width-2*inset) + inset
	y := g.rng.Float64()*(height-2*inset) + inset

	pos := components.Position{X: float32(x), Y: float32(y)}
	vel := components.Velocity{
		X: float32(math.Cos(angle)) * speed,
		Y: float32(math.Sin(angle)) * speed,
	}
	species := components.Species{Type: t}
	contact := components.Contact{}

	return g.entityMapper.NewEntity(&pos, &vel, &species, &contact)
}

// checkSpeed panics unless speed is finite and within [0, bounce margin].
// A faster entity could step past the wall band and leave the arena.
func (g *Game) checkSpeed(speed float32) {
	if !isFinite(speed) || speed < 0 || speed > g.bounds.Margin {
		panic(fmt.Sprintf("game: invalid speed %v (bounce margin %v)", speed, g.bounds.Margin))
	}
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

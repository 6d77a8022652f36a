package game

import (
	"strings"
	"time"

	"github.com/pthm-cable/rpsls/components"
	"github.com/pthm-cable/rpsls/systems"
	"github.com/pthm-cable/rpsls/telemetry"
)

// tickScratch holds component pointers gathered once per tick.
// No entities are created or removed during a tick, so the pointers stay valid.
type tickScratch struct {
	pos     []*components.Position
	vel     []*components.Velocity
	species []*components.Species
	contact []*components.Contact
}

func (s *tickScratch) reset(n int) {
	s.pos = s.pos[:0]
	s.vel = s.vel[:0]
	s.species = s.species[:0]
	s.contact = s.contact[:0]
	if cap(s.pos) < n {
		s.pos = make([]*components.Position, 0, n)
		s.vel = make([]*components.Velocity, 0, n)
		s.species = make([]*components.Species, 0, n)
		s.contact = make([]*components.Contact, 0, n)
	}
}

// tick runs one frame of the simulation and schedules the next unless the run ended.
func (g *Game) tick() {
	g.pending = 0
	if g.state != Running {
		return
	}

	g.perfCollector.StartTick()

	if a, ok := g.clock.(Advancer); ok {
		a.Advance()
	}
	now := g.clock.Now()

	g.renderer.Clear()
	g.frame++

	g.perfCollector.StartPhase(telemetry.PhaseEntities)
	g.updateEntities(now)

	g.perfCollector.StartPhase(telemetry.PhaseCensus)
	g.updateCounts()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.updateStats()

	g.perfCollector.EndTick()

	if g.over {
		g.renderer.DrawBanner(g.bannerText())
		g.state = Ended
		g.finishRun()
		return
	}

	g.pending = g.sched.Schedule(g.tick)
}

// updateEntities moves each entity, resolves its collisions with every later
// entity and draws it in its resulting type.
func (g *Game) updateEntities(now time.Time) {
	s := &g.scratch
	s.reset(len(g.entities))
	for _, e := range g.entities {
		s.pos = append(s.pos, g.posMap.Get(e))
		s.vel = append(s.vel, g.velMap.Get(e))
		s.species = append(s.species, g.speciesMap.Get(e))
		s.contact = append(s.contact, g.contactMap.Get(e))
	}

	n := len(g.entities)
	for i := 0; i < n; i++ {
		systems.Move(s.pos[i], s.vel[i], g.bounds)

		a := systems.Body{Species: s.species[i], Contact: s.contact[i]}
		for j := i + 1; j < n; j++ {
			if !systems.Colliding(*s.pos[i], *s.pos[j], g.radius) {
				continue
			}
			b := systems.Body{Species: s.species[j], Contact: s.contact[j]}
			g.collector.RecordOutcome(systems.Resolve(a, b, now, g.cooldown))
		}

		g.renderer.DrawEntity(s.species[i].Type, s.pos[i].X, s.pos[i].Y)
	}
}

// updateCounts recounts the population from scratch.
func (g *Game) updateCounts() {
	var counts systems.Counts
	query := g.speciesFilter.Query()
	for query.Next() {
		counts.Add(query.Get().Type)
	}
	g.counts = counts
}

// updateStats pushes counts to the stats sink, samples on the interval and
// checks for termination.
func (g *Game) updateStats() {
	g.stats.ShowStats(g.counts)

	if g.frame%g.cfg.Telemetry.SampleInterval == 0 {
		g.flushTelemetry()
	}

	if g.over {
		return
	}
	if t, ok := g.counts.Survivor(); ok {
		g.winner = t
		g.hasWinner = true
		g.over = true
	} else if g.counts.Total() == 0 {
		g.over = true
	}
}

func (g *Game) bannerText() string {
	if !g.hasWinner {
		return "NO SURVIVORS"
	}
	return strings.ToUpper(g.winner.String()) + " WINS!"
}

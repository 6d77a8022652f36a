package main

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/rpsls/config"
	"github.com/pthm-cable/rpsls/game"
	"github.com/pthm-cable/rpsls/rules"
)

// RunResult is one row of runs.csv.
type RunResult struct {
	Run      int    `csv:"run"`
	Seed     int64  `csv:"seed"`
	Frames   int    `csv:"frames"`
	Ended    bool   `csv:"ended"`
	Winner   string `csv:"winner"`
	Rock     int    `csv:"rock"`
	Paper    int    `csv:"paper"`
	Scissors int    `csv:"scissors"`
	Lizard   int    `csv:"lizard"`
	Spock    int    `csv:"spock"`
}

func (r RunResult) winnerLabel() string {
	switch {
	case !r.Ended:
		return "timeout"
	case r.Winner == "":
		return "none"
	default:
		return r.Winner
	}
}

// runOnce plays a single seeded headless run.
func runOnce(cfg *config.Config, run int, seed int64, maxTicks int) RunResult {
	sched := game.NewFrameScheduler()
	g := game.NewGame(game.Options{
		Config:    cfg,
		Seed:      seed,
		Clock:     game.NewTickClock(cfg.Derived.TickDuration),
		Scheduler: sched,
	})

	g.Start(game.DefaultSetup(cfg))
	ended := game.RunUntilEnded(g, sched, maxTicks)

	counts := g.Counts()
	r := RunResult{
		Run:      run,
		Seed:     seed,
		Frames:   g.Frame(),
		Ended:    ended,
		Rock:     counts[rules.Rock],
		Paper:    counts[rules.Paper],
		Scissors: counts[rules.Scissors],
		Lizard:   counts[rules.Lizard],
		Spock:    counts[rules.Spock],
	}
	if w, ok := g.Winner(); ok {
		r.Winner = w.String()
	}
	return r
}

// WinCount is the number of runs a type won.
type WinCount struct {
	Type  string
	Count int
}

// SweepStats aggregates a batch of runs.
type SweepStats struct {
	Ended        int
	TimedOut     int
	MeanFrames   float64
	StdFrames    float64
	MedianFrames float64
	MaxFrames    float64
	Wins         []WinCount // every type, most wins first
}

// Aggregate computes frame statistics over ended runs and the winner distribution.
func Aggregate(results []RunResult) SweepStats {
	var agg SweepStats
	wins := make(map[string]int)

	frames := make([]float64, 0, len(results))
	for _, r := range results {
		if !r.Ended {
			agg.TimedOut++
			continue
		}
		agg.Ended++
		frames = append(frames, float64(r.Frames))
		if r.Winner != "" {
			wins[r.Winner]++
		}
	}

	switch len(frames) {
	case 0:
	case 1:
		agg.MeanFrames = frames[0]
		agg.MedianFrames = frames[0]
		agg.MaxFrames = frames[0]
	default:
		agg.MeanFrames, agg.StdFrames = stat.MeanStdDev(frames, nil)
		sort.Float64s(frames)
		agg.MedianFrames = stat.Quantile(0.5, stat.Empirical, frames, nil)
		agg.MaxFrames = floats.Max(frames)
	}

	for _, t := range rules.All {
		agg.Wins = append(agg.Wins, WinCount{Type: t.String(), Count: wins[t.String()]})
	}
	sort.SliceStable(agg.Wins, func(i, j int) bool {
		return agg.Wins[i].Count > agg.Wins[j].Count
	})

	return agg
}

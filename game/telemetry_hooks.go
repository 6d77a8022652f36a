package game

import (
	"log/slog"

	"github.com/pthm-cable/rpsls/telemetry"
)

// flushTelemetry appends a population sample and writes it out.
func (g *Game) flushTelemetry() {
	sample := telemetry.Sample{
		Run:    g.run,
		Frame:  g.frame,
		Counts: g.counts,
		Window: g.collector.Flush(g.frame),
	}
	g.series.Append(sample)

	// Log stats if enabled (console output)
	if g.logStats {
		sample.LogStats()
	}

	// Write to CSV if output manager is enabled
	if g.outputManager != nil {
		if err := g.outputManager.WriteSample(sample); err != nil {
			slog.Error("failed to write sample", "error", err)
		}
	}
}

// finishRun summarises an ended run.
func (g *Game) finishRun() {
	winner := ""
	if g.hasWinner {
		winner = g.winner.String()
	}

	g.summary = telemetry.Summarize(g.series, g.run, g.frame, winner)
	perfStats := g.perfCollector.Stats()

	slog.Info("simulation_ended",
		"run", g.run,
		"frame", g.frame,
		"winner", winner,
	)

	if g.logStats {
		slog.Info("run_summary", "summary", g.summary)
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteSummary(g.summary); err != nil {
			slog.Error("failed to write summary", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, g.frame); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

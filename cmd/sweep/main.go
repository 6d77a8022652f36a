// Package main runs batches of seeded headless simulations and reports how
// long runs last and which types win.
//
// Usage: go run ./cmd/sweep -runs 50 -output sweep-out
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/rpsls/config"
)

// formatDuration formats a duration as MM:SS, or HH:MM:SS for longer runs.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	runs := flag.Int("runs", 20, "Number of seeded runs")
	firstSeed := flag.Int64("seed", 42, "Seed of the first run; later runs add 1000 each")
	maxTicks := flag.Int("max-ticks", 20000, "Give up on a run after N ticks")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if *outputDir == "" {
		fmt.Fprintln(os.Stderr, "--output is required")
		os.Exit(2)
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	// Sweeps are only reproducible on the tick clock
	cfg.Clock.Mode = config.ClockTick

	seeds := make([]int64, *runs)
	for i := range seeds {
		seeds[i] = *firstSeed + int64(i)*1000
	}

	startTime := time.Now()
	results := make([]RunResult, 0, len(seeds))
	for i, seed := range seeds {
		r := runOnce(cfg, i+1, seed, *maxTicks)
		results = append(results, r)

		elapsed := time.Since(startTime)
		remaining := elapsed / time.Duration(i+1) * time.Duration(len(seeds)-i-1)
		fmt.Printf("Run %d/%d: seed=%d frames=%d winner=%s | elapsed: %s, ETA: %s\n",
			i+1, len(seeds), seed, r.Frames, r.winnerLabel(),
			formatDuration(elapsed), formatDuration(remaining))
	}

	resultsPath := filepath.Join(*outputDir, "runs.csv")
	f, err := os.Create(resultsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create results file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := gocsv.MarshalFile(&results, f); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write results: %v\n", err)
		os.Exit(1)
	}

	agg := Aggregate(results)
	fmt.Printf("\nSweep complete: %d runs in %s\n", len(results), formatDuration(time.Since(startTime)))
	fmt.Printf("Ended: %d  Timed out: %d\n", agg.Ended, agg.TimedOut)
	fmt.Printf("Frames to end: mean=%.1f std=%.1f median=%.1f max=%.0f\n", agg.MeanFrames, agg.StdFrames, agg.MedianFrames, agg.MaxFrames)
	fmt.Println("Wins:")
	for _, w := range agg.Wins {
		fmt.Printf("  %-9s %d\n", w.Type, w.Count)
	}

	if err := cfg.WriteYAML(filepath.Join(*outputDir, "config.yaml")); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write config snapshot: %v\n", err)
	}
	fmt.Printf("\nResults saved to: %s\n", resultsPath)
}

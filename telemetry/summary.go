package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/rpsls/rules"
)

// TypeSummary describes one type's trajectory over a run.
type TypeSummary struct {
	Run       int     `csv:"run"`
	Type      string  `csv:"type"`
	Mean      float64 `csv:"mean"`
	StdDev    float64 `csv:"std"`
	Peak      int     `csv:"peak"`
	PeakFrame int     `csv:"peak_frame"`
	ExtinctAt int     `csv:"extinct_at"` // first sampled frame with zero count, -1 if never
}

// Summary aggregates a finished run.
type Summary struct {
	Run     int
	Frames  int
	Winner  string // empty when nothing survived
	Samples int
	Types   [rules.NumTypes]TypeSummary
}

// Summarize computes per-type statistics over the sampled series.
func Summarize(series *Series, run, frames int, winner string) Summary {
	sum := Summary{
		Run:     run,
		Frames:  frames,
		Winner:  winner,
		Samples: series.Len(),
	}

	labels := series.Labels()
	for _, t := range rules.All {
		ts := TypeSummary{Run: run, Type: t.String(), ExtinctAt: -1}

		data := series.Data(t)
		if len(data) > 0 {
			xs := make([]float64, len(data))
			for i, v := range data {
				xs[i] = float64(v)
			}

			if len(xs) > 1 {
				ts.Mean, ts.StdDev = stat.MeanStdDev(xs, nil)
			} else {
				ts.Mean = xs[0]
			}

			peakIdx := floats.MaxIdx(xs)
			ts.Peak = data[peakIdx]
			ts.PeakFrame = labels[peakIdx]

			// A type can't come back once it is gone, so the first zero is the extinction.
			for i, v := range data {
				if v == 0 {
					ts.ExtinctAt = labels[i]
					break
				}
			}
		}

		sum.Types[t] = ts
	}

	return sum
}

// FirstExtinct returns the type that died out at the earliest sampled frame.
// Ties go to the type listed first. ok is false if no type died out.
func (s Summary) FirstExtinct() (ts TypeSummary, ok bool) {
	for _, t := range s.Types {
		if t.ExtinctAt < 0 {
			continue
		}
		if !ok || t.ExtinctAt < ts.ExtinctAt {
			ts, ok = t, true
		}
	}
	return ts, ok
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("run", s.Run),
		slog.Int("frames", s.Frames),
		slog.String("winner", s.Winner),
		slog.Int("samples", s.Samples),
	}
	for _, ts := range s.Types {
		attrs = append(attrs, slog.Group(ts.Type,
			slog.Float64("mean", ts.Mean),
			slog.Float64("std", ts.StdDev),
			slog.Int("peak", ts.Peak),
			slog.Int("extinct_at", ts.ExtinctAt),
		))
	}
	return slog.GroupValue(attrs...)
}

package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/rpsls/rules"
)

// SampleRecord is the flat CSV row for one sample.
type SampleRecord struct {
	Run         int `csv:"run"`
	Frame       int `csv:"frame"`
	Rock        int `csv:"rock"`
	Paper       int `csv:"paper"`
	Scissors    int `csv:"scissors"`
	Lizard      int `csv:"lizard"`
	Spock       int `csv:"spock"`
	Total       int `csv:"total"`
	Collisions  int `csv:"collisions"`
	Conversions int `csv:"conversions"`
	Ties        int `csv:"ties"`
	Suppressed  int `csv:"suppressed"`
}

// Record flattens the sample for CSV output.
func (s Sample) Record() SampleRecord {
	return SampleRecord{
		Run:         s.Run,
		Frame:       s.Frame,
		Rock:        s.Counts[rules.Rock],
		Paper:       s.Counts[rules.Paper],
		Scissors:    s.Counts[rules.Scissors],
		Lizard:      s.Counts[rules.Lizard],
		Spock:       s.Counts[rules.Spock],
		Total:       s.Counts.Total(),
		Collisions:  s.Window.Collisions,
		Conversions: s.Window.Conversions,
		Ties:        s.Window.Ties,
		Suppressed:  s.Window.Suppressed,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s Sample) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("run", s.Run),
		slog.Int("frame", s.Frame),
	}
	for _, t := range rules.All {
		attrs = append(attrs, slog.Int(t.String(), s.Counts[t]))
	}
	attrs = append(attrs,
		slog.Int("collisions", s.Window.Collisions),
		slog.Int("conversions", s.Window.Conversions),
		slog.Int("ties", s.Window.Ties),
		slog.Int("suppressed", s.Window.Suppressed),
	)
	return slog.GroupValue(attrs...)
}

// LogStats logs the sample using slog.
func (s Sample) LogStats() {
	slog.Info("sample", "stats", s)
}

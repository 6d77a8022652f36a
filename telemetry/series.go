// Package telemetry provides population sampling, run summaries and CSV output.
package telemetry

import (
	"github.com/pthm-cable/rpsls/rules"
	"github.com/pthm-cable/rpsls/systems"
)

// Sample is a population snapshot taken at a sampling frame.
type Sample struct {
	Run    int
	Frame  int
	Counts systems.Counts
	Window WindowStats
}

// Series is the chart feed: frame labels plus one data series per type.
type Series struct {
	labels  []int
	data    [rules.NumTypes][]int
	samples []Sample
}

// NewSeries creates an empty series.
func NewSeries() *Series {
	return &Series{}
}

// Append adds a sample to the end of the series.
func (s *Series) Append(sm Sample) {
	s.labels = append(s.labels, sm.Frame)
	for _, t := range rules.All {
		s.data[t] = append(s.data[t], sm.Counts[t])
	}
	s.samples = append(s.samples, sm)
}

// Reset empties the series, keeping allocated capacity.
func (s *Series) Reset() {
	s.labels = s.labels[:0]
	for i := range s.data {
		s.data[i] = s.data[i][:0]
	}
	s.samples = s.samples[:0]
}

// Len returns the number of samples.
func (s *Series) Len() int {
	return len(s.labels)
}

// Labels returns the sampled frame indices.
func (s *Series) Labels() []int {
	return s.labels
}

// Data returns the sampled counts for type t.
func (s *Series) Data(t rules.Type) []int {
	return s.data[t]
}

// Samples returns every sample in order.
func (s *Series) Samples() []Sample {
	return s.samples
}

// Last returns the most recent sample.
func (s *Series) Last() (Sample, bool) {
	if len(s.samples) == 0 {
		return Sample{}, false
	}
	return s.samples[len(s.samples)-1], true
}

// Peak returns the largest count in any series, for chart scaling.
func (s *Series) Peak() int {
	peak := 0
	for _, d := range s.data {
		for _, v := range d {
			if v > peak {
				peak = v
			}
		}
	}
	return peak
}

package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/rpsls/config"
)

// OutputManager handles structured run output with CSV logging.
// A nil *OutputManager is valid and discards everything.
type OutputManager struct {
	dir            string
	populationFile *os.File
	summaryFile    *os.File
	perfFile       *os.File

	// Track if headers have been written
	populationHeaderWritten bool
	summaryHeaderWritten    bool
	perfHeaderWritten       bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	var err error
	if om.populationFile, err = os.Create(filepath.Join(dir, "population.csv")); err != nil {
		return nil, fmt.Errorf("creating population.csv: %w", err)
	}
	if om.summaryFile, err = os.Create(filepath.Join(dir, "summary.csv")); err != nil {
		om.populationFile.Close()
		return nil, fmt.Errorf("creating summary.csv: %w", err)
	}
	if om.perfFile, err = os.Create(filepath.Join(dir, "perf.csv")); err != nil {
		om.populationFile.Close()
		om.summaryFile.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteSample writes one sample row to population.csv.
func (om *OutputManager) WriteSample(s Sample) error {
	if om == nil {
		return nil
	}
	records := []SampleRecord{s.Record()}
	if err := marshal(records, om.populationFile, &om.populationHeaderWritten); err != nil {
		return fmt.Errorf("writing sample: %w", err)
	}
	return nil
}

// WriteSummary writes one row per type to summary.csv.
func (om *OutputManager) WriteSummary(s Summary) error {
	if om == nil {
		return nil
	}
	records := s.Types[:]
	if err := marshal(records, om.summaryFile, &om.summaryHeaderWritten); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// WritePerf writes the timings of a run that ended at frame to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, frame int) error {
	if om == nil {
		return nil
	}
	records := []PerfStatsCSV{stats.ToCSV(frame)}
	if err := marshal(records, om.perfFile, &om.perfHeaderWritten); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// marshal writes records, including the header only on the first call per file.
func marshal(records any, f *os.File, headerWritten *bool) error {
	if *headerWritten {
		return gocsv.MarshalWithoutHeaders(records, f)
	}
	if err := gocsv.Marshal(records, f); err != nil {
		return err
	}
	*headerWritten = true
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, f := range []*os.File{om.populationFile, om.summaryFile, om.perfFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

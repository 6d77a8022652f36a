package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/rpsls/config"
	"github.com/pthm-cable/rpsls/systems"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}
	// Every method is a no-op on nil
	if err := om.WriteSample(Sample{}); err != nil {
		t.Error(err)
	}
	if err := om.WriteSummary(Summary{}); err != nil {
		t.Error(err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil {
		t.Error(err)
	}
	if err := om.WriteConfig(nil); err != nil {
		t.Error(err)
	}
	if om.Dir() != "" {
		t.Error("nil manager should report empty dir")
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	for _, frame := range []int{20, 40, 60} {
		if err := om.WriteSample(Sample{Frame: frame, Counts: systems.Counts{1, 2, 3, 4, 5}}); err != nil {
			t.Fatalf("WriteSample: %v", err)
		}
	}

	s := NewSeries()
	s.Append(Sample{Frame: 20, Counts: systems.Counts{1, 0, 0, 0, 0}})
	if err := om.WriteSummary(Summarize(s, 0, 20, "rock")); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	pop, err := os.ReadFile(filepath.Join(dir, "population.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(pop)), "\n")
	if len(lines) != 4 {
		t.Fatalf("population.csv has %d lines, want header + 3 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "run,frame,rock,paper") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if strings.Count(string(pop), "run,frame") != 1 {
		t.Error("header written more than once")
	}

	summary, err := os.ReadFile(filepath.Join(dir, "summary.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if got := len(strings.Split(strings.TrimSpace(string(summary)), "\n")); got != 6 {
		t.Errorf("summary.csv has %d lines, want header + 5 types", got)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot missing: %v", err)
	}
}

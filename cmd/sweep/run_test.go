package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/rpsls/config"
)

func TestAggregate(t *testing.T) {
	results := []RunResult{
		{Run: 1, Frames: 100, Ended: true, Winner: "paper"},
		{Run: 2, Frames: 200, Ended: true, Winner: "paper"},
		{Run: 3, Frames: 300, Ended: true, Winner: "spock"},
		{Run: 4, Frames: 5000, Ended: false},
	}

	agg := Aggregate(results)

	if agg.Ended != 3 || agg.TimedOut != 1 {
		t.Errorf("ended/timed out = %d/%d, want 3/1", agg.Ended, agg.TimedOut)
	}
	if math.Abs(agg.MeanFrames-200) > 1e-9 {
		t.Errorf("mean = %v, want 200", agg.MeanFrames)
	}
	if math.Abs(agg.StdFrames-100) > 1e-9 {
		t.Errorf("std = %v, want 100", agg.StdFrames)
	}
	if agg.MedianFrames != 200 || agg.MaxFrames != 300 {
		t.Errorf("median/max = %v/%v, want 200/300", agg.MedianFrames, agg.MaxFrames)
	}
	if len(agg.Wins) != 5 {
		t.Fatalf("wins has %d entries, want 5", len(agg.Wins))
	}
	if agg.Wins[0].Type != "paper" || agg.Wins[0].Count != 2 {
		t.Errorf("top winner = %+v, want paper 2", agg.Wins[0])
	}
}

func TestAggregateNoEndedRuns(t *testing.T) {
	agg := Aggregate([]RunResult{{Frames: 10}})
	if agg.MeanFrames != 0 || agg.StdFrames != 0 || math.IsNaN(agg.MedianFrames) {
		t.Errorf("empty aggregate = %+v", agg)
	}
}

func TestRunOnceSingleType(t *testing.T) {
	cfg, err := config.LoadBytes([]byte("population:\n  rock: 0\n  paper: 0\n  scissors: 0\n  lizard: 0\n  spock: 6\n"))
	if err != nil {
		t.Fatal(err)
	}

	r := runOnce(cfg, 1, 99, 100)
	if !r.Ended || r.Winner != "spock" || r.Frames != 1 {
		t.Errorf("result = %+v, want spock after 1 frame", r)
	}
	if r.Spock != 6 {
		t.Errorf("spock count = %d, want 6", r.Spock)
	}
}

package automation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/san-kum/dsaviz/internal/registry"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

const scenarioYAML = `
name: warmup
description: a few sorts and a search
steps:
  - category: Sorting
    algorithm: Bubble
    input: "5,3,8,1,2"
    save_as: bubble
  - category: Searching
    algorithm: Binary
    example: true
  - category: Searching
    algorithm: Linear
    input: "1,2,3"
`

func TestParseScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "warmup" || len(sc.Steps) != 3 {
		t.Fatalf("unexpected scenario %+v", sc)
	}
	if sc.Steps[0].Input.Input != "5,3,8,1,2" || sc.Steps[0].SaveAs != "bubble" {
		t.Errorf("inline input not decoded: %+v", sc.Steps[0])
	}
	if !sc.Steps[1].Example {
		t.Error("expected example flag on step 2")
	}

	if _, err := ParseScenario([]byte("name: empty\n")); !errors.Is(err, ErrEmptyScenario) {
		t.Errorf("expected ErrEmptyScenario, got %v", err)
	}
}

func TestRunScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	results, err := RunScenario(context.Background(), sc, registry.Default(), quiet)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if got := results[0].Sequence.Last().View.Array; len(got) != 5 || got[0] != 1 {
		t.Errorf("bubble did not sort: %v", got)
	}
	if results[1].Input.Target == "" {
		t.Error("example should have supplied a target")
	}
	if !results[2].Sequence.Invalid() {
		t.Error("linear search without a target should be rejected")
	}

	sum := Summarize(results)
	if sum.Runs != 3 || sum.Rejected != 1 {
		t.Errorf("unexpected summary %+v", sum)
	}
}

func TestRunScenarioStopsOnUnknownAlgorithm(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{{Category: "Sorting", Algorithm: "Bogo"}}}
	_, err := RunScenario(context.Background(), sc, registry.Default(), quiet)
	if !errors.Is(err, registry.ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestRunScenarioHonoursCancellation(t *testing.T) {
	sc, _ := ParseScenario([]byte(scenarioYAML))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := RunScenario(ctx, sc, registry.Default(), quiet)
	if !errors.Is(err, context.Canceled) || len(results) != 0 {
		t.Errorf("expected immediate cancellation, got %d results, %v", len(results), err)
	}
}

func TestRunTrials(t *testing.T) {
	cfg := &TrialConfig{Category: "Sorting", Algorithm: "Quick", Size: 12, MaxValue: 50, NumTrials: 20, Seed: 3}
	results, err := RunTrials(context.Background(), cfg, registry.Default(), quiet)
	if err != nil {
		t.Fatal(err)
	}
	sorted, mean := TrialStats(results)
	if sorted != 20 {
		t.Errorf("expected every trial sorted, got %d", sorted)
	}
	if mean <= 2 {
		t.Errorf("mean steps too small: %v", mean)
	}

	cfg.Algorithm = "Binary"
	cfg.Category = "Searching"
	if _, err := RunTrials(context.Background(), cfg, registry.Default(), quiet); err == nil {
		t.Error("expected error for non-array algorithm")
	}
}

func TestRunTrialsIndependentOfWorkers(t *testing.T) {
	cfg := &TrialConfig{Category: "Sorting", Algorithm: "Merge", Size: 9, MaxValue: 20, NumTrials: 15, Seed: 11, Workers: 1}
	serial, err := RunTrials(context.Background(), cfg, registry.Default(), quiet)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Workers = 4
	parallel, err := RunTrials(context.Background(), cfg, registry.Default(), quiet)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(serial, parallel) {
		t.Error("trial results depend on the worker count")
	}
	for i, r := range parallel {
		if r.TrialID != i {
			t.Errorf("result %d has trial id %d", i, r.TrialID)
		}
	}
}

func TestRunTrialsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := &TrialConfig{Category: "Sorting", Algorithm: "Quick", Size: 5, MaxValue: 9, NumTrials: 5, Seed: 1}
	if _, err := RunTrials(ctx, cfg, registry.Default(), quiet); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

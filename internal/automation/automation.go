package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/san-kum/dsaviz/internal/analysis"
	"github.com/san-kum/dsaviz/internal/config"
	"github.com/san-kum/dsaviz/internal/input"
	"github.com/san-kum/dsaviz/internal/registry"
	"github.com/san-kum/dsaviz/internal/step"
	"gopkg.in/yaml.v3"
)

var ErrEmptyScenario = errors.New("automation: scenario has no steps")

// Scenario is a scripted batch of generations.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep names one algorithm and its raw inputs. With Example set, the
// built-in example fills any field the step leaves empty.
type ScenarioStep struct {
	Category  string    `yaml:"category"`
	Algorithm string    `yaml:"algorithm"`
	Example   bool      `yaml:"example"`
	Input     input.Raw `yaml:",inline"`
	SaveAs    string    `yaml:"save_as"`
}

type Result struct {
	Category  string
	Algorithm string
	SaveAs    string
	Input     input.Raw
	Sequence  step.Sequence
	Stats     analysis.Stats
	Elapsed   time.Duration
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("automation: %w", err)
	}
	if len(scenario.Steps) == 0 {
		return nil, ErrEmptyScenario
	}
	return &scenario, nil
}

// RunScenario generates every step in order. Rejected inputs are results
// like any other; only unknown algorithms and a cancelled context stop the
// run.
func RunScenario(ctx context.Context, scenario *Scenario, reg *registry.Registry, log *slog.Logger) ([]Result, error) {
	if log == nil {
		log = slog.Default()
	}
	results := make([]Result, 0, len(scenario.Steps))

	for i, st := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		log.Info("running step", "step", i+1, "of", len(scenario.Steps), "algorithm", st.Algorithm)

		raw := st.Input
		if st.Example {
			if ex, ok := config.GetExample(st.Algorithm); ok {
				raw = raw.Merge(ex)
			}
		}

		start := time.Now()
		seq, err := reg.Apply(st.Category, st.Algorithm, raw)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		elapsed := time.Since(start)
		if seq.Invalid() {
			log.Warn("input rejected", "step", i+1, "algorithm", st.Algorithm, "reason", seq.Last().Narration)
		}

		results = append(results, Result{
			Category:  st.Category,
			Algorithm: st.Algorithm,
			SaveAs:    st.SaveAs,
			Input:     raw,
			Sequence:  seq,
			Stats:     analysis.Summarize(seq),
			Elapsed:   elapsed,
		})
	}

	return results, nil
}

// Summary totals a scenario run.
type Summary struct {
	Runs     int
	Rejected int
	Steps    int
	Elapsed  time.Duration
}

func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		s.Runs++
		s.Steps += r.Stats.Steps
		s.Elapsed += r.Elapsed
		if r.Stats.Invalid {
			s.Rejected++
		}
	}
	return s
}

// TrialConfig drives repeated runs of an array algorithm on random inputs.
type TrialConfig struct {
	Category  string
	Algorithm string
	Size      int
	MaxValue  int
	NumTrials int
	Seed      int64
	// Workers bounds concurrent generators; zero means GOMAXPROCS.
	Workers   int
}

type TrialResult struct {
	TrialID int
	Input   []int
	Steps   int
	// Sorted reports whether the last array view is in non-decreasing order.
	Sorted bool
}

func RunTrials(ctx context.Context, cfg *TrialConfig, reg *registry.Registry, log *slog.Logger) ([]TrialResult, error) {
	if log == nil {
		log = slog.Default()
	}
	entry, ok := reg.Lookup(cfg.Category, cfg.Algorithm)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", registry.ErrUnknownAlgorithm, cfg.Category, cfg.Algorithm)
	}
	if entry.Family != registry.FamilyNumbers {
		return nil, fmt.Errorf("automation: %s does not take a plain array", entry.Key)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	maxValue := max(cfg.MaxValue, 1)

	inputs := make([][]int, cfg.NumTrials)
	for trial := range inputs {
		a := make([]int, cfg.Size)
		for i := range a {
			a[i] = rng.Intn(maxValue)
		}
		inputs[trial] = a
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]TrialResult, cfg.NumTrials)
	errs := make([]error, cfg.NumTrials)
	sem := make(chan struct{}, workers)
	var (
		wg   sync.WaitGroup
		done atomic.Int64
	)
	for trial, a := range inputs {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			seq, err := reg.Generate(entry.Category, entry.Algorithm, registry.Numbers{Values: a})
			if err != nil {
				errs[trial] = err
				return
			}
			last := seq.Last()
			results[trial] = TrialResult{
				TrialID: trial,
				Input:   a,
				Steps:   seq.Len(),
				Sorted:  last.View.Kind == step.KindArray && slices.IsSorted(last.View.Array),
			}
			if n := done.Add(1); n%10 == 0 {
				log.Info("trials progress", "done", n, "of", cfg.NumTrials)
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// TrialStats returns the sorted count and the mean step count.
func TrialStats(results []TrialResult) (sortedCount int, meanSteps float64) {
	if len(results) == 0 {
		return 0, 0
	}
	total := 0
	for _, r := range results {
		if r.Sorted {
			sortedCount++
		}
		total += r.Steps
	}
	return sortedCount, float64(total) / float64(len(results))
}

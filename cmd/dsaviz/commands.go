package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/san-kum/dsaviz/internal/analysis"
	"github.com/san-kum/dsaviz/internal/automation"
	"github.com/san-kum/dsaviz/internal/config"
	"github.com/san-kum/dsaviz/internal/export"
	"github.com/san-kum/dsaviz/internal/input"
	"github.com/san-kum/dsaviz/internal/playback"
	"github.com/san-kum/dsaviz/internal/registry"
	"github.com/san-kum/dsaviz/internal/step"
	"github.com/san-kum/dsaviz/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func resolve(name string) (registry.Entry, error) {
	e, ok := reg.Lookup(category, name)
	if !ok {
		return registry.Entry{}, fmt.Errorf("%w: %s (see dsaviz list)", registry.ErrUnknownAlgorithm, name)
	}
	return e, nil
}

// inputFor returns the flag inputs, completed from the built-in example
// when --example is set or when no input flag was given at all.
func inputFor(e registry.Entry) input.Raw {
	ex, ok := config.GetExample(e.Algorithm)
	switch {
	case example && ok:
		return raw.Merge(ex)
	case raw.IsZero() && ok:
		log.Info("no input given, using the built-in example", "algorithm", e.Algorithm)
		return ex
	}
	return raw
}

func generate(e registry.Entry, r input.Raw) (step.Sequence, error) {
	start := time.Now()
	seq, err := reg.Apply(e.Category, e.Algorithm, r)
	if err != nil {
		return step.Sequence{}, err
	}
	log.Debug("generated", "category", e.Category, "algorithm", e.Algorithm, "steps", seq.Len(), "elapsed", time.Since(start))
	if seq.Invalid() {
		log.Warn("input rejected", "algorithm", e.Algorithm, "reason", seq.Err())
	}
	return seq, nil
}

func generateArg(args []string) (registry.Entry, input.Raw, step.Sequence, error) {
	e, err := resolve(args[0])
	if err != nil {
		return e, input.Raw{}, step.Sequence{}, err
	}
	r := inputFor(e)
	seq, err := generate(e, r)
	return e, r, seq, err
}

func styles() viz.Styles { return viz.NewStyles(viz.GetTheme(cfg.Theme)) }

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tALGORITHM\tINPUT\tVIEW")
	for _, e := range reg.Entries() {
		if len(args) == 1 && e.Category != args[0] {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%v\t%s\n", e.Category, e.Algorithm, e.Family.Fields(), e.View)
	}
	return w.Flush()
}

func runAlgorithm(cmd *cobra.Command, args []string) error {
	_, _, seq, err := generateArg(args)
	if err != nil {
		return err
	}
	st := styles()
	steps := seq.Steps()
	for i, s := range steps {
		if final && i != len(steps)-1 {
			continue
		}
		fmt.Printf("[%d/%d] %s\n", i+1, len(steps), s.Narration)
		if !quiet {
			fmt.Println(viz.RenderStep(s, st))
			fmt.Println()
		}
	}
	return nil
}

func playAlgorithm(cmd *cobra.Command, args []string) error {
	e, r, seq, err := generateArg(args)
	if err != nil {
		return err
	}
	if !headless {
		return viz.Run(viz.Options{
			Registry:  reg,
			Config:    cfg,
			Logger:    log,
			Selection: registry.Selection{Category: e.Category, Algorithm: e.Algorithm},
			Raw:       r,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return playHeadless(ctx, os.Stdout, seq)
}

// playHeadless autoplays seq on the real clock and prints each step once.
func playHeadless(ctx context.Context, w io.Writer, seq step.Sequence) error {
	st := styles()
	done := make(chan struct{})
	var (
		mu     sync.Mutex
		last   = -1
		finish = sync.OnceFunc(func() { close(done) })
	)

	p := playback.NewPlayer(playback.RealClock(), playback.WithLogger(log))
	defer p.Close()
	if err := p.SetIntervalMs(cfg.IntervalMs); err != nil {
		return err
	}
	p.Subscribe(func(f playback.Frame) {
		mu.Lock()
		defer mu.Unlock()
		if f.Empty() || f.Index == last {
			return
		}
		last = f.Index
		fmt.Fprintf(w, "[%d/%d] %s\n%s\n\n", f.Index+1, f.Total, f.Step.Narration, viz.RenderStep(f.Step, st))
		if f.Index == f.Total-1 {
			finish()
		}
	})
	p.Load(seq)
	p.Play()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func showExamples(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ALGORITHM\tCATEGORY")
		for _, e := range reg.Entries() {
			if _, ok := config.GetExample(e.Algorithm); ok {
				fmt.Fprintf(w, "%s\t%s\n", e.Algorithm, e.Category)
			}
		}
		return w.Flush()
	}
	ex, ok := config.GetExample(args[0])
	if !ok {
		return fmt.Errorf("no example for %s (available: %v)", args[0], config.ListExamples())
	}
	data, err := yaml.Marshal(ex)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func exportAlgorithm(cmd *cobra.Command, args []string) error {
	e, r, seq, err := generateArg(args)
	if err != nil {
		return err
	}

	if outDir != "" {
		store := export.New(outDir)
		if err := store.Init(); err != nil {
			return err
		}
		id, err := store.Save(e.Category, e.Algorithm, r, seq, analysis.Summarize(seq).Metrics())
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", id)
		return nil
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "json":
		return export.WriteJSON(w, export.NewDocument(e.Category, e.Algorithm, seq))
	case "csv":
		return export.WriteCSV(w, seq)
	case "svg":
		s, err := stepOf(seq, stepAt)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, export.StepToSVG(s, 800, 400))
		return err
	}
	return fmt.Errorf("unknown format: %s (available: json, csv, svg)", format)
}

// stepOf returns step i, or the last step when i is negative.
func stepOf(seq step.Sequence, i int) (step.Step, error) {
	if i < 0 {
		i = seq.Len() - 1
	}
	if i >= seq.Len() {
		return step.Step{}, fmt.Errorf("step %d out of range (0-%d)", i, seq.Len()-1)
	}
	return seq.At(i), nil
}

func plotAlgorithm(cmd *cobra.Command, args []string) error {
	e, _, seq, err := generateArg(args)
	if err != nil {
		return err
	}
	if stepAt >= 0 {
		s, err := stepOf(seq, stepAt)
		if err != nil {
			return err
		}
		chart := viz.ArrayChart(s, width, height)
		if chart == "" {
			return fmt.Errorf("step %d of %s has no array to plot", stepAt, e.Algorithm)
		}
		fmt.Println(chart)
		return nil
	}
	series := analysis.Disorder(seq)
	fmt.Println(viz.SeriesChart(series, "inversions per step", width, height))
	return nil
}

func statsAlgorithm(cmd *cobra.Command, args []string) error {
	e, _, seq, err := generateArg(args)
	if err != nil {
		return err
	}
	st := analysis.Summarize(seq)

	fmt.Printf("%s / %s\n\n", e.Category, e.Algorithm)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "steps\t%d\n", st.Steps)
	fmt.Fprintf(w, "comparisons\t%d\n", st.Comparisons)
	fmt.Fprintf(w, "swaps\t%d\n", st.Swaps)
	fmt.Fprintf(w, "writes\t%d\n", st.Writes)
	fmt.Fprintf(w, "rejected\t%v\n", st.Invalid)
	fmt.Fprintln(w, "\t")
	fmt.Fprintln(w, "ROLE\tSTEPS")
	roles := make([]string, 0, len(st.Roles))
	for r := range st.Roles {
		roles = append(roles, string(r))
	}
	slices.Sort(roles)
	for _, r := range roles {
		fmt.Fprintf(w, "%s\t%d\n", r, st.Roles[step.Role(r)])
	}
	return w.Flush()
}

func benchAlgorithm(cmd *cobra.Command, args []string) error {
	e, err := resolve(args[0])
	if err != nil {
		return err
	}
	if e.Family != registry.FamilyNumbers {
		return fmt.Errorf("%s takes %s input; bench needs a plain array algorithm", e.Algorithm, e.Family)
	}
	gen := func(a []int) step.Sequence {
		seq, _ := reg.Generate(e.Category, e.Algorithm, registry.Numbers{Values: a})
		return seq
	}

	fmt.Printf("benchmarking %s...\n", e.Algorithm)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tSTEPS\tCOMPARISONS\tSWAPS\tWRITES")
	for _, p := range analysis.Growth(gen, sizes, seed) {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\n", p.N, p.Steps, p.Stats.Comparisons, p.Stats.Swaps, p.Stats.Writes)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if trials <= 0 || len(sizes) == 0 {
		return nil
	}
	start := time.Now()
	results, err := automation.RunTrials(cmd.Context(), &automation.TrialConfig{
		Category:  e.Category,
		Algorithm: e.Algorithm,
		Size:      slices.Max(sizes),
		MaxValue:  100,
		NumTrials: trials,
		Seed:      seed,
	}, reg, log)
	if err != nil {
		return err
	}
	sorted, mean := automation.TrialStats(results)
	fmt.Printf("\n%d trials at n=%d in %v\n", len(results), slices.Max(sizes), time.Since(start))
	fmt.Printf("mean steps: %.1f\n", mean)
	if e.Category == registry.CatSorting {
		fmt.Printf("sorted: %d/%d\n", sorted, len(results))
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("%s\n", sc.Description)
	}
	results, err := automation.RunScenario(ctx, sc, reg, log)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tCATEGORY\tALGORITHM\tSTEPS\tSTATUS\tELAPSED")
	for i, r := range results {
		status := "ok"
		if r.Sequence.Invalid() {
			status = r.Sequence.Last().Narration
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%v\n", i+1, r.Category, r.Algorithm, r.Stats.Steps, status, r.Elapsed)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	sum := automation.Summarize(results)
	fmt.Printf("\n%d runs, %d rejected, %d steps in %v\n", sum.Runs, sum.Rejected, sum.Steps, sum.Elapsed)

	if outDir == "" {
		return err
	}
	store := export.New(outDir)
	if err := store.Init(); err != nil {
		return err
	}
	for _, r := range results {
		if r.SaveAs == "" {
			continue
		}
		id, err := store.SaveNamed(r.SaveAs, r.Category, r.Algorithm, r.Input, r.Sequence, r.Stats.Metrics())
		if err != nil {
			return err
		}
		fmt.Printf("saved %s\n", id)
	}
	return err
}

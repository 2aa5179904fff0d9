package main

import (
	"log/slog"
	"os"

	"github.com/san-kum/dsaviz/internal/config"
	"github.com/san-kum/dsaviz/internal/input"
	"github.com/san-kum/dsaviz/internal/logging"
	"github.com/san-kum/dsaviz/internal/registry"
	"github.com/san-kum/dsaviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	logFile    string
	intervalMs int
	theme      string

	category string
	raw      input.Raw
	example  bool

	// Output
	format   string
	outPath  string
	outDir   string
	stepAt   int
	final    bool
	quiet    bool
	headless bool

	// Bench
	sizes  []int
	trials int
	seed   int64

	// Plot
	width  int
	height int
)

var (
	cfg      *config.Config
	log      *slog.Logger
	closeLog func() error
	reg      = registry.Default()
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "dsaviz",
		Short:             "step-by-step algorithm visualizer",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeLog != nil {
				return closeLog()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.Run(viz.Options{Registry: reg, Config: cfg, Logger: log})
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write JSON logs to this file")
	rootCmd.PersistentFlags().IntVar(&intervalMs, "interval", config.DefaultIntervalMs, "autoplay interval in milliseconds")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	listCmd := &cobra.Command{
		Use:   "list [category]",
		Short: "list algorithms",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listAlgorithms,
	}

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "print every step of an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE:  runAlgorithm,
	}
	addInputFlags(runCmd)
	runCmd.Flags().BoolVar(&final, "final", false, "print only the last step")
	runCmd.Flags().BoolVar(&quiet, "quiet", false, "print narrations only")

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "open the player on an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE:  playAlgorithm,
	}
	addInputFlags(playCmd)
	playCmd.Flags().BoolVar(&headless, "headless", false, "autoplay to stdout instead of the interactive player")

	examplesCmd := &cobra.Command{
		Use:   "examples [algorithm]",
		Short: "list built-in example inputs",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showExamples,
	}

	exportCmd := &cobra.Command{
		Use:   "export [algorithm]",
		Short: "export a recording as json, csv or svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportAlgorithm,
	}
	addInputFlags(exportCmd)
	exportCmd.Flags().StringVar(&format, "format", "json", "json, csv or svg")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVar(&outDir, "dir", "", "write metadata.json, steps.json and steps.csv into a new run directory here")
	exportCmd.Flags().IntVar(&stepAt, "step", -1, "step to draw for svg (default last)")

	plotCmd := &cobra.Command{
		Use:   "plot [algorithm]",
		Short: "chart the disorder of each step, or the array at one step",
		Args:  cobra.ExactArgs(1),
		RunE:  plotAlgorithm,
	}
	addInputFlags(plotCmd)
	plotCmd.Flags().IntVar(&stepAt, "step", -1, "plot the array view at this step instead")
	plotCmd.Flags().IntVar(&width, "width", 60, "chart width")
	plotCmd.Flags().IntVar(&height, "height", 10, "chart height")

	statsCmd := &cobra.Command{
		Use:   "stats [algorithm]",
		Short: "count steps and annotation roles",
		Args:  cobra.ExactArgs(1),
		RunE:  statsAlgorithm,
	}
	addInputFlags(statsCmd)

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm]",
		Short: "step counts on random arrays of growing size",
		Args:  cobra.ExactArgs(1),
		RunE:  benchAlgorithm,
	}
	benchCmd.Flags().StringVar(&category, "category", "", "category, when the name is ambiguous")
	benchCmd.Flags().IntSliceVar(&sizes, "sizes", []int{4, 8, 16, 32, 64}, "array sizes")
	benchCmd.Flags().IntVar(&trials, "trials", 20, "random trials at the largest size")
	benchCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml scenario of generations",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().StringVar(&outDir, "dir", "", "export results with save_as into run directories here")

	rootCmd.AddCommand(listCmd, runCmd, playCmd, examplesCmd, exportCmd, plotCmd, statsCmd, benchCmd, scenarioCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addInputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&category, "category", "", "category, when the name is ambiguous")
	f.StringVar(&raw.Input, "input", "", "array, e.g. 5,3,8,1,2 or [5,3,8]")
	f.StringVar(&raw.Target, "target", "", "search or sum target")
	f.StringVar(&raw.K, "k", "", "window size or rotation")
	f.StringVar(&raw.N, "n", "", "n for Fibonacci, N-Queens and Count Set Bits")
	f.StringVar(&raw.Text, "text", "", "text, or words for Trie Insert")
	f.StringVar(&raw.Text2, "text2", "", "second text (pattern, LCS, anagram)")
	f.StringVar(&raw.Ops, "ops", "", "stack/queue ops, e.g. push:1,push:2,pop")
	f.StringVar(&raw.Adj, "adj", "", "adjacency list, e.g. 0:1,2;1:3;2:3 or 1,2;3;3; (weighted: 0:1/4,2/1;1:3/1)")
	f.StringVar(&raw.Weights, "weights", "", "knapsack weights")
	f.StringVar(&raw.Values, "values", "", "knapsack values")
	f.StringVar(&raw.Capacity, "capacity", "", "knapsack capacity")
	f.StringVar(&raw.Coins, "coins", "", "coin denominations")
	f.StringVar(&raw.Amount, "amount", "", "coin change amount")
	f.StringVar(&raw.Intervals, "intervals", "", "intervals, e.g. 1-4,3-5")
	f.BoolVar(&example, "example", false, "fill missing inputs from the built-in example")
}

// setup loads the config file and builds the logger. Flags override file
// values only when set explicitly.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("interval") {
		cfg.IntervalMs = intervalMs
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	l, closer, err := logging.New(logging.Options{
		Level:     cfg.LogLevel,
		File:      cfg.LogFile,
		NoConsole: interactive(cmd),
	})
	if err != nil {
		return err
	}
	log, closeLog = l, closer
	slog.SetDefault(log)
	return nil
}

// interactive reports whether cmd runs the full-screen player, which owns
// the terminal while it runs.
func interactive(cmd *cobra.Command) bool {
	return !cmd.HasParent() || (cmd.Name() == "play" && !headless)
}

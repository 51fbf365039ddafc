package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"github.com/aretw0/togglewalk"
	"github.com/aretw0/togglewalk/internal/config"
	"github.com/aretw0/togglewalk/internal/presentation/tui"
	"github.com/aretw0/togglewalk/pkg/observability"
	"github.com/aretw0/togglewalk/pkg/runner"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Solve a batch of cases",
	Long: `Reads the number of cases and then every case from the file (or stdin when
no file is given) and prints one "Case #i: <answer>" line per selected case.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	addSolveFlags(solveCmd)
	addSolveFlags(rootCmd)
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.RunE = runSolve
	rootCmd.AddCommand(solveCmd)
}

func addSolveFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolP("cached", "c", false, "Use the range-cached walk")
	f.Bool("no-relabel", false, "Keep the input numbering in cached mode")
	f.StringP("cases", "l", "", "Comma separated case numbers or ranges to solve, e.g. 1,3,5-7")
	f.IntP("parallel", "t", 1, "Number of cases solved at once")
	f.IntSlice("border", nil, "Range borders for the cached walk (repeatable)")
	f.Bool("stats", false, "Append range cache statistics to cached answers")
	f.Duration("timeout", 0, "Time limit per case (0 = none)")
	f.StringP("cpuprofile", "p", "", "Write a CPU profile to this file")
	f.String("metrics-file", "", "Write Prometheus metrics to this file when done")
}

func applySolveFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("cached") {
		cfg.Cached, _ = f.GetBool("cached")
	}
	if f.Changed("no-relabel") {
		noRelabel, _ := f.GetBool("no-relabel")
		cfg.Relabel = !noRelabel
	}
	if f.Changed("cases") {
		raw, _ := f.GetString("cases")
		cases, err := config.ParseCases(raw)
		if err != nil {
			return err
		}
		cfg.Cases = cases
	}
	if f.Changed("parallel") {
		cfg.Parallel, _ = f.GetInt("parallel")
	}
	if f.Changed("border") {
		cfg.Borders, _ = f.GetIntSlice("border")
	}
	if f.Changed("stats") {
		cfg.Stats, _ = f.GetBool("stats")
	}
	if f.Changed("timeout") {
		cfg.Timeout, _ = f.GetDuration("timeout")
	}
	if f.Changed("metrics-file") {
		cfg.MetricsFile, _ = f.GetString("metrics-file")
	}
	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("cpuprofile"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create cpu profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("start cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	opts := []togglewalk.Option{
		togglewalk.WithLogger(logger),
		togglewalk.WithCaching(cfg.Cached),
		togglewalk.WithRelabel(cfg.Relabel),
	}
	if len(cfg.Borders) > 0 {
		opts = append(opts, togglewalk.WithBorders(cfg.Borders...))
	}
	var metrics *observability.Metrics
	if cfg.MetricsFile != "" {
		metrics = observability.NewMetrics()
		opts = append(opts, togglewalk.WithHooks(metrics.Hooks()))
	}
	solver := togglewalk.New(opts...)

	out := cmd.OutOrStdout()
	runOpts := []runner.Option{
		runner.WithParallel(cfg.Parallel),
		runner.WithSelection(cfg.Selection()),
		runner.WithStats(cfg.Stats),
		runner.WithTimeout(cfg.Timeout),
	}
	if tui.IsTerminal(out) {
		runOpts = append(runOpts, runner.WithStyler(tui.NewColorizer(out).Colorize))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := solver.NewRunner(runOpts...).Run(ctx, in, out)
	if err != nil {
		return err
	}

	if cfg.Stats && tui.IsTerminal(os.Stderr) {
		if rendered, err := tui.NewRenderer()(tui.SummaryMarkdown(summary)); err == nil {
			fmt.Fprint(os.Stderr, rendered)
		}
	}
	if metrics != nil {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		logger.Info("metrics written", "path", cfg.MetricsFile)
	}
	return nil
}

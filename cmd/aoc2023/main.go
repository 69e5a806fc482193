// Command aoc2023 runs the Advent of Code 2023 solutions.
package main

import (
	"fmt"
	"os"

	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/day01"
	"github.com/maisem/aoc2023/day02"
	"github.com/maisem/aoc2023/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var problems = []aoc.Problem{
	day01.Trebuchet{},
	day02.CubeConundrum{},
}

type app struct {
	problems   []aoc.Problem
	configPath string
	debug      bool

	cfg    config.Config
	logger *zap.Logger
}

func main() {
	a := &app{problems: problems}
	if err := a.rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	var opts aoc.Options
	root := &cobra.Command{
		Use:   "aoc2023",
		Short: "Advent of Code 2023 solutions",
		Long: `Runs the Advent of Code 2023 solutions.

Each part is first checked against the sample embedded in its source, then
solved with the real input. Inputs that are not bundled are read from the
cache directory, or fetched from adventofcode.com with your session cookie.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath(), "config file")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "debug logging")
	addRunFlags(root, &opts)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run samples and solve puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, opts)
		},
	}
	addRunFlags(runCmd, &opts)

	var fetchDay int
	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download a day's input into the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.fetch(cmd, fetchDay)
		},
	}
	fetchCmd.Flags().IntVar(&fetchDay, "day", 0, "day to fetch")
	_ = fetchCmd.MarkFlagRequired("day")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the solved days",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range a.problems {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", p.Day(), p.Name())
			}
		},
	}

	root.AddCommand(runCmd, fetchCmd, listCmd)
	return root
}

func addRunFlags(cmd *cobra.Command, opts *aoc.Options) {
	f := cmd.Flags()
	f.IntVar(&opts.Day, "day", 0, "day to run; 0 runs every day")
	f.StringVar(&opts.Part, "part", "", "part to run (1 or 2); empty runs both")
	f.BoolVar(&opts.OnlySample, "sample", false, "only run samples")
	f.BoolVar(&opts.SkipSample, "skip-sample", false, "skip samples")
	f.BoolVar(&opts.Verify, "verify", false, "solve twice and check the answers match")
	cmd.MarkFlagsMutuallyExclusive("sample", "skip-sample")
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	zcfg := zap.NewProductionConfig()
	if a.debug || cfg.Debug {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	a.logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger.Debug("loaded config",
		zap.String("path", a.configPath),
		zap.Int("year", cfg.Year),
		zap.String("cache_dir", cfg.CacheDir))
	return nil
}

func (a *app) fetcher() *aoc.Fetcher {
	return &aoc.Fetcher{
		CacheDir:    a.cfg.CacheDir,
		SessionFile: a.cfg.SessionFile,
		Log:         a.logger,
	}
}

func (a *app) run(cmd *cobra.Command, opts aoc.Options) error {
	if opts.Part != "" && opts.Part != "1" && opts.Part != "2" {
		return fmt.Errorf("invalid --part %q: want 1 or 2", opts.Part)
	}
	r := &aoc.Runner{
		Year:    a.cfg.Year,
		Out:     cmd.OutOrStdout(),
		Log:     a.logger,
		Fetcher: a.fetcher(),
		Options: opts,
	}
	return r.Run(cmd.Context(), a.problems)
}

func (a *app) fetch(cmd *cobra.Command, day int) error {
	b, err := a.fetcher().Input(cmd.Context(), a.cfg.Year, day)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "day %d: %d bytes in %s\n", day, len(b), a.fetcher().CachePath(a.cfg.Year, day))
	return nil
}

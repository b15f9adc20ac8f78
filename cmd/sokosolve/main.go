// Command sokosolve reads a stream of named Sokoban levels and prints a
// push-sequence solution or a skip indicator for each.
//
// Grounded on the cobra+pflag CLI surface used by
// other_examples/manifests/junjiewwang-perf-analysis, with structured
// logging via github.com/rs/zerolog (itohio-EasyRobot, bluebear94-odnocam)
// and a per-run correlation id via github.com/google/uuid
// (udisondev-la2go, kovidgoyal-kitty).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"sokosolve/internal/config"
	"sokosolve/internal/levelio"
	"sokosolve/internal/precompute"
	"sokosolve/internal/search"
	"sokosolve/internal/zobrist"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath   string
		useHungarian bool
		maxSearch    int
		maxDim       int
		workers      int
	)

	cmd := &cobra.Command{
		Use:   "sokosolve [level-file]",
		Short: "Solve Sokoban levels with A* search over crate pushes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("hungarian") {
				cfg.UseHungarian = useHungarian
			}
			if cmd.Flags().Changed("max-search") {
				cfg.MaxSearch = maxSearch
			}
			if cmd.Flags().Changed("max-dim") {
				cfg.MaxDim = maxDim
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			in := os.Stdin
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening %q: %w", args[0], err)
				}
				defer f.Close()
				in = f
			}

			logger := zerolog.New(os.Stderr).With().
				Timestamp().
				Str("run_id", uuid.NewString()).
				Logger()

			return runAll(context.Background(), in, cfg, logger)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file")
	cmd.Flags().BoolVar(&useHungarian, "hungarian", false, "use the Hungarian assignment heuristic instead of the simple sum")
	cmd.Flags().IntVar(&maxSearch, "max-search", 0, "state budget per level (default from config)")
	cmd.Flags().IntVar(&maxDim, "max-dim", 0, "maximum grid row/column count (default from config)")
	cmd.Flags().IntVar(&workers, "workers", 0, "max concurrent precompute analyses per level (default from config)")

	return cmd
}

func runAll(ctx context.Context, in *os.File, cfg config.Config, logger zerolog.Logger) error {
	levels, err := levelio.ParseAll(in)
	if err != nil {
		return fmt.Errorf("parsing levels: %w", err)
	}

	tables := zobrist.New(time.Now().UnixNano())

	solved, skipped := 0, 0
	var skippedNames []string

	for _, lvl := range levels {
		levelLog := logger.With().Str("level", lvl.Name).Logger()

		if err := lvl.Validate(cfg.MaxDim); err != nil {
			return fmt.Errorf("level %q: %w", lvl.Name, err)
		}

		if err := precompute.Analyze(ctx, lvl, cfg.Workers); err != nil {
			return fmt.Errorf("precomputing %q: %w", lvl.Name, err)
		}

		res, err := search.Solve(lvl, tables, search.Config{
			UseHungarian: cfg.UseHungarian,
			MaxSearch:    cfg.MaxSearch,
		})
		if err != nil {
			return fmt.Errorf("level %q: %w", lvl.Name, err)
		}

		switch res.Outcome {
		case search.Solved:
			solved++
			levelLog.Info().Int("pushes", len(res.Moves)).Msg("solved")
			fmt.Printf("%s: solved in %d pushes\n", lvl.Name, len(res.Moves))
			for _, m := range res.Moves {
				fmt.Printf("  push %d %s\n", m.CrateIndex, m.Dir)
			}
		case search.SkippedBudget:
			skipped++
			skippedNames = append(skippedNames, lvl.Name)
			levelLog.Warn().Msg("skipped: state budget exhausted")
			fmt.Printf("%s: skipped (budget exhausted)\n", lvl.Name)
		case search.SkippedNoSolution:
			skipped++
			skippedNames = append(skippedNames, lvl.Name)
			levelLog.Warn().Msg("skipped: no solution found")
			fmt.Printf("%s: skipped (no solution found)\n", lvl.Name)
		}
	}

	logger.Info().Int("solved", solved).Int("skipped", skipped).Msg("run complete")
	fmt.Printf("\n%d solved, %d skipped\n", solved, skipped)
	if len(skippedNames) > 0 {
		fmt.Printf("skipped levels: %v\n", skippedNames)
	}
	return nil
}

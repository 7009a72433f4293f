package main

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/ajwerner/bstindex"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "bstindex",
		Short:        "Benchmark and inspect an in-memory binary search tree index",
		SilenceUsage: true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configLogger(cmd, cmd.ErrOrStderr())
		},
	}
	flags := cmd.PersistentFlags()
	flags.String("log-level", "info", "log verbosity (error, warn, info, debug)")
	flags.Int64("seed", 0, "seed for key permutations and deletion coin flips; 0 uses the clock")
	flags.Bool("unique", false, "reject duplicate keys")
	cmd.AddCommand(newBenchCmd(), newPrintCmd())
	return cmd
}

// configLogger installs a JSON logger at the level named by --log-level,
// falling back to info when the name does not parse.
func configLogger(cmd *cobra.Command, writer io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(cmd.Flag("log-level").Value.String())); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// subtract orders ints and reports their distance, which the nearest-match
// searches rely on.
func subtract(a, b int) int { return a - b }

// newTree builds an integer tree from the persistent flags. The returned
// source drives both the tree's coin and the caller's key permutations.
func newTree(cmd *cobra.Command) (*bstindex.Tree[int, string], *rand.Rand, error) {
	seed, err := cmd.Flags().GetInt64("seed")
	if err != nil {
		return nil, nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	unique, err := cmd.Flags().GetBool("unique")
	if err != nil {
		return nil, nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	return bstindex.New(bstindex.Config[int, string]{
		Compare: subtract,
		Unique:  unique,
		Rand:    rng,
		Logger:  slog.Default(),
	}), rng, nil
}

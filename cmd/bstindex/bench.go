package main

import (
	"log/slog"
	"math/rand"
	"strconv"
	"time"

	"github.com/ajwerner/bstindex"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time inserts, lookups, range scans and deletes over N random keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmd.Flags().GetInt("keys")
			if err != nil {
				return err
			}
			if n <= 0 {
				return errors.Newf("--keys must be positive, got %d", n)
			}
			tree, rng, err := newTree(cmd)
			if err != nil {
				return err
			}
			return runBench(tree, rng, n, slog.Default())
		},
	}
	cmd.Flags().IntP("keys", "n", 10000, "number of keys in the tree")
	return cmd
}

func measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

func runBench(
	tree *bstindex.Tree[int, string], rng *rand.Rand, n int, logger *slog.Logger,
) error {
	var err error
	elapsed := measure(func() {
		for _, k := range rng.Perm(n) {
			if err = tree.Insert(k, strconv.Itoa(k)); err != nil {
				return
			}
		}
	})
	if err != nil {
		return errors.Wrap(err, "insert")
	}
	logger.Info("insert", "keys", n, "elapsed", elapsed, "height", tree.Height())

	var misses int
	elapsed = measure(func() {
		for k := 0; k < n; k++ {
			if len(tree.Search(k)) == 0 {
				misses++
			}
		}
	})
	logger.Info("search", "elapsed", elapsed, "misses", misses)
	if misses > 0 {
		return errors.AssertionFailedf("%d keys went missing", misses)
	}

	var found int
	elapsed = measure(func() {
		for k := 0; k < n; k++ {
			if len(tree.SearchAfter(k)) > 0 {
				found++
			}
		}
	})
	logger.Info("search after", "elapsed", elapsed, "found", found)

	found = 0
	elapsed = measure(func() {
		for i := 0; i < n; i++ {
			if _, ok := tree.SearchNearest(rng.Intn(2*n) - n/2); ok {
				found++
			}
		}
	})
	logger.Info("search nearest", "elapsed", elapsed, "found", found)

	const width = 100
	var scanned int
	elapsed = measure(func() {
		for i := 0; i < n/width+1; i++ {
			lo := rng.Intn(n)
			scanned += len(tree.BetweenBounds(
				bstindex.Query[int]{}.WithGte(lo).WithLt(lo + width)))
		}
	})
	logger.Info("between bounds", "elapsed", elapsed, "scanned", scanned)

	if err := tree.CheckIsBST(); err != nil {
		return err
	}

	elapsed = measure(func() {
		for _, k := range rng.Perm(n) {
			tree.Delete(k)
		}
	})
	logger.Info("delete", "elapsed", elapsed, "remaining", tree.NumberOfKeys())
	return tree.CheckIsBST()
}

package bstindex

import (
	"bytes"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

// Subtract is a comparator whose magnitude is the distance between keys.
func Subtract[T constraints.Signed](a, b T) int { return int(a - b) }

type coin float64

func (c coin) Float64() float64 { return float64(c) }

func TestTree(t *testing.T) {
	tree := NewOrdered[int, string](false)
	require.NoError(t, tree.Insert(2, "two"))
	require.NoError(t, tree.Insert(12, "twelve"))
	require.NoError(t, tree.Insert(1, "one"))
	require.NoError(t, tree.Insert(2, "deux"))

	require.Equal(t, 3, tree.NumberOfKeys())
	require.Equal(t, []string{"two", "deux"}, tree.Search(2))
	require.Empty(t, tree.Search(3))
	require.NoError(t, tree.CheckIsBST())

	iter := tree.MakeIter()
	iter.First()
	for _, exp := range []int{1, 2, 12} {
		require.True(t, iter.Valid())
		assert.Equal(t, exp, iter.Key())
		iter.Next()
	}
	require.False(t, iter.Valid())
}

func TestCompareOrdered(t *testing.T) {
	assert.Equal(t, -1, CompareOrdered(1, 2))
	assert.Equal(t, 0, CompareOrdered("a", "a"))
	assert.Equal(t, 1, CompareOrdered(2.5, 1.0))
}

func TestNewWithKeyAndEntry(t *testing.T) {
	cfg := Config[string, int]{Compare: strings.Compare}

	tree := NewWithKey(cfg, "k")
	require.Equal(t, 1, tree.NumberOfKeys())
	require.Empty(t, tree.Search("k"))

	tree = NewWithEntry(cfg, "k", 7)
	require.Equal(t, []int{7}, tree.Search("k"))
	first, ok := tree.MinKey()
	require.True(t, ok)
	require.Equal(t, "k", first)
}

func TestNewRequiresCompare(t *testing.T) {
	require.Panics(t, func() { New(Config[int, int]{}) })
}

func TestUniqueViolation(t *testing.T) {
	tree := NewOrdered[int, string](true)
	require.NoError(t, tree.Insert(5, "a"))

	err := tree.Insert(5, "b")
	require.ErrorIs(t, err, ErrUniqueViolated)
	var uerr *UniqueViolationError
	require.True(t, errors.As(err, &uerr))
	require.Equal(t, 5, uerr.Key)

	require.ErrorIs(t, tree.InsertKey(5), ErrUniqueViolated)
	require.Equal(t, []string{"a"}, tree.Search(5))
	require.Equal(t, 1, tree.NumberOfKeys())
}

func TestNeighborSearch(t *testing.T) {
	tree := NewOrdered[int, string](false)
	for _, k := range []int{3, 7, 10} {
		require.NoError(t, tree.Insert(k, strconv.Itoa(k)))
	}
	require.Equal(t, tree.Search(10), tree.SearchAfter(7))
	require.Equal(t, tree.Search(3), tree.SearchBefore(7))
	require.Empty(t, tree.SearchAfter(10))
	require.Empty(t, tree.SearchBefore(3))
}

func TestNearestSearch(t *testing.T) {
	tree := New(Config[int, string]{Compare: Subtract[int]})
	_, ok := tree.SearchNearest(4)
	require.False(t, ok)

	for _, k := range []int{10, 5, 15, 3, 7, 13, 20} {
		require.NoError(t, tree.Insert(k, "x"))
	}
	got, ok := tree.SearchNearest(12)
	require.True(t, ok)
	require.Equal(t, 13, got.Key)
	require.Equal(t, []string{"x"}, got.Values)

	got, ok = tree.SearchNearestLte(12)
	require.True(t, ok)
	require.Equal(t, 10, got.Key)

	got, ok = tree.SearchNearestGte(12)
	require.True(t, ok)
	require.Equal(t, 13, got.Key)

	_, ok = tree.SearchNearestGte(21)
	require.False(t, ok)
	_, ok = tree.SearchNearestLte(2)
	require.False(t, ok)
}

func TestBetweenBounds(t *testing.T) {
	tree := NewOrdered[int, int](false)
	for _, k := range rand.New(rand.NewSource(9)).Perm(20) {
		require.NoError(t, tree.Insert(k, k*10))
	}
	require.Equal(t, []int{50, 60, 70},
		tree.BetweenBounds(Query[int]{}.WithGte(5).WithLt(8)))
	require.Equal(t, []int{60, 70, 80},
		tree.BetweenBounds(Query[int]{}.WithGt(5).WithGte(3).WithLte(8).WithLt(10)))
	require.Equal(t, []int{170, 180, 190},
		tree.BetweenBounds(Query[int]{}.WithGt(16)))
	require.Empty(t, tree.BetweenBounds(Query[int]{}.WithLt(0)))
}

func TestDeleteTwoChildren(t *testing.T) {
	for _, c := range []coin{0.9, 0.1} {
		tree := New(Config[int, string]{
			Compare: CompareOrdered[int],
			Rand:    c,
		})
		for _, k := range []int{5, 2, 8} {
			require.NoError(t, tree.Insert(k, "v"))
		}
		tree.Delete(5)
		require.Equal(t, 2, tree.NumberOfKeys())
		var keys []int
		tree.ExecuteOnEveryNode(func(n NodeView[int, string]) {
			keys = append(keys, n.Key())
		})
		require.Equal(t, []int{2, 8}, keys)
		require.NoError(t, tree.CheckIsBST())
	}
}

func TestDeleteValueDefaultEquality(t *testing.T) {
	tree := New(Config[int, string]{Compare: CompareOrdered[int]})
	require.NoError(t, tree.Insert(1, "a"))
	require.NoError(t, tree.Insert(1, "b"))
	tree.DeleteValue(1, "a")
	require.Equal(t, []string{"b"}, tree.Search(1))
	tree.DeleteValue(1, "b")
	require.Empty(t, tree.Search(1))
	require.Zero(t, tree.NumberOfKeys())
}

func TestDeleteValueKeepsEmptiedKey(t *testing.T) {
	tree := NewOrdered[int, string](false)
	require.NoError(t, tree.Insert(1, "a"))
	require.NoError(t, tree.Insert(1, "a"))
	require.NoError(t, tree.Insert(0, "z"))

	tree.DeleteValue(1, "a")
	require.Equal(t, 2, tree.NumberOfKeys())
	require.Empty(t, tree.Search(1))
	last, ok := tree.MaxKey()
	require.True(t, ok)
	require.Equal(t, 1, last)
}

func TestDeleteEverything(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tree := New(Config[int, int]{Compare: CompareOrdered[int], Rand: rng})
	keys := rng.Perm(500)
	for _, k := range keys {
		require.NoError(t, tree.Insert(k, k))
	}
	last, ok := tree.MaxKey()
	require.True(t, ok)
	require.Equal(t, 499, last)
	require.GreaterOrEqual(t, tree.Height(), 9)

	for _, k := range rng.Perm(500) {
		tree.Delete(k)
	}
	require.Zero(t, tree.NumberOfKeys())
	require.Zero(t, tree.Height())
	require.Equal(t, ";", tree.String())
	_, ok = tree.MinKey()
	require.False(t, ok)
	require.NoError(t, tree.CheckIsBST())
}

func TestCheckAllNodesFulfill(t *testing.T) {
	tree := NewOrdered[string, int](false)
	for i, k := range []string{"m", "c", "x"} {
		require.NoError(t, tree.Insert(k, i))
	}
	errBad := errors.New("bad")
	err := tree.CheckAllNodesFulfill(func(k string, vs []int) error {
		if k == "x" {
			return errBad
		}
		return nil
	})
	require.ErrorIs(t, err, errBad)
}

func TestFprint(t *testing.T) {
	tree := NewOrdered[int, string](false)
	var buf bytes.Buffer
	require.NoError(t, tree.Fprint(&buf, false))
	require.Equal(t, "*\n", buf.String())

	for _, k := range []int{5, 2, 8, 9} {
		require.NoError(t, tree.Insert(k, "v"))
	}
	buf.Reset()
	require.NoError(t, tree.Fprint(&buf, false))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "5\n"), out)
	require.Contains(t, out, "── 2\n")
	require.Contains(t, out, "── 8\n")
	require.Contains(t, out, "── *\n")
	require.Contains(t, out, "── 9\n")
	require.Less(t, strings.Index(out, "── *"), strings.Index(out, "── 9"))

	buf.Reset()
	require.NoError(t, tree.Fprint(&buf, true))
	require.Contains(t, buf.String(), "── 2 [v]\n")
}

func TestPrettyPrintLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tree := New(Config[int, string]{Compare: CompareOrdered[int], Logger: logger})
	require.NoError(t, tree.Insert(1, "one"))

	tree.PrettyPrint(true)
	require.Contains(t, buf.String(), "tree dump")
	require.Contains(t, buf.String(), "one")
}

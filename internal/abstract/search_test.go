package abstract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	n := newTree(false, usePredecessor)
	require.Empty(t, n.Search(1))

	insertAll(t, n, 10, 5, 15, 3, 7)
	require.Equal(t, []string{"7"}, n.Search(7))
	require.Equal(t, []string{"10"}, n.Search(10))
	require.Empty(t, n.Search(4))
	require.Empty(t, n.Search(100))
}

func TestSearchNeighbors(t *testing.T) {
	n := newTree(false, usePredecessor)
	require.Empty(t, n.SearchAfter(1))
	require.Empty(t, n.SearchBefore(1))

	insertAll(t, n, 3, 7, 10)
	for _, tc := range []struct {
		key           int
		after, before []string
	}{
		{key: 7, after: []string{"10"}, before: []string{"3"}},
		{key: 10, after: nil, before: []string{"7"}},
		{key: 3, after: []string{"7"}, before: nil},
		{key: 8, after: []string{"10"}, before: []string{"7"}},
		{key: 5, after: []string{"7"}, before: []string{"3"}},
		{key: 11, after: nil, before: []string{"10"}},
		{key: 2, after: []string{"3"}, before: nil},
	} {
		require.Equal(t, tc.after, n.SearchAfter(tc.key), "after %d", tc.key)
		require.Equal(t, tc.before, n.SearchBefore(tc.key), "before %d", tc.key)
	}
}

func TestSearchNeighborsBalanced(t *testing.T) {
	n := newTree(false, usePredecessor)
	insertAll(t, n, 10, 5, 15, 3, 7, 13, 20)
	keys := []int{3, 5, 7, 10, 13, 15, 20}
	for i, k := range keys {
		if i+1 < len(keys) {
			require.Equal(t, n.Search(keys[i+1]), n.SearchAfter(k), "after %d", k)
		} else {
			require.Empty(t, n.SearchAfter(k))
		}
		if i > 0 {
			require.Equal(t, n.Search(keys[i-1]), n.SearchBefore(k), "before %d", k)
		} else {
			require.Empty(t, n.SearchBefore(k))
		}
	}
	// 7 has no right child, so its successor is found by walking up.
	require.Equal(t, []string{"10"}, n.SearchAfter(7))
	// 13 has no left child, so its predecessor is found by walking up.
	require.Equal(t, []string{"10"}, n.SearchBefore(13))
}

func TestSearchNearest(t *testing.T) {
	n := newTree(false, usePredecessor)
	require.Nil(t, n.SearchNearest(1))
	require.Nil(t, n.SearchNearestLte(1))
	require.Nil(t, n.SearchNearestGte(1))

	insertAll(t, n, 10, 5, 15, 3, 7, 13, 20)

	exact := n.SearchNearest(7)
	require.NotNil(t, exact)
	require.Equal(t, 7, exact.Key)
	require.Equal(t, []string{"7"}, exact.Values)

	for _, tc := range []struct {
		key      int
		nearest  int
		lte, gte int // -1 when absent
	}{
		{key: 12, nearest: 13, lte: 10, gte: 13},
		{key: 6, nearest: 5, lte: 5, gte: 7},
		{key: 1, nearest: 3, lte: -1, gte: 3},
		{key: 25, nearest: 20, lte: 20, gte: -1},
		{key: 15, nearest: 15, lte: 15, gte: 15},
	} {
		got := n.SearchNearest(tc.key)
		require.NotNil(t, got, "nearest %d", tc.key)
		require.Equal(t, tc.nearest, got.Key, "nearest %d", tc.key)
		require.Equal(t, n.Search(tc.nearest), got.Values)

		lte := n.SearchNearestLte(tc.key)
		if tc.lte < 0 {
			require.Nil(t, lte, "lte %d", tc.key)
		} else {
			require.NotNil(t, lte, "lte %d", tc.key)
			require.Equal(t, tc.lte, lte.Key, "lte %d", tc.key)
		}

		gte := n.SearchNearestGte(tc.key)
		if tc.gte < 0 {
			require.Nil(t, gte, "gte %d", tc.key)
		} else {
			require.NotNil(t, gte, "gte %d", tc.key)
			require.Equal(t, tc.gte, gte.Key, "gte %d", tc.key)
		}
	}
}

// TestSearchNearestTieKeepsFirstSeen documents that equally distant
// candidates resolve to the one met first during descent.
func TestSearchNearestTieKeepsFirstSeen(t *testing.T) {
	n := newTree(false, usePredecessor)
	insertAll(t, n, 10, 5, 15, 3, 7, 13, 20)
	got := n.SearchNearest(14)
	require.NotNil(t, got)
	require.Equal(t, 15, got.Key)
}

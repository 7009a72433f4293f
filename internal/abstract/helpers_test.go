package abstract

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// constRand always returns the same coin.
type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

const (
	usePredecessor constRand = 0.75
	useSuccessor   constRand = 0.25
)

// scriptedRand replays a fixed sequence of coins.
type scriptedRand []float64

func (r *scriptedRand) Float64() float64 {
	f := (*r)[0]
	*r = (*r)[1:]
	return f
}

// intCmp uses subtraction so that the magnitude of the result is the
// distance between keys.
func intCmp(a, b int) int { return a - b }

func strEq(a, b string) bool { return a == b }

func newTree(unique bool, rnd Rand) *Node[int, string] {
	return New(MakeConfig(intCmp, strEq, unique, rnd, nil))
}

func insertAll(t *testing.T, n *Node[int, string], keys ...int) {
	t.Helper()
	for _, k := range keys {
		require.NoError(t, n.Insert(k, strconv.Itoa(k), true))
	}
}

func inOrderKeys(n *Node[int, string]) []int {
	var keys []int
	n.ExecuteOnEveryNode(func(v NodeView[int, string]) {
		keys = append(keys, v.Key())
	})
	return keys
}

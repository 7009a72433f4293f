// Package bstindex implements an in-memory ordered index: a binary search
// tree mapping keys to buckets of values, with exact, neighbor, nearest and
// range lookups.
//
// The tree is deliberately not height-balanced. Deleting a key with two
// children replaces it with its in-order predecessor or successor chosen by
// a coin flip, which only statistically limits skew.
//
// A Tree is not safe for concurrent use; callers must serialize access.
package bstindex

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/ajwerner/bstindex/internal/abstract"
	"golang.org/x/exp/constraints"
)

// Rand is the source of the coin flipped when a key whose node has two
// children is deleted. *math/rand.Rand satisfies it.
type Rand = abstract.Rand

// Config configures a Tree.
type Config[K, V any] struct {

	// Compare is a three-way comparison of keys. It is required. The
	// nearest-match searches treat the magnitude of its result as a
	// distance.
	Compare func(K, K) int

	// ValuesEqual is used by DeleteValue. If nil, values are compared with
	// ==, which panics if their dynamic type is not comparable.
	ValuesEqual func(V, V) bool

	// Unique makes Insert reject keys already in the tree.
	Unique bool

	// Rand defaults to a source seeded from the clock.
	Rand Rand

	// Logger defaults to discarding everything.
	Logger *slog.Logger
}

func (cfg Config[K, V]) withDefaults() Config[K, V] {
	if cfg.Compare == nil {
		panic("bstindex: Config.Compare is required")
	}
	if cfg.ValuesEqual == nil {
		cfg.ValuesEqual = func(a, b V) bool { return any(a) == any(b) }
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return cfg
}

// Tree is an ordered index from keys to buckets of values. The zero value is
// not usable; construct one with New.
type Tree[K, V any] struct {
	root *abstract.Node[K, V]
	cfg  *abstract.Config[K, V]
}

// New returns an empty Tree.
func New[K, V any](cfg Config[K, V]) *Tree[K, V] {
	cfg = cfg.withDefaults()
	c := abstract.MakeConfig(cfg.Compare, cfg.ValuesEqual, cfg.Unique, cfg.Rand, cfg.Logger)
	return &Tree[K, V]{
		root: abstract.New(c),
		cfg:  c,
	}
}

// NewWithKey returns a Tree holding key with an empty bucket.
func NewWithKey[K, V any](cfg Config[K, V], key K) *Tree[K, V] {
	t := New(cfg)
	_ = t.InsertKey(key)
	return t
}

// NewWithEntry returns a Tree holding key with value as its only value.
func NewWithEntry[K, V any](cfg Config[K, V], key K, value V) *Tree[K, V] {
	t := New(cfg)
	_ = t.Insert(key, value)
	return t
}

// NewOrdered returns an empty Tree over an ordered key type, comparing keys
// with CompareOrdered and values with ==.
func NewOrdered[K constraints.Ordered, V comparable](unique bool) *Tree[K, V] {
	return New(Config[K, V]{
		Compare:     CompareOrdered[K],
		ValuesEqual: func(a, b V) bool { return a == b },
		Unique:      unique,
	})
}

// CompareOrdered returns -1, 0 or 1. Nearest-match searches over a tree using
// it cannot tell distances apart; see Tree.SearchNearest.
func CompareOrdered[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		return 1
	}
}

// Insert adds value to the bucket of key, creating the key if needed. On a
// unique tree an existing key yields an error matching ErrUniqueViolated.
func (t *Tree[K, V]) Insert(key K, value V) error {
	return t.root.Insert(key, value, true)
}

// InsertKey adds key without a value. It is a no-op if the key exists and
// the tree is not unique.
func (t *Tree[K, V]) InsertKey(key K) error {
	var v V
	return t.root.Insert(key, v, false)
}

// Delete removes key and its whole bucket. Deleting a missing key is a
// no-op.
func (t *Tree[K, V]) Delete(key K) {
	var v V
	t.root.Delete(key, v, false)
}

// DeleteValue removes the values equal to value from the bucket of key when
// the bucket holds more than one value; the key stays even if its bucket
// ends up empty. A key whose bucket holds at most one value is removed
// whatever its value.
func (t *Tree[K, V]) DeleteValue(key K, value V) {
	t.root.Delete(key, value, true)
}

// Search returns the bucket of key, or nil. The returned slice must not be
// modified.
func (t *Tree[K, V]) Search(key K) []V {
	return t.root.Search(key)
}

// SearchAfter returns the bucket of the smallest key greater than key.
func (t *Tree[K, V]) SearchAfter(key K) []V {
	return t.root.SearchAfter(key)
}

// SearchBefore returns the bucket of the largest key less than key.
func (t *Tree[K, V]) SearchBefore(key K) []V {
	return t.root.SearchBefore(key)
}

// Nearest is a key and its bucket found by a nearest-match search.
type Nearest[K, V any] struct {
	Key    K
	Values []V
}

func nearest[K, V any](n *abstract.Nearest[K, V]) (Nearest[K, V], bool) {
	if n == nil {
		return Nearest[K, V]{}, false
	}
	return Nearest[K, V]{Key: n.Key, Values: n.Values}, true
}

// SearchNearest returns key and its bucket if present and otherwise the
// entry minimizing the magnitude of Compare(candidate, key). This is a true
// nearest match only when Compare behaves like subtraction; with a -1/0/1
// comparator ties are resolved by the order of descent.
func (t *Tree[K, V]) SearchNearest(key K) (Nearest[K, V], bool) {
	return nearest(t.root.SearchNearest(key))
}

// SearchNearestLte is SearchNearest restricted to keys less than or equal
// to key.
func (t *Tree[K, V]) SearchNearestLte(key K) (Nearest[K, V], bool) {
	return nearest(t.root.SearchNearestLte(key))
}

// SearchNearestGte is SearchNearest restricted to keys greater than or
// equal to key.
func (t *Tree[K, V]) SearchNearestGte(key K) (Nearest[K, V], bool) {
	return nearest(t.root.SearchNearestGte(key))
}

// BetweenBounds returns the values of every key satisfying q, in key order.
func (t *Tree[K, V]) BetweenBounds(q Query[K]) []V {
	return t.root.BetweenBounds(q.bounds())
}

// MinKey returns the smallest key.
func (t *Tree[K, V]) MinKey() (K, bool) { return t.root.MinKey() }

// MaxKey returns the largest key.
func (t *Tree[K, V]) MaxKey() (K, bool) { return t.root.MaxKey() }

// NumberOfKeys returns the number of keys in the tree.
func (t *Tree[K, V]) NumberOfKeys() int { return t.root.NumberOfKeys() }

// Height returns the height of the tree.
func (t *Tree[K, V]) Height() int { return t.root.Height() }

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Tree[K, V]) String() string { return t.root.String() }

// NodeView exposes a node to ExecuteOnEveryNode.
type NodeView[K, V any] interface {
	HasKey() bool
	Key() K
	Values() []V
}

// ExecuteOnEveryNode calls fn on every key, in key order.
func (t *Tree[K, V]) ExecuteOnEveryNode(fn func(NodeView[K, V])) {
	t.root.ExecuteOnEveryNode(func(n abstract.NodeView[K, V]) { fn(n) })
}

// CheckAllNodesFulfill calls test on every key and bucket until it returns
// an error.
func (t *Tree[K, V]) CheckAllNodesFulfill(test func(K, []V) error) error {
	return t.root.CheckAllNodesFulfill(test)
}

// CheckIsBST verifies the ordering and parent pointer invariants. A
// violation is a bug in the tree, reported as an error matching
// ErrInvariantViolated.
func (t *Tree[K, V]) CheckIsBST() error {
	return t.root.CheckIsBST()
}

package bstindex

import "github.com/ajwerner/bstindex/internal/abstract"

// Iterator walks a Tree in key order. It is not safe to continue using an
// Iterator after the tree is modified.
type Iterator[K, V any] struct {
	it abstract.Iterator[K, V]
}

// MakeIter returns a new Iterator at an invalid position.
func (t *Tree[K, V]) MakeIter() Iterator[K, V] {
	return Iterator[K, V]{t.root.MakeIter()}
}

func (it *Iterator[K, V]) First() { it.it.First() }

func (it *Iterator[K, V]) Last() { it.it.Last() }

func (it *Iterator[K, V]) SeekGE(key K) { it.it.SeekGE(key) }

func (it *Iterator[K, V]) SeekLT(key K) { it.it.SeekLT(key) }

func (it *Iterator[K, V]) Next() { it.it.Next() }

func (it *Iterator[K, V]) Prev() { it.it.Prev() }

func (it *Iterator[K, V]) Valid() bool { return it.it.Valid() }

func (it *Iterator[K, V]) Key() K { return it.it.Key() }

func (it *Iterator[K, V]) Values() []V { return it.it.Values() }

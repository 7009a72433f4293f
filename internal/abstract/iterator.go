// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

// Iterator is responsible for search and traversal within a tree. It moves
// between nodes using parent pointers and so needs no stack. It is not safe
// to continue using an Iterator after the tree is modified.
type Iterator[K, V any] struct {
	r   *Node[K, V]
	cur *Node[K, V]
}

// MakeIter returns a new Iterator over the tree rooted at n. The Iterator
// starts at an invalid position.
func (n *Node[K, V]) MakeIter() Iterator[K, V] {
	return Iterator[K, V]{r: n}
}

// Reset moves the Iterator to an invalid position.
func (i *Iterator[K, V]) Reset() {
	i.cur = nil
}

// SeekGE seeks to the first key greater-than or equal to the provided
// key.
func (i *Iterator[K, V]) SeekGE(key K) {
	i.Reset()
	if !i.r.hasKey {
		return
	}
	for n := i.r; n != nil; {
		c := n.cfg.cmp(key, n.key)
		if c == 0 {
			i.cur = n
			return
		}
		if c < 0 {
			i.cur = n
			n = n.left
		} else {
			n = n.right
		}
	}
}

// SeekLT seeks to the first key less-than the provided key.
func (i *Iterator[K, V]) SeekLT(key K) {
	i.Reset()
	if !i.r.hasKey {
		return
	}
	for n := i.r; n != nil; {
		if n.cfg.cmp(key, n.key) <= 0 {
			n = n.left
		} else {
			i.cur = n
			n = n.right
		}
	}
}

// First seeks to the first key in the tree.
func (i *Iterator[K, V]) First() {
	i.Reset()
	if i.r.hasKey {
		i.cur = i.r.minKeyDescendant()
	}
}

// Last seeks to the last key in the tree.
func (i *Iterator[K, V]) Last() {
	i.Reset()
	if i.r.hasKey {
		i.cur = i.r.maxKeyDescendant()
	}
}

// Next positions the Iterator to the key immediately following
// its current position.
func (i *Iterator[K, V]) Next() {
	if i.cur == nil {
		return
	}
	if i.cur.right != nil {
		i.cur = i.cur.right.minKeyDescendant()
		return
	}
	n := i.cur
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	i.cur = n.parent
}

// Prev positions the Iterator to the key immediately preceding
// its current position.
func (i *Iterator[K, V]) Prev() {
	if i.cur == nil {
		return
	}
	if i.cur.left != nil {
		i.cur = i.cur.left.maxKeyDescendant()
		return
	}
	n := i.cur
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	i.cur = n.parent
}

// Valid returns whether the Iterator is positioned at a valid position.
func (i *Iterator[K, V]) Valid() bool {
	return i.cur != nil
}

// Key returns the key at the Iterator's current position. It is illegal
// to call Key if the Iterator is not valid.
func (i *Iterator[K, V]) Key() K {
	return i.cur.key
}

// Values returns the bucket at the Iterator's current position. It is
// illegal to call Values if the Iterator is not valid.
func (i *Iterator[K, V]) Values() []V {
	return i.cur.values
}

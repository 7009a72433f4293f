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

import (
	"fmt"
	"strings"
)

// Node is a node of a binary search tree. Every node is structurally a tree
// rooted at itself. A node exclusively owns its children; parent is only used
// to navigate upwards and never outlives the child's attachment.
type Node[K, V any] struct {
	cfg    *Config[K, V]
	hasKey bool
	key    K
	values []V
	left   *Node[K, V]
	right  *Node[K, V]
	parent *Node[K, V]
}

// New returns an empty tree, a single node without a key.
func New[K, V any](cfg *Config[K, V]) *Node[K, V] {
	return &Node[K, V]{cfg: cfg}
}

// HasKey implements NodeView.
func (n *Node[K, V]) HasKey() bool { return n.hasKey }

// Key implements NodeView.
func (n *Node[K, V]) Key() K { return n.key }

// Values implements NodeView.
func (n *Node[K, V]) Values() []V { return n.values }

// Left returns the left child or nil.
func (n *Node[K, V]) Left() *Node[K, V] { return n.left }

// Right returns the right child or nil.
func (n *Node[K, V]) Right() *Node[K, V] { return n.right }

// Parent returns the node owning n, or nil for the root.
func (n *Node[K, V]) Parent() *Node[K, V] { return n.parent }

// createSimilar creates a node sharing the configuration of n but holding
// the given key and, if hasValue, a bucket with the given value.
func (n *Node[K, V]) createSimilar(key K, value V, hasValue bool) *Node[K, V] {
	c := &Node[K, V]{cfg: n.cfg, hasKey: true, key: key}
	if hasValue {
		c.values = []V{value}
	}
	return c
}

func (n *Node[K, V]) createLeftChild(key K, value V, hasValue bool) *Node[K, V] {
	c := n.createSimilar(key, value, hasValue)
	c.parent = n
	n.left = c
	return c
}

func (n *Node[K, V]) createRightChild(key K, value V, hasValue bool) *Node[K, V] {
	c := n.createSimilar(key, value, hasValue)
	c.parent = n
	n.right = c
	return c
}

func (n *Node[K, V]) minKeyDescendant() *Node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *Node[K, V]) maxKeyDescendant() *Node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// MinKey returns the smallest key in the tree.
func (n *Node[K, V]) MinKey() (k K, ok bool) {
	if !n.hasKey {
		return k, false
	}
	return n.minKeyDescendant().key, true
}

// MaxKey returns the largest key in the tree.
func (n *Node[K, V]) MaxKey() (k K, ok bool) {
	if !n.hasKey {
		return k, false
	}
	return n.maxKeyDescendant().key, true
}

// Insert inserts key into the tree rooted at n. If hasValue, value is
// appended to the key's bucket. Inserting an existing key into a unique tree
// returns a *UniqueViolationError and leaves the tree untouched.
func (n *Node[K, V]) Insert(key K, value V, hasValue bool) error {
	if !n.hasKey {
		n.key = key
		n.hasKey = true
		if hasValue {
			n.values = append(n.values, value)
		}
		return nil
	}
	for {
		c := n.cfg.cmp(key, n.key)
		switch {
		case c == 0:
			if n.cfg.unique {
				n.cfg.logger.Debug("rejecting duplicate key", "key", key)
				return &UniqueViolationError{Key: key}
			}
			if hasValue {
				n.values = append(n.values, value)
			}
			return nil
		case c < 0:
			if n.left == nil {
				n.createLeftChild(key, value, hasValue)
				return nil
			}
			n = n.left
		default:
			if n.right == nil {
				n.createRightChild(key, value, hasValue)
				return nil
			}
			n = n.right
		}
	}
}

// seek returns the node holding key, or nil.
func (n *Node[K, V]) seek(key K) *Node[K, V] {
	if !n.hasKey {
		return nil
	}
	for n != nil {
		c := n.cfg.cmp(key, n.key)
		switch {
		case c == 0:
			return n
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// Delete removes key from the tree rooted at n. If hasValue and the bucket
// holds more than one value, only the values equal to value are removed and
// the key stays, even with an empty bucket. Deleting a missing key is a no-op.
func (n *Node[K, V]) Delete(key K, value V, hasValue bool) {
	target := n.seek(key)
	if target == nil {
		return
	}
	if hasValue && len(target.values) > 1 {
		kept := make([]V, 0, len(target.values))
		for _, v := range target.values {
			if !target.cfg.eq(v, value) {
				kept = append(kept, v)
			}
		}
		target.values = kept
		return
	}
	if target.deleteIfLeaf() {
		return
	}
	if target.deleteIfOnlyOneChild() {
		return
	}
	target.deleteWithTwoChildren()
}

// deleteIfLeaf removes n if it has no children. The root of the tree is
// emptied rather than detached.
func (n *Node[K, V]) deleteIfLeaf() bool {
	if n.left != nil || n.right != nil {
		return false
	}
	if n.parent == nil {
		var k K
		n.key = k
		n.hasKey = false
		n.values = nil
		return true
	}
	if n.parent.left == n {
		n.parent.left = nil
	} else {
		n.parent.right = nil
	}
	n.parent = nil
	return true
}

// deleteIfOnlyOneChild splices n's only child into n's position. The root
// takes over the child's contents in place so that its identity survives.
func (n *Node[K, V]) deleteIfOnlyOneChild() bool {
	var child *Node[K, V]
	switch {
	case n.left != nil && n.right == nil:
		child = n.left
	case n.left == nil && n.right != nil:
		child = n.right
	default:
		return false
	}

	if n.parent == nil {
		n.key = child.key
		n.values = child.values
		n.left = child.left
		if n.left != nil {
			n.left.parent = n
		}
		n.right = child.right
		if n.right != nil {
			n.right.parent = n
		}
		child.left, child.right, child.parent = nil, nil, nil
		return true
	}

	if n.parent.left == n {
		n.parent.left = child
	} else {
		n.parent.right = child
	}
	child.parent = n.parent
	n.left, n.right, n.parent = nil, nil, nil
	return true
}

// deleteWithTwoChildren replaces n's contents with those of its in-order
// predecessor or successor, chosen by a fresh fair coin flip on every call,
// and excises that node.
func (n *Node[K, V]) deleteWithTwoChildren() {
	if n.cfg.rand.Float64() >= 0.5 {
		replaceWith := n.left.maxKeyDescendant()
		n.key = replaceWith.key
		n.values = replaceWith.values
		if replaceWith.parent == n {
			n.left = replaceWith.left
		} else {
			replaceWith.parent.right = replaceWith.left
		}
		if replaceWith.left != nil {
			replaceWith.left.parent = replaceWith.parent
		}
		replaceWith.left, replaceWith.parent = nil, nil
		return
	}
	replaceWith := n.right.minKeyDescendant()
	n.key = replaceWith.key
	n.values = replaceWith.values
	if replaceWith.parent == n {
		n.right = replaceWith.right
	} else {
		replaceWith.parent.left = replaceWith.right
	}
	if replaceWith.right != nil {
		replaceWith.right.parent = replaceWith.parent
	}
	replaceWith.right, replaceWith.parent = nil, nil
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (n *Node[K, V]) Height() int {
	if n == nil || !n.hasKey {
		return 0
	}
	l, r := n.left.Height(), n.right.Height()
	if l > r {
		return l + 1
	}
	return r + 1
}

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (n *Node[K, V]) String() string {
	if !n.hasKey {
		return ";"
	}
	var b strings.Builder
	n.writeString(&b)
	return b.String()
}

func (n *Node[K, V]) writeString(b *strings.Builder) {
	if n.left != nil || n.right != nil {
		b.WriteString("(")
		if n.left != nil {
			n.left.writeString(b)
		}
		b.WriteString(",")
		if n.right != nil {
			n.right.writeString(b)
		}
		b.WriteString(")")
	}
	fmt.Fprintf(b, "%v:%v", n.key, n.values)
}

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

// CheckAllNodesFulfill calls test on the key and values of every node of
// the tree rooted at n, in pre-order, stopping at the first error.
func (n *Node[K, V]) CheckAllNodesFulfill(test func(K, []V) error) error {
	if !n.hasKey {
		return nil
	}
	if err := test(n.key, n.values); err != nil {
		return err
	}
	if n.left != nil {
		if err := n.left.CheckAllNodesFulfill(test); err != nil {
			return err
		}
	}
	if n.right != nil {
		return n.right.CheckAllNodesFulfill(test)
	}
	return nil
}

// checkNodeOrdering verifies that every key of the left subtree compares
// below n's key and every key of the right subtree compares above it.
func (n *Node[K, V]) checkNodeOrdering() error {
	if !n.hasKey {
		return nil
	}
	notBST := func() error {
		return invariantViolation("tree with root %v is not a binary search tree", n.key)
	}
	if n.left != nil {
		if err := n.left.CheckAllNodesFulfill(func(k K, _ []V) error {
			if n.cfg.cmp(k, n.key) >= 0 {
				return notBST()
			}
			return nil
		}); err != nil {
			return err
		}
		if err := n.left.checkNodeOrdering(); err != nil {
			return err
		}
	}
	if n.right != nil {
		if err := n.right.CheckAllNodesFulfill(func(k K, _ []V) error {
			if n.cfg.cmp(k, n.key) <= 0 {
				return notBST()
			}
			return nil
		}); err != nil {
			return err
		}
		return n.right.checkNodeOrdering()
	}
	return nil
}

// checkInternalPointers verifies that every child points back at its
// parent.
func (n *Node[K, V]) checkInternalPointers() error {
	if n.left != nil {
		if n.left.parent != n {
			return invariantViolation("parent pointer broken for key %v", n.key)
		}
		if err := n.left.checkInternalPointers(); err != nil {
			return err
		}
	}
	if n.right != nil {
		if n.right.parent != n {
			return invariantViolation("parent pointer broken for key %v", n.key)
		}
		return n.right.checkInternalPointers()
	}
	return nil
}

// CheckIsBST verifies the ordering and pointer invariants of the tree
// rooted at n, which must be a root. The returned error matches
// ErrInvariantViolated and carries an assertion failure.
func (n *Node[K, V]) CheckIsBST() error {
	if err := n.checkNodeOrdering(); err != nil {
		return err
	}
	if err := n.checkInternalPointers(); err != nil {
		return err
	}
	if n.parent != nil {
		return invariantViolation("the root shouldn't have a parent")
	}
	return nil
}

// NumberOfKeys returns the number of keys in the tree rooted at n.
func (n *Node[K, V]) NumberOfKeys() int {
	if !n.hasKey {
		return 0
	}
	res := 1
	if n.left != nil {
		res += n.left.NumberOfKeys()
	}
	if n.right != nil {
		res += n.right.NumberOfKeys()
	}
	return res
}

// ExecuteOnEveryNode calls fn on every node holding a key, in key order.
func (n *Node[K, V]) ExecuteOnEveryNode(fn func(NodeView[K, V])) {
	if n.left != nil {
		n.left.ExecuteOnEveryNode(fn)
	}
	if n.hasKey {
		fn(n)
	}
	if n.right != nil {
		n.right.ExecuteOnEveryNode(fn)
	}
}

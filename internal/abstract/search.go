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

// Search returns the bucket of key, or nil if the key is absent.
func (n *Node[K, V]) Search(key K) []V {
	if found := n.seek(key); found != nil {
		return found.values
	}
	return nil
}

// SearchAfter returns the bucket of the key immediately following key in
// sorted order, whether or not key itself is in the tree.
func (n *Node[K, V]) SearchAfter(key K) []V {
	if !n.hasKey {
		return nil
	}
	for {
		c := n.cfg.cmp(key, n.key)
		switch {
		case c == 0:
			if n.right != nil {
				return n.right.minKeyDescendant().values
			}
			return n.ascendTo(func(k K) bool { return n.cfg.cmp(key, k) < 0 })
		case c < 0:
			if n.left == nil {
				return n.values
			}
			n = n.left
		default:
			if n.right == nil {
				return n.ascendTo(func(k K) bool { return n.cfg.cmp(key, k) < 0 })
			}
			n = n.right
		}
	}
}

// SearchBefore returns the bucket of the key immediately preceding key in
// sorted order, whether or not key itself is in the tree.
func (n *Node[K, V]) SearchBefore(key K) []V {
	if !n.hasKey {
		return nil
	}
	for {
		c := n.cfg.cmp(key, n.key)
		switch {
		case c == 0:
			if n.left != nil {
				return n.left.maxKeyDescendant().values
			}
			return n.ascendTo(func(k K) bool { return n.cfg.cmp(key, k) > 0 })
		case c < 0:
			if n.left == nil {
				return n.ascendTo(func(k K) bool { return n.cfg.cmp(key, k) > 0 })
			}
			n = n.left
		default:
			if n.right == nil {
				return n.values
			}
			n = n.right
		}
	}
}

// ascendTo walks up from n's parent and returns the bucket of the first
// ancestor whose key satisfies accept.
func (n *Node[K, V]) ascendTo(accept func(K) bool) []V {
	for cur := n.parent; cur != nil; cur = cur.parent {
		if accept(cur.key) {
			return cur.values
		}
	}
	return nil
}

// Nearest is the result of a nearest-match search.
type Nearest[K, V any] struct {
	Key    K
	Values []V
}

type direction int8

const (
	anyDirection direction = iota
	lteDirection
	gteDirection
)

// admits reports whether a candidate comparing c to the query key is on
// the allowed side.
func (d direction) admits(c int) bool {
	switch d {
	case lteDirection:
		return c <= 0
	case gteDirection:
		return c >= 0
	default:
		return true
	}
}

// SearchNearest returns the bucket of key if present and otherwise the entry
// whose key is closest to it. Closeness is the magnitude of the comparator's
// result, which only measures a distance for comparators such as numeric
// subtraction; for -1/0/1 comparators ties are broken by descent order.
func (n *Node[K, V]) SearchNearest(key K) *Nearest[K, V] {
	return n.searchNearest(key, nil, anyDirection)
}

// SearchNearestLte is SearchNearest restricted to keys less than or equal
// to key.
func (n *Node[K, V]) SearchNearestLte(key K) *Nearest[K, V] {
	return n.searchNearest(key, nil, lteDirection)
}

// SearchNearestGte is SearchNearest restricted to keys greater than or
// equal to key.
func (n *Node[K, V]) SearchNearestGte(key K) *Nearest[K, V] {
	return n.searchNearest(key, nil, gteDirection)
}

func (n *Node[K, V]) searchNearest(
	key K, nearest *Nearest[K, V], d direction,
) *Nearest[K, V] {
	if !n.hasKey {
		return nil
	}
	cmp := n.cfg.cmp
	c := cmp(key, n.key)
	if c == 0 {
		return &Nearest[K, V]{Key: n.key, Values: n.values}
	}
	better := func(k K) bool {
		return (nearest == nil || abs(cmp(k, key)) < abs(cmp(key, nearest.Key))) &&
			d.admits(cmp(k, key))
	}
	if better(n.key) {
		nearest = &Nearest[K, V]{Key: n.key, Values: n.values}
	}
	if c < 0 && n.left != nil {
		if cand := n.left.searchNearest(key, nearest, d); cand != nil && better(cand.Key) {
			nearest = cand
		}
	}
	descendRight := c > 0
	if d != anyDirection {
		descendRight = nearest == nil || c > 0
	}
	if descendRight && n.right != nil {
		if cand := n.right.searchNearest(key, nearest, d); cand != nil && better(cand.Key) {
			nearest = cand
		}
	}
	return nearest
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

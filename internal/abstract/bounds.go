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

// Bounds is a range query: at most one lower bound (Gt or Gte) and at most
// one upper bound (Lt or Lte) are effective. A nil field is absent.
type Bounds[K any] struct {
	Gt, Gte *K
	Lt, Lte *K
}

// LowerBoundMatcher returns a predicate telling whether a key satisfies the
// lower bound of b. When both Gt and Gte are set the tighter one wins, and
// equal values resolve to the exclusive bound.
func (c *Config[K, V]) LowerBoundMatcher(b Bounds[K]) func(K) bool {
	switch {
	case b.Gt == nil && b.Gte == nil:
		return func(K) bool { return true }
	case b.Gt != nil && b.Gte != nil && c.cmp(*b.Gte, *b.Gt) > 0:
		gte := *b.Gte
		return func(k K) bool { return c.cmp(k, gte) >= 0 }
	case b.Gt != nil:
		gt := *b.Gt
		return func(k K) bool { return c.cmp(k, gt) > 0 }
	default:
		gte := *b.Gte
		return func(k K) bool { return c.cmp(k, gte) >= 0 }
	}
}

// UpperBoundMatcher is the mirror of LowerBoundMatcher for Lt and Lte.
func (c *Config[K, V]) UpperBoundMatcher(b Bounds[K]) func(K) bool {
	switch {
	case b.Lt == nil && b.Lte == nil:
		return func(K) bool { return true }
	case b.Lt != nil && b.Lte != nil && c.cmp(*b.Lte, *b.Lt) < 0:
		lte := *b.Lte
		return func(k K) bool { return c.cmp(k, lte) <= 0 }
	case b.Lt != nil:
		lt := *b.Lt
		return func(k K) bool { return c.cmp(k, lt) < 0 }
	default:
		lte := *b.Lte
		return func(k K) bool { return c.cmp(k, lte) <= 0 }
	}
}

// BetweenBounds returns the values of every key within b, in key order.
func (n *Node[K, V]) BetweenBounds(b Bounds[K]) []V {
	return n.betweenBounds(n.cfg.LowerBoundMatcher(b), n.cfg.UpperBoundMatcher(b), nil)
}

// betweenBounds appends to res the values of the subtree rooted at n that
// satisfy both matchers. A subtree is only visited if its root's key could
// let it contain matches.
func (n *Node[K, V]) betweenBounds(lower, upper func(K) bool, res []V) []V {
	if !n.hasKey {
		return res
	}
	lo, hi := lower(n.key), upper(n.key)
	if lo && n.left != nil {
		res = n.left.betweenBounds(lower, upper, res)
	}
	if lo && hi {
		res = append(res, n.values...)
	}
	if hi && n.right != nil {
		res = n.right.betweenBounds(lower, upper, res)
	}
	return res
}

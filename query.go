package bstindex

import "github.com/ajwerner/bstindex/internal/abstract"

// Query is a range query for BetweenBounds. Each field is an optional
// bound; nil means absent. When both Gt and Gte (or Lt and Lte) are set, the
// more restrictive one applies and equal values resolve to the exclusive
// bound.
type Query[K any] struct {
	Gt, Gte *K
	Lt, Lte *K
}

// WithGt returns q with the exclusive lower bound k.
func (q Query[K]) WithGt(k K) Query[K] { q.Gt = &k; return q }

// WithGte returns q with the inclusive lower bound k.
func (q Query[K]) WithGte(k K) Query[K] { q.Gte = &k; return q }

// WithLt returns q with the exclusive upper bound k.
func (q Query[K]) WithLt(k K) Query[K] { q.Lt = &k; return q }

// WithLte returns q with the inclusive upper bound k.
func (q Query[K]) WithLte(k K) Query[K] { q.Lte = &k; return q }

func (q Query[K]) bounds() abstract.Bounds[K] {
	return abstract.Bounds[K]{Gt: q.Gt, Gte: q.Gte, Lt: q.Lt, Lte: q.Lte}
}

package kcmp

import (
	"github.com/birdayz/kcmp/kdag"
)

// Edge is a precedence constraint: From must precede To in topological
// order. An Edge without To only registers From.
type Edge[T comparable] struct {
	From  T
	To    T
	HasTo bool
}

// Precedes returns the edge x -> y.
func Precedes[T comparable](x, y T) Edge[T] {
	return Edge[T]{From: x, To: y, HasTo: true}
}

// Node returns an edge that only registers x.
func Node[T comparable](x T) Edge[T] {
	return Edge[T]{From: x}
}

// ForTopologicalOrder sorts the graph described by edges topologically,
// reverses the result and uses it as a fixed order (see ForOrder). For an
// edge x -> y the comparator places y before x: dependencies come first.
//
// Returns an error wrapping ErrCycleDetected if the edges form a cycle.
func ForTopologicalOrder[T comparable](edges ...Edge[T]) (Comparator[T], error) {
	g := kdag.NewGraph[T]()
	ensure := func(n T) {
		if !g.HasNode(n) {
			_ = g.AddNode(n)
		}
	}
	for _, e := range edges {
		ensure(e.From)
		if !e.HasTo {
			continue
		}
		ensure(e.To)
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}

	order, err := g.ReverseTopologicalSort()
	if err != nil {
		return nil, err
	}
	return ForOrder(order...), nil
}

// MustForTopologicalOrder is like ForTopologicalOrder but panics on error.
func MustForTopologicalOrder[T comparable](edges ...Edge[T]) Comparator[T] {
	cmp, err := ForTopologicalOrder(edges...)
	if err != nil {
		panic(err)
	}
	return cmp
}

package kcmp

import "fmt"

type predicated[T any] struct {
	pred Predicate[T]
	cmp  Comparator[T]
}

// PredicateChain builds a comparator for a union of types. Each registered
// comparator applies to values accepted by its predicate; predicates are
// evaluated in registration order and the first one accepting both operands
// wins.
//
// A chain is immutable: OrIf returns a new chain.
//
//	cmp := kcmp.WithPredicate(kcmp.IsType[string], kcmp.Narrow[string](kcmp.IgnoreCase)).
//		OrIf(kcmp.IsType[int], kcmp.Narrow[int](kcmp.ReversedOrder[int])).
//		OrElsePanic()
type PredicateChain[T any] struct {
	entries []predicated[T]
}

// WithPredicate starts a chain with cmp applying to values accepted by pred.
func WithPredicate[T any](pred Predicate[T], cmp Comparator[T]) PredicateChain[T] {
	return PredicateChain[T]{}.OrIf(pred, cmp)
}

// OrIf returns a new chain with cmp registered for values accepted by pred.
func (c PredicateChain[T]) OrIf(pred Predicate[T], cmp Comparator[T]) PredicateChain[T] {
	entries := make([]predicated[T], len(c.entries), len(c.entries)+1)
	copy(entries, c.entries)
	return PredicateChain[T]{entries: append(entries, predicated[T]{pred: pred, cmp: cmp})}
}

func (c PredicateChain[T]) find(a, b T) (Comparator[T], bool) {
	for _, e := range c.entries {
		if e.pred(a) && e.pred(b) {
			return e.cmp, true
		}
	}
	return nil, false
}

// OrElsePanic finishes the chain. If no predicate accepts both operands, the
// comparator panics with an error wrapping ErrUnmatchedPredicate naming both
// types. Use Sort or TryCompare to get it back as an error.
func (c PredicateChain[T]) OrElsePanic() Comparator[T] {
	return func(a, b T) int {
		if cmp, ok := c.find(a, b); ok {
			return cmp(a, b)
		}
		panic(fmt.Errorf("%w for types [%T, %T]", ErrUnmatchedPredicate, a, b))
	}
}

// OrElse finishes the chain with fallback applying whenever no predicate
// accepts both operands.
func (c PredicateChain[T]) OrElse(fallback Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if cmp, ok := c.find(a, b); ok {
			return cmp(a, b)
		}
		return fallback(a, b)
	}
}

// IsType is a predicate accepting values of dynamic type V.
func IsType[V any](v any) bool {
	_, ok := v.(V)
	return ok
}

// IsNil is a predicate accepting the untyped nil.
func IsNil(v any) bool {
	return v == nil
}

// Narrow lifts a comparator for V to one over any. It must only see values
// of type V, which is what pairing it with IsType[V] guarantees.
func Narrow[V any](cmp Comparator[V]) Comparator[any] {
	return func(a, b any) int {
		return cmp(a.(V), b.(V))
	}
}

// Package kgods adapts kcmp comparators to the comparator type of the
// github.com/emirpasic/gods containers and back.
//
//	set := treeset.NewWith(kgods.ToGods(kcmp.IgnoreCase))
package kgods

import (
	"github.com/birdayz/kcmp"
	"github.com/emirpasic/gods/utils"
)

// ToGods wraps cmp so it can order gods trees, heaps and sorted maps.
// The container must only hold values of type T.
func ToGods[T any](cmp kcmp.Comparator[T]) utils.Comparator {
	return func(a, b interface{}) int {
		return cmp(a.(T), b.(T))
	}
}

// FromGods turns a gods comparator, e.g. utils.IntComparator, into a
// kcmp.Comparator for values of type T.
func FromGods[T any](cmp utils.Comparator) kcmp.Comparator[T] {
	return func(a, b T) int {
		return cmp(a, b)
	}
}

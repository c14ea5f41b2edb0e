package kcmp

import (
	"golang.org/x/exp/slices"
)

// Sort sorts s in place with cmp. A comparison error raised by a comparator
// of this package (unknown value, unmatched predicate) aborts the sort and is
// returned; s is left partially sorted in that case. Other panics propagate.
func Sort[S ~[]E, E any](s S, cmp Comparator[E]) (err error) {
	defer recoverComparison(&err)
	slices.SortFunc(s, cmp)
	return nil
}

// SortStable is like Sort but keeps the original order of equal elements.
func SortStable[S ~[]E, E any](s S, cmp Comparator[E]) (err error) {
	defer recoverComparison(&err)
	slices.SortStableFunc(s, cmp)
	return nil
}

// TryCompare calls cmp(a, b) and returns a comparison error instead of panicking.
func TryCompare[T any](cmp Comparator[T], a, b T) (order int, err error) {
	defer recoverComparison(&err)
	return cmp(a, b), nil
}

func recoverComparison(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok && isComparisonError(e) {
		*err = e
		return
	}
	panic(r)
}

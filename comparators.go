package kcmp

import "golang.org/x/exp/constraints"

// Unchanged leaves any order unchanged by returning 0 for every comparison.
// Combined with a stable sort it keeps the input order intact.
func Unchanged[T any](_, _ T) int {
	return 0
}

// isNaN reports whether v is unequal to itself, which only holds for NaN.
func isNaN[T constraints.Ordered](v T) bool {
	return v != v
}

// NaturalOrder compares a and b by their natural order via the < operator.
// Returns 0 if the values are equal. Strings compare byte-wise.
//
// NaN sorts after every other value and is equivalent to itself.
//
//	slices.SortFunc([]int{0, 3, 5, 1, 2, 4}, kcmp.NaturalOrder[int]) // [0 1 2 3 4 5]
func NaturalOrder[T constraints.Ordered](a, b T) int {
	switch aNaN, bNaN := isNaN(a), isNaN(b); {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}
	if a == b {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// LessThan is an alias of NaturalOrder.
func LessThan[T constraints.Ordered](a, b T) int {
	return NaturalOrder(a, b)
}

// ReversedOrder compares a and b by their natural reversed order via the > operator.
// Returns 0 if the values are equal.
//
// This mirrors NaturalOrder rather than negating it: NaN still sorts last.
// Use Reverse(NaturalOrder[T]) for a literal sign negation.
//
//	slices.SortFunc([]int{0, 3, 5, 1, 2, 4}, kcmp.ReversedOrder[int]) // [5 4 3 2 1 0]
func ReversedOrder[T constraints.Ordered](a, b T) int {
	switch aNaN, bNaN := isNaN(a), isNaN(b); {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}
	if a == b {
		return 0
	}
	if a > b {
		return -1
	}
	return 1
}

// GreaterThan is an alias of ReversedOrder.
func GreaterThan[T constraints.Ordered](a, b T) int {
	return ReversedOrder(a, b)
}

// ByLength puts the shorter slice first.
func ByLength[S ~[]E, E any](a, b S) int {
	return len(a) - len(b)
}

// ByStringLength puts the shorter string first. Length is counted in bytes.
func ByStringLength[S ~string](a, b S) int {
	return len(a) - len(b)
}

// ByMapLength puts the map with fewer entries first.
func ByMapLength[M ~map[K]V, K comparable, V any](a, b M) int {
	return len(a) - len(b)
}

// BySize puts the container with the smaller Size() first.
func BySize[T Sized](a, b T) int {
	return a.Size() - b.Size()
}

// NilFirst puts nil pointers first.
// Returns 0 if both or neither value is nil.
func NilFirst[T any](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return 0
}

// NilLast puts nil pointers last.
// Returns 0 if both or neither value is nil.
func NilLast[T any](a, b *T) int {
	return NilFirst(b, a)
}

// NilFirstThen puts nil pointers first and orders the remaining values by cmp.
func NilFirstThen[T any](cmp Comparator[T]) Comparator[*T] {
	return Comparator[*T](NilFirst[T]).Then(deref(cmp))
}

// NilLastThen puts nil pointers last and orders the remaining values by cmp.
func NilLastThen[T any](cmp Comparator[T]) Comparator[*T] {
	return Comparator[*T](NilLast[T]).Then(deref(cmp))
}

func deref[T any](cmp Comparator[T]) Comparator[*T] {
	return func(a, b *T) int {
		if a == nil || b == nil {
			return 0
		}
		return cmp(*a, *b)
	}
}

// TrueFirst puts true first.
//
//	// use CompareBy to broaden to arbitrary values
//	nonEmptyFirst := kcmp.CompareBy(func(s string) bool { return s != "" }, kcmp.TrueFirst)
func TrueFirst(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	}
	return 1
}

// TrueLast puts true last.
func TrueLast(a, b bool) int {
	return TrueFirst(b, a)
}

// Comparables compares two values that implement Comparable
// by invoking Compare on a with b as the argument.
func Comparables[T Comparable[T]](a, b T) int {
	return a.Compare(b)
}

package kcmp

// Comparator compares two values for sorting purposes.
//
// Should return:
//
// 1. a negative number if a sorts before b
//
// 2. 0 if a and b are equivalent
//
// 3. a positive number if a sorts after b
//
// Comparators built by this package are immutable and safe for concurrent use.
type Comparator[T any] func(a, b T) int

// Then returns a comparator that consults next whenever c reports equality.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return Compose(c, next)
}

// Reversed returns a comparator that imposes the reverse ordering of c.
func (c Comparator[T]) Reversed() Comparator[T] {
	return Reverse(c)
}

// Comparable is implemented by values that know how to order themselves
// relative to another value of the same type.
type Comparable[T any] interface {
	// Compare returns a negative number if the receiver sorts before other,
	// 0 if both are equivalent and a positive number otherwise.
	Compare(other T) int
}

// Predicate reports whether a comparator applies to a value.
// Predicates run on every comparison and must be pure.
type Predicate[T any] func(T) bool

// Sized is implemented by containers exposing their element count.
type Sized interface {
	Size() int
}

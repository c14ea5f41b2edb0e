package kcmp

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// CompareBy creates a comparator that compares two values of type T based on
// the value selected from each of them and the given comparator.
//
//	byID := kcmp.CompareBy(func(u User) int { return u.ID }, kcmp.NaturalOrder[int])
func CompareBy[T, O any](selector func(T) O, cmp Comparator[O]) Comparator[T] {
	return func(a, b T) int {
		return cmp(selector(a), selector(b))
	}
}

// CompareByOrdered is CompareBy with NaturalOrder as comparator.
func CompareByOrdered[T any, O constraints.Ordered](selector func(T) O) Comparator[T] {
	return CompareBy(selector, NaturalOrder[O])
}

// Compose composes multiple comparators into a single new one.
// The new comparator calls them in order for as long as the previous ones
// report the values as equal. Nil comparators are dropped.
//
//	// compare by length. if equal in length, compare alphabetically
//	cmp := kcmp.Compose(kcmp.ByStringLength[string], kcmp.LocaleCompare)
func Compose[T any](cmps ...Comparator[T]) Comparator[T] {
	filtered := make([]Comparator[T], 0, len(cmps))
	for _, cmp := range cmps {
		if cmp != nil {
			filtered = append(filtered, cmp)
		}
	}
	return func(a, b T) int {
		for _, cmp := range filtered {
			if order := cmp(a, b); order != 0 {
				return order
			}
		}
		return 0
	}
}

// Reverse creates a comparator that imposes the reverse ordering of cmp by
// negating its result. Magnitudes are kept: 5 becomes -5.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return -1 * cmp(a, b)
	}
}

// ForOrder creates a comparator that imposes the ordering defined by values.
// If a value appears more than once, its first position counts.
//
// Comparing a value that isn't part of values panics with an error wrapping
// ErrUnknownValue. Use Sort or TryCompare to get it back as an error.
//
//	cmp := kcmp.ForOrder("b", "a", "c")
//	slices.SortFunc([]string{"a", "b", "c", "b"}, cmp) // [b b a c]
func ForOrder[T comparable](values ...T) Comparator[T] {
	order := make(map[T]int, len(values))
	for i, v := range values {
		if _, exists := order[v]; !exists {
			order[v] = i
		}
	}
	rank := func(v T) int {
		r, ok := order[v]
		if !ok {
			panic(fmt.Errorf("%w of type %T: %v", ErrUnknownValue, v, v))
		}
		return r
	}
	return func(a, b T) int {
		return rank(a) - rank(b)
	}
}

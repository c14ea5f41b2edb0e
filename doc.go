// Package kcmp provides comparator combinators: reusable building blocks for
// the comparison functions handed to slices.SortFunc and friends.
//
// # Overview
//
// Every comparator has the shape func(a, b T) int: negative if a sorts before
// b, zero if both are equivalent and positive if a sorts after b. The package
// offers three layers:
//
//   - Primitives: NaturalOrder, ReversedOrder, IgnoreCase, LocaleCompare,
//     ByLength, BySize, NilFirst, TrueFirst, Comparables, Unchanged, ...
//   - Combinators: CompareBy, Compose, Reverse, ForOrder, ForDirections and
//     the type-dispatching WithPredicate chain
//   - Derived orders: ForTopologicalOrder here, and per-column table sorting
//     in package ktable
//
// # Basic Usage
//
//	type User struct {
//	    Name   string
//	    Age    int
//	    Active bool
//	}
//
//	cmp := kcmp.CompareBy(func(u User) bool { return u.Active }, kcmp.TrueFirst).
//	    Then(kcmp.CompareBy(func(u User) string { return u.Name }, kcmp.IgnoreCase)).
//	    Then(kcmp.CompareByOrdered(func(u User) int { return u.Age }).Reversed())
//
//	slices.SortFunc(users, cmp)
//
// # Error Handling
//
// Builders report invalid input with returned errors (ErrCycleDetected,
// ErrUnrecognizedDirection, ...), checkable with errors.Is(). A comparator
// cannot return an error, so ForOrder and PredicateChain.OrElsePanic panic
// with an error wrapping ErrUnknownValue or ErrUnmatchedPredicate when they
// meet input they have no order for. Sort, SortStable and TryCompare turn
// those panics back into errors.
//
// # Thread Safety
//
// Comparators are immutable once built and safe to use from multiple
// goroutines.
package kcmp

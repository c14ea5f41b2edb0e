package kcmp

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

type named struct {
	name string
}

func isNamed(v any) bool {
	_, ok := v.(named)
	return ok
}

func isPrimitive(v any) bool {
	switch v.(type) {
	case string, int:
		return true
	}
	return false
}

var byName = Narrow(CompareBy(func(n named) string { return n.name }, LocaleCompare))

func TestWithPredicate(t *testing.T) {
	t.Run("single comparator", func(t *testing.T) {
		cmp := WithPredicate(IsType[string], Narrow[string](IgnoreCase)).OrElsePanic()
		assert.Equal(t, firstSameAsSecond, cmp("A", "a"))
	})

	t.Run("unions", func(t *testing.T) {
		cmp := WithPredicate(isNamed, byName).
			OrIf(IsType[string], Narrow[string](IgnoreCase)).
			OrIf(IsType[int], Narrow[int](ReversedOrder[int])).
			OrElsePanic()

		assert.Equal(t, firstAfterSecond, cmp(1, 2))
		assert.Equal(t, firstSameAsSecond, cmp("A", "a"))
		assert.Equal(t, firstAfterSecond, cmp(named{"John"}, named{"Frannie"}))
	})

	t.Run("registration order wins", func(t *testing.T) {
		cmp := WithPredicate(isNamed, byName).
			OrIf(isPrimitive, func(a, b any) int {
				if IsType[int](a) && IsType[int](b) {
					return NaturalOrder(a.(int), b.(int))
				}
				return NaturalOrder(a.(string), b.(string))
			}).
			OrIf(IsType[string], Narrow[string](IgnoreCase)).
			OrElsePanic()

		assert.Equal(t, firstBeforeSecond, cmp(1, 2))
		assert.Equal(t, firstBeforeSecond, cmp("A", "a"))
		assert.Equal(t, firstAfterSecond, cmp(named{"John"}, named{"Frannie"}))
	})

	t.Run("chains are immutable", func(t *testing.T) {
		base := WithPredicate(IsType[string], Narrow[string](IgnoreCase))
		withInts := base.OrIf(IsType[int], Narrow[int](NaturalOrder[int]))

		_, err := TryCompare(base.OrElsePanic(), any(1), any(2))
		assert.True(t, errors.Is(err, ErrUnmatchedPredicate))

		order, err := TryCompare(withInts.OrElsePanic(), any(1), any(2))
		assert.NoError(t, err)
		assert.Equal(t, firstBeforeSecond, order)
	})
}

func TestWithPredicateOrElsePanic(t *testing.T) {
	t.Run("values outside every predicate", func(t *testing.T) {
		cmp := WithPredicate(IsType[string], Narrow[string](IgnoreCase)).OrElsePanic()

		_, err := TryCompare(cmp, any(1), any(2))
		assert.True(t, errors.Is(err, ErrUnmatchedPredicate))
		assert.Equal(t, "unable to find comparator for types [int, int]", err.Error())
	})

	t.Run("operands of different types", func(t *testing.T) {
		cmp := WithPredicate(IsType[string], Narrow[string](IgnoreCase)).
			OrIf(IsType[int], Narrow[int](ReversedOrder[int])).
			OrElsePanic()

		_, err := TryCompare(cmp, any("a"), any(1))
		assert.True(t, errors.Is(err, ErrUnmatchedPredicate))
		assert.Equal(t, "unable to find comparator for types [string, int]", err.Error())

		err = Sort([]any{1, "2"}, cmp)
		assert.True(t, errors.Is(err, ErrUnmatchedPredicate))
	})
}

func TestWithPredicateOrElse(t *testing.T) {
	t.Run("falls back for unmatched values", func(t *testing.T) {
		cmp := WithPredicate(IsType[string], Narrow[string](IgnoreCase)).
			OrElse(func(a, b any) int { return NaturalOrder(a.(int), b.(int)) })
		assert.Equal(t, firstBeforeSecond, cmp(1, 2))
	})

	t.Run("matched values skip the fallback", func(t *testing.T) {
		cmp := WithPredicate(IsType[string], Narrow[string](IgnoreCase)).
			OrIf(IsType[int], Narrow[int](NaturalOrder[int])).
			OrElse(Unchanged[any])
		assert.Equal(t, firstBeforeSecond, cmp(1, 2))
		assert.Equal(t, firstSameAsSecond, cmp("a", 2))
	})
}

func TestIsNil(t *testing.T) {
	cmp := WithPredicate(IsNil, Unchanged[any]).
		OrIf(IsType[int], Narrow[int](NaturalOrder[int])).
		OrElse(CompareBy(IsNil, TrueFirst))

	values := []any{3, nil, 1}
	assert.NoError(t, SortStable(values, cmp))
	assert.Equal(t, []any{nil, 1, 3}, values)
}

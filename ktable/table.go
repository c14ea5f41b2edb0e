// Package ktable derives ascending and descending comparators for every
// column of a sortable table, where a column may break ties using the
// ascending comparators of other columns.
package ktable

import (
	"errors"
	"fmt"

	"github.com/birdayz/kcmp"
	"github.com/birdayz/kcmp/kdag"
	"go.uber.org/multierr"
)

// ErrDuplicateColumn is returned when two columns share a key.
var ErrDuplicateColumn = errors.New("duplicate column")

// Column defines how a single column sorts ascending. Ties are broken by
// the ascending comparators of TieBreakers, in listed order.
type Column[T any] struct {
	Key         string
	Compare     kcmp.Comparator[T]
	TieBreakers []string
}

// Col is a shorthand for creating a Column.
func Col[T any](key string, cmp kcmp.Comparator[T], tieBreakers ...string) Column[T] {
	return Column[T]{Key: key, Compare: cmp, TieBreakers: tieBreakers}
}

// Sort selects the active column and its direction.
type Sort[D comparable] struct {
	Active    string
	Direction D
}

// Table holds the precomputed comparators of every column.
// A Table is immutable and safe for concurrent use.
type Table[T any, D comparable] struct {
	dirs  kcmp.Directions[D]
	asc   map[string]kcmp.Comparator[T]
	desc  map[string]kcmp.Comparator[T]
	order []string
}

// NewDefault is New with kcmp.DefaultDirections.
func NewDefault[T any](columns ...Column[T]) (*Table[T, kcmp.Direction], error) {
	return New(kcmp.DefaultDirections, columns)
}

// New builds the comparators of all columns. Columns are resolved in
// dependency order, so a column's ascending comparator is only built after
// the comparators of all its tie-breakers.
//
// Returns an error wrapping kcmp.ErrUnresolvedDependency if a tie-breaker
// names an unknown column or the tie-breakers form a cycle, and
// ErrDuplicateColumn if two columns share a key.
func New[T any, D comparable](dirs kcmp.Directions[D], columns []Column[T], opts ...kcmp.Option) (*Table[T, D], error) {
	cfg := kcmp.NewConfig(opts...)

	g := kdag.NewGraph[string]()
	defs := make(map[string]Column[T], len(columns))
	for _, col := range columns {
		if err := g.AddNode(col.Key); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, col.Key)
		}
		defs[col.Key] = col
	}

	var err error
	for _, col := range columns {
		for _, tb := range col.TieBreakers {
			if edgeErr := g.AddEdge(col.Key, tb); edgeErr != nil {
				err = multierr.Append(err, fmt.Errorf("%w: unable to find existing %q comparator to create %q comparator",
					kcmp.ErrUnresolvedDependency, tb, col.Key))
			}
		}
	}
	if err != nil {
		return nil, err
	}

	// Tie-breakers are children, so reverse order yields them first.
	order, err := g.ReverseTopologicalSort()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kcmp.ErrUnresolvedDependency, err)
	}
	cfg.Log.V(1).Info("resolved table columns", "order", order)

	t := &Table[T, D]{
		dirs:  dirs,
		asc:   make(map[string]kcmp.Comparator[T], len(order)),
		desc:  make(map[string]kcmp.Comparator[T], len(order)),
		order: order,
	}
	for _, key := range order {
		col := defs[key]
		cmps := make([]kcmp.Comparator[T], 0, len(col.TieBreakers)+1)
		cmps = append(cmps, col.Compare)
		for _, tb := range col.TieBreakers {
			existing, ok := t.asc[tb]
			if !ok {
				return nil, fmt.Errorf("%w: unable to find existing %q comparator to create %q comparator",
					kcmp.ErrUnresolvedDependency, tb, key)
			}
			cmps = append(cmps, existing)
		}
		asc := kcmp.Compose(cmps...)
		t.asc[key] = asc
		t.desc[key] = kcmp.Reverse(asc)
	}
	return t, nil
}

// MustNew is like New but panics on error.
func MustNew[T any, D comparable](dirs kcmp.Directions[D], columns []Column[T], opts ...kcmp.Option) *Table[T, D] {
	t, err := New(dirs, columns, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Comparator returns the comparator for the given sort. The unchanged
// direction yields kcmp.Unchanged for any column.
//
// Returns an error wrapping kcmp.ErrUnknownSort for an unknown column or
// direction.
func (t *Table[T, D]) Comparator(s Sort[D]) (kcmp.Comparator[T], error) {
	if t.dirs.IsUnchanged(s.Direction) {
		return kcmp.Unchanged[T], nil
	}
	var (
		cmp kcmp.Comparator[T]
		ok  bool
	)
	switch s.Direction {
	case t.dirs.Asc:
		cmp, ok = t.asc[s.Active]
	case t.dirs.Desc:
		cmp, ok = t.desc[s.Active]
	}
	if !ok {
		return nil, fmt.Errorf("%w for key %q and direction %v", kcmp.ErrUnknownSort, s.Active, s.Direction)
	}
	return cmp, nil
}

// MustComparator is like Comparator but panics on error.
func (t *Table[T, D]) MustComparator(s Sort[D]) kcmp.Comparator[T] {
	cmp, err := t.Comparator(s)
	if err != nil {
		panic(err)
	}
	return cmp
}

// Columns returns the column keys in resolution order: every column comes
// after its tie-breakers.
func (t *Table[T, D]) Columns() []string {
	return append([]string(nil), t.order...)
}

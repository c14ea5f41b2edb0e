package kcmp

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Direction is the default indicator type for sort directions.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
	Unsorted   Direction = ""
)

// Directions maps caller-defined indicator values to sort directions.
type Directions[D comparable] struct {
	Asc  D
	Desc D

	unchanged    D
	hasUnchanged bool
}

// DefaultDirections recognizes "asc", "desc" and "" (unchanged).
var DefaultDirections = Directions[Direction]{Asc: Ascending, Desc: Descending}.WithUnchanged(Unsorted)

// WithUnchanged returns a copy of d that also recognizes u as "leave the order unchanged".
func (d Directions[D]) WithUnchanged(u D) Directions[D] {
	d.unchanged = u
	d.hasUnchanged = true
	return d
}

// IsUnchanged reports whether dir is the configured unchanged indicator.
func (d Directions[D]) IsUnchanged(dir D) bool {
	return d.hasUnchanged && dir == d.unchanged
}

// ForDirections returns a function that maps a direction to NaturalOrder
// (ascending), ReversedOrder (descending) or Unchanged.
//
// In Strict mode, the default, an unrecognized direction yields an error
// wrapping ErrUnrecognizedDirection. In Permissive mode it yields Unchanged.
func ForDirections[T constraints.Ordered, D comparable](dirs Directions[D], opts ...Option) func(D) (Comparator[T], error) {
	cfg := NewConfig(opts...)
	return func(dir D) (Comparator[T], error) {
		switch {
		case dirs.IsUnchanged(dir):
			return Unchanged[T], nil
		case dir == dirs.Asc:
			return NaturalOrder[T], nil
		case dir == dirs.Desc:
			return ReversedOrder[T], nil
		}
		if cfg.Mode == Permissive {
			cfg.Log.V(1).Info("unrecognized direction, leaving order unchanged", "direction", dir)
			return Unchanged[T], nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnrecognizedDirection, dir)
	}
}

// ForDirection is the one-shot form of ForDirections.
func ForDirection[T constraints.Ordered, D comparable](dirs Directions[D], dir D, opts ...Option) (Comparator[T], error) {
	return ForDirections[T](dirs, opts...)(dir)
}

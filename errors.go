package kcmp

import (
	"errors"

	"github.com/birdayz/kcmp/kdag"
)

// Sentinel errors for common failure cases.
var (
	ErrUnknownValue          = errors.New("unknown value")
	ErrUnmatchedPredicate    = errors.New("unable to find comparator")
	ErrUnrecognizedDirection = errors.New("unrecognized direction")
	ErrUnresolvedDependency  = errors.New("unresolved dependency")
	ErrUnknownSort           = errors.New("cannot determine comparator")

	// ErrCycleDetected is returned when precedence constraints form a cycle.
	ErrCycleDetected = kdag.ErrCycleDetected
)

// comparisonErrors are raised as panics from inside a Comparator and
// recovered by Sort, SortStable and TryCompare.
var comparisonErrors = []error{
	ErrUnknownValue,
	ErrUnmatchedPredicate,
}

func isComparisonError(err error) bool {
	for _, target := range comparisonErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

package kcmp

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	rootLocaleCompare = LocaleCompareFor(language.Und)
	rootIgnoreCase    = IgnoreCaseFor(language.Und)
)

// LocaleCompare compares two strings case sensitively using the root collation.
// Lower case sorts before upper case for otherwise equal strings.
func LocaleCompare(a, b string) int {
	return rootLocaleCompare(a, b)
}

// IgnoreCase compares two strings case insensitively: both operands are
// lower-cased before collation.
//
//	kcmp.IgnoreCase("A", "a") == 0
func IgnoreCase(a, b string) int {
	return rootIgnoreCase(a, b)
}

// LocaleCompareFor returns a case sensitive comparator using the collation of tag.
func LocaleCompareFor(tag language.Tag, opts ...collate.Option) Comparator[string] {
	pool := &sync.Pool{
		New: func() any {
			return collate.New(tag, opts...)
		},
	}
	return func(a, b string) int {
		c := pool.Get().(*collate.Collator)
		defer pool.Put(c)
		return c.CompareString(a, b)
	}
}

// lowerCollator bundles the stateful helpers IgnoreCaseFor needs per call.
type lowerCollator struct {
	lower    cases.Caser
	collator *collate.Collator
}

// IgnoreCaseFor returns a case insensitive comparator using the casing rules
// and collation of tag.
func IgnoreCaseFor(tag language.Tag, opts ...collate.Option) Comparator[string] {
	pool := &sync.Pool{
		New: func() any {
			return &lowerCollator{
				lower:    cases.Lower(tag),
				collator: collate.New(tag, opts...),
			}
		},
	}
	return func(a, b string) int {
		lc := pool.Get().(*lowerCollator)
		defer pool.Put(lc)
		return lc.collator.CompareString(lc.lower.String(a), lc.lower.String(b))
	}
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/birdayz/kcmp"
	"github.com/birdayz/kcmp/kserde"
	"github.com/birdayz/kcmp/ktable"
	"github.com/go-logr/logr"
)

const (
	formatLines = "lines"
	formatJSON  = "json"

	modeNatural    = "natural"
	modeReversed   = "reversed"
	modeIgnoreCase = "ignorecase"
	modeLocale     = "locale"
	modeLength     = "length"
)

type options struct {
	format    string
	mode      string
	order     []string
	columns   []string
	sort      string
	direction string
	strict    bool
	verbose   bool
}

func run(in io.Reader, out io.Writer, opts options, log logr.Logger) error {
	switch opts.format {
	case formatLines:
		return sortLines(in, out, opts, log)
	case formatJSON:
		return sortRecords(in, out, opts, log)
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
}

func sortLines(in io.Reader, out io.Writer, opts options, log logr.Logger) error {
	lines, err := kserde.ReadLines(in, kserde.String.Deserializer)
	if err != nil {
		return err
	}

	cmp, err := lineComparator(opts, log)
	if err != nil {
		return err
	}
	if err := kcmp.SortStable(lines, cmp); err != nil {
		return err
	}
	return kserde.WriteLines(out, lines, kserde.String.Serializer)
}

func lineComparator(opts options, log logr.Logger) (kcmp.Comparator[string], error) {
	dir := kcmp.Direction(opts.direction)
	cfgOpts := []kcmp.Option{kcmp.WithLogr(log.WithName("ksort"))}

	var base kcmp.Comparator[string]
	switch {
	case len(opts.order) > 0:
		base = kcmp.ForOrder(opts.order...)
	case opts.mode == modeNatural:
		return kcmp.ForDirection[string](kcmp.DefaultDirections, dir, cfgOpts...)
	case opts.mode == modeReversed:
		base = kcmp.ReversedOrder[string]
	case opts.mode == modeIgnoreCase:
		base = kcmp.IgnoreCase
	case opts.mode == modeLocale:
		base = kcmp.LocaleCompare
	case opts.mode == modeLength:
		base = kcmp.Comparator[string](kcmp.ByStringLength[string]).Then(kcmp.LocaleCompare)
	default:
		return nil, fmt.Errorf("unknown mode %q", opts.mode)
	}

	tbl, err := ktable.New(kcmp.DefaultDirections, []ktable.Column[string]{ktable.Col("line", base)}, cfgOpts...)
	if err != nil {
		return nil, err
	}
	return tbl.Comparator(ktable.Sort[kcmp.Direction]{Active: "line", Direction: dir})
}

func sortRecords(in io.Reader, out io.Writer, opts options, log logr.Logger) error {
	if opts.sort == "" {
		return fmt.Errorf("--sort is required for %s input", formatJSON)
	}
	serde := kserde.JSON[kserde.Record]()
	records, err := kserde.ReadLines(in, serde.Deserializer)
	if err != nil {
		return err
	}

	columns, err := parseColumns(opts.columns, opts.sort, valueComparator(opts.strict))
	if err != nil {
		return err
	}
	tbl, err := ktable.New(kcmp.DefaultDirections, columns, kcmp.WithLogr(log.WithName("ktable")))
	if err != nil {
		return err
	}

	cmp, err := tbl.Comparator(ktable.Sort[kcmp.Direction]{Active: opts.sort, Direction: kcmp.Direction(opts.direction)})
	if err != nil {
		return err
	}
	if err := kcmp.SortStable(records, cmp); err != nil {
		return err
	}
	return kserde.WriteLines(out, records, serde.Serializer)
}

// parseColumns turns "key" and "key=tie1,tie2" specs into table columns.
// The sort key gets a column of its own if no --column flag names it.
func parseColumns(specs []string, sortKey string, values kcmp.Comparator[any]) ([]ktable.Column[kserde.Record], error) {
	columns := make([]ktable.Column[kserde.Record], 0, len(specs)+1)
	seen := make(map[string]bool, len(specs))
	for _, spec := range specs {
		key, ties, _ := strings.Cut(spec, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid column %q", spec)
		}
		var tieBreakers []string
		if ties != "" {
			for _, tb := range strings.Split(ties, ",") {
				tieBreakers = append(tieBreakers, strings.TrimSpace(tb))
			}
		}
		columns = append(columns, ktable.Col(key, field(key, values), tieBreakers...))
		seen[key] = true
	}
	if sortKey != "" && !seen[sortKey] {
		columns = append(columns, ktable.Col(sortKey, field(sortKey, values)))
	}
	return columns, nil
}

func field(key string, values kcmp.Comparator[any]) kcmp.Comparator[kserde.Record] {
	return kcmp.CompareBy(func(r kserde.Record) any { return r[key] }, values)
}

type kind string

const (
	kindNull   kind = "null"
	kindBool   kind = "bool"
	kindNumber kind = "number"
	kindString kind = "string"
	kindArray  kind = "array"
	kindObject kind = "object"
)

func kindOf(v any) kind {
	switch v.(type) {
	case nil:
		return kindNull
	case bool:
		return kindBool
	case float64:
		return kindNumber
	case string:
		return kindString
	case []any:
		return kindArray
	default:
		return kindObject
	}
}

// valueComparator orders decoded JSON values. Values of the same scalar kind
// compare naturally; anything else is ranked by kind unless strict is set.
func valueComparator(strict bool) kcmp.Comparator[any] {
	chain := kcmp.WithPredicate(kcmp.IsNil, kcmp.Unchanged[any]).
		OrIf(kcmp.IsType[string], kcmp.Narrow[string](kcmp.IgnoreCase)).
		OrIf(kcmp.IsType[float64], kcmp.Narrow[float64](kcmp.NaturalOrder[float64])).
		OrIf(kcmp.IsType[bool], kcmp.Narrow[bool](kcmp.TrueLast))
	if strict {
		return chain.OrElsePanic()
	}
	return chain.OrElse(kcmp.CompareBy(kindOf, kcmp.ForOrder(kindNull, kindBool, kindNumber, kindString, kindArray, kindObject)))
}

package main

import (
	"io"
	"os"

	"github.com/birdayz/kcmp/pkg/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "ksort [file]",
		Short: "Sort lines or JSON records with composable comparators",
		Example: `  ksort --mode ignorecase < names.txt
  ksort --order high,medium,low < priorities.txt
  ksort --format json --column name --column age=name --sort age --direction desc < people.jsonl`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			zl := log.New(opts.verbose)

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					zl.Error().Err(err).Msg("cannot open input")
					return err
				}
				defer f.Close()
				in = f
			}

			if err := run(in, cmd.OutOrStdout(), opts, log.Logr(zl)); err != nil {
				zl.Error().Err(err).Msg("sort failed")
				return err
			}
			return nil
		},
	}
	bindFlags(cmd.Flags(), &opts)
	return cmd
}

func bindFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVar(&opts.format, "format", formatLines, "input format: lines or json")
	flags.StringVar(&opts.mode, "mode", modeNatural, "line comparison: natural, reversed, ignorecase, locale or length")
	flags.StringSliceVar(&opts.order, "order", nil, "fixed order of line values, e.g. high,medium,low")
	flags.StringArrayVar(&opts.columns, "column", nil, "json column as key[=tiebreaker,...], repeatable")
	flags.StringVar(&opts.sort, "sort", "", "json column to sort by")
	flags.StringVar(&opts.direction, "direction", "asc", `sort direction: asc, desc or "" to keep the input order`)
	flags.BoolVar(&opts.strict, "strict", false, "fail on json values of different kinds instead of ranking them by kind")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
}

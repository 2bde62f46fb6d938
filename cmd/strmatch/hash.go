package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/strmatch/rabinkarp"
	"github.com/coregx/strmatch/trace"
)

func newHashCmd() *cobra.Command {
	o := &inputOptions{}
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Print the Rabin-Karp hash of a pattern, one Horner step per symbol",
		Example: `  strmatch hash --pattern abc
  strmatch hash --encoding digit --modulus 13 --pattern 31415`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(cmd, o)
		},
	}
	o.addFlags(cmd)
	return cmd
}

func runHash(cmd *cobra.Command, o *inputOptions) error {
	if err := o.validateEncoding(); err != nil {
		return err
	}
	switch o.encoding {
	case encodingRune:
		return printHash(cmd, o, []rune(o.pattern), rabinkarp.Rune)
	case encodingDigit:
		return printHash(cmd, o, []byte(o.pattern), rabinkarp.DigitByte)
	default:
		return printHash(cmd, o, []byte(o.pattern), rabinkarp.Byte)
	}
}

func printHash[S comparable](cmd *cobra.Command, o *inputOptions, pattern []S, encode rabinkarp.Encoder[S]) error {
	cfg := rabinkarp.Config[S]{
		Radix:   o.radixFor(o.encoding),
		Modulus: o.modulus,
		Encode:  encode,
	}
	rec := trace.NewRecorder()
	h, err := rabinkarp.Hash(pattern, cfg, rec)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "radix %d, modulus %d\n", cfg.Radix, cfg.Modulus)
	for _, ev := range rec.Filter(trace.Hash) {
		fmt.Fprintf(out, "  %-4d %-6s %d\n", ev.Pos, describe(ev.Symbol), ev.Hash)
	}
	fmt.Fprintf(out, "hash %d\n", h)
	return nil
}

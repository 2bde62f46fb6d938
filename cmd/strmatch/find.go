package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/coregx/strmatch"
	"github.com/coregx/strmatch/rabinkarp"
	"github.com/coregx/strmatch/trace"
)

type findOptions struct {
	inputOptions
	algo    string
	text    string
	file    string
	all     bool
	trace   bool
	verbose bool
}

func newFindCmd() *cobra.Command {
	o := &findOptions{}
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Report every shift at which the pattern occurs in the text",
		Example: `  strmatch find --pattern onions --text onionionspl
  strmatch find --algo rabin-karp --encoding digit --modulus 7 --trace --pattern 26535 --text 3141592653589793
  strmatch find --all --pattern aa --text aaaa`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, o)
		},
	}
	o.addFlags(cmd)
	cmd.Flags().StringVarP(&o.algo, "algo", "a", strmatch.KMP.String(), "Algorithm: naive, automaton, kmp or rabin-karp")
	cmd.Flags().StringVarP(&o.text, "text", "t", "", "Text to search")
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "Read the text from a file")
	cmd.Flags().BoolVar(&o.all, "all", false, "Run every algorithm and check that they agree")
	cmd.Flags().BoolVar(&o.trace, "trace", false, "Print each matcher step")
	cmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "Log matcher steps to stderr")
	return cmd
}

func runFind(cmd *cobra.Command, o *findOptions) error {
	if err := o.validateEncoding(); err != nil {
		return err
	}
	text, err := readText(o.text, o.file)
	if err != nil {
		return err
	}

	switch o.encoding {
	case encodingRune:
		return find(cmd, o, []rune(text), []rune(o.pattern), rabinkarp.Rune)
	case encodingDigit:
		return find(cmd, o, []byte(text), []byte(o.pattern), rabinkarp.DigitByte)
	default:
		return find(cmd, o, []byte(text), []byte(o.pattern), rabinkarp.Byte)
	}
}

func find[S comparable](cmd *cobra.Command, o *findOptions, text, pattern []S, encode rabinkarp.Encoder[S]) error {
	cfg := strmatch.DefaultConfig()
	cfg.Radix = o.radixFor(o.encoding)
	cfg.Modulus = o.modulus
	cfg.Trace = o.sink(cmd)

	out := cmd.OutOrStdout()

	if o.all {
		return findAll(cmd, cfg, text, pattern, encode)
	}

	alg, err := strmatch.ParseAlgorithm(o.algo)
	if err != nil {
		return err
	}
	cfg.Algorithm = alg

	p, err := strmatch.Compile(pattern, cfg, encode)
	if err != nil {
		return err
	}
	offsets, err := p.FindAll(text)
	if err != nil {
		return err
	}

	if len(offsets) == 0 {
		fmt.Fprintln(out, "no match")
		return nil
	}
	for _, s := range offsets {
		fmt.Fprintf(out, "Pattern occurs with shift %d\n", s)
	}
	return nil
}

// findAll runs every algorithm over the same input and fails if any two
// disagree.
func findAll[S comparable](cmd *cobra.Command, cfg strmatch.Config, text, pattern []S, encode rabinkarp.Encoder[S]) error {
	out := cmd.OutOrStdout()
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed, color.Bold).SprintFunc()

	var reference []int
	agree := true
	for i, alg := range strmatch.Algorithms() {
		cfg.Algorithm = alg
		p, err := strmatch.Compile(pattern, cfg, encode)
		if err != nil {
			return fmt.Errorf("%s: %w", alg, err)
		}
		offsets, err := p.FindAll(text)
		if err != nil {
			return fmt.Errorf("%s: %w", alg, err)
		}
		if i == 0 {
			reference = offsets
		} else if !slices.Equal(reference, offsets) {
			agree = false
		}
		fmt.Fprintf(out, "%-11s %v\n", alg, offsets)
	}

	if !agree {
		fmt.Fprintln(out, bad("algorithms disagree"))
		return fmt.Errorf("algorithms disagree on %q", joinSymbols(pattern))
	}
	fmt.Fprintln(out, ok("all algorithms agree"))
	return nil
}

// sink assembles the trace destinations requested by flags.
func (o *findOptions) sink(cmd *cobra.Command) trace.Sink {
	var sinks []trace.Sink
	if o.trace {
		sinks = append(sinks, newRenderer(cmd.OutOrStdout()))
	}
	if o.verbose {
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
		sinks = append(sinks, trace.NewSlogSink(logger, slog.LevelDebug))
	}
	if len(sinks) == 0 {
		return nil
	}
	return trace.Multi(sinks...)
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coregx/strmatch/rabinkarp"
)

// Encodings accepted by --encoding.
const (
	encodingByte  = "byte"
	encodingRune  = "rune"
	encodingDigit = "digit"
)

// inputOptions are the flags shared by commands that read a pattern and
// interpret symbols.
type inputOptions struct {
	pattern  string
	encoding string
	radix    uint64
	modulus  uint64
}

func (o *inputOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.pattern, "pattern", "p", "", "Pattern to search for (required)")
	cmd.Flags().StringVar(&o.encoding, "encoding", encodingByte, "Symbol encoding: byte, rune or digit")
	cmd.Flags().Uint64Var(&o.radix, "radix", 0, "Rabin-Karp radix (0 picks one for the encoding)")
	cmd.Flags().Uint64Var(&o.modulus, "modulus", rabinkarp.DefaultModulus, "Rabin-Karp modulus")
	_ = cmd.MarkFlagRequired("pattern")
}

func (o *inputOptions) validateEncoding() error {
	switch o.encoding {
	case encodingByte, encodingRune, encodingDigit:
		return nil
	default:
		return fmt.Errorf("unknown encoding %q (want byte, rune or digit)", o.encoding)
	}
}

// radixFor returns the --radix value, or the natural radix of the encoding.
func (o *inputOptions) radixFor(encoding string) uint64 {
	if o.radix != 0 {
		return o.radix
	}
	switch encoding {
	case encodingDigit:
		return 10
	case encodingRune:
		return 0x110000
	default:
		return rabinkarp.DefaultRadix
	}
}

// readText returns --text, or the contents of --file. A trailing newline
// from the file is kept; it is part of the text.
func readText(text, file string) (string, error) {
	switch {
	case text != "" && file != "":
		return "", fmt.Errorf("--text and --file are mutually exclusive")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return string(data), nil
	default:
		return text, nil
	}
}

// describe renders a symbol for humans.
func describe(sym any) string {
	switch v := sym.(type) {
	case byte:
		return fmt.Sprintf("%q", rune(v))
	case rune:
		return fmt.Sprintf("%q", v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// joinSymbols renders a symbol sequence compactly.
func joinSymbols[S comparable](symbols []S) string {
	var b strings.Builder
	for _, s := range symbols {
		switch v := any(s).(type) {
		case byte:
			b.WriteByte(v)
		case rune:
			b.WriteRune(v)
		default:
			fmt.Fprint(&b, v)
		}
	}
	return b.String()
}

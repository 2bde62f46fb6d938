package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/coregx/strmatch"
	"github.com/coregx/strmatch/automaton"
	"github.com/coregx/strmatch/kmp"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle   = lipgloss.NewStyle().Align(lipgloss.Right)
	acceptStyle = lipgloss.NewStyle().Align(lipgloss.Right).Foreground(lipgloss.Color("10"))
)

type tableOptions struct {
	inputOptions
	algo string
}

func newTableCmd() *cobra.Command {
	o := &tableOptions{}
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the preprocessing table built from a pattern",
		Long: `Print the transition table (automaton) or the prefix table (kmp)
computed for a pattern. Accepting automaton states are marked with '*'.`,
		Example: `  strmatch table --algo automaton --pattern aab
  strmatch table --algo kmp --pattern ababaca`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd, o)
		},
	}
	o.addFlags(cmd)
	cmd.Flags().StringVarP(&o.algo, "algo", "a", strmatch.Automaton.String(), "Table to print: automaton or kmp")
	return cmd
}

func runTable(cmd *cobra.Command, o *tableOptions) error {
	if err := o.validateEncoding(); err != nil {
		return err
	}
	alg, err := strmatch.ParseAlgorithm(o.algo)
	if err != nil {
		return err
	}
	if o.encoding == encodingRune {
		return printTable(cmd, alg, []rune(o.pattern))
	}
	return printTable(cmd, alg, []byte(o.pattern))
}

func printTable[S comparable](cmd *cobra.Command, alg strmatch.Algorithm, pattern []S) error {
	var (
		header []string
		rows   [][]string
		accept = -1
	)

	switch alg {
	case strmatch.Automaton:
		a, err := automaton.Build(pattern, nil)
		if err != nil {
			return err
		}
		header = append(header, "state")
		for _, sym := range a.Alphabet() {
			header = append(header, describe(any(sym)))
		}
		for q := 0; q < a.States(); q++ {
			label := strconv.Itoa(q)
			if automaton.StateID(q) == a.Accepting() {
				label += "*"
				accept = q
			}
			row := []string{label}
			for _, next := range a.Row(automaton.StateID(q)) {
				row = append(row, strconv.FormatUint(uint64(next), 10))
			}
			rows = append(rows, row)
		}
	case strmatch.KMP:
		prefix, err := kmp.ComputePrefixTable(pattern, nil)
		if err != nil {
			return err
		}
		header = []string{"i", "symbol", "prefix"}
		for i, v := range prefix {
			rows = append(rows, []string{strconv.Itoa(i), describe(any(pattern[i])), strconv.Itoa(v)})
		}
	default:
		return fmt.Errorf("no table for %s (want automaton or kmp)", alg)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderGrid(header, rows, accept))
	return nil
}

// renderGrid lays out right-aligned columns. The row at index highlight,
// if any, is styled as accepting.
func renderGrid(header []string, rows [][]string, highlight int) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	line := func(cells []string, style lipgloss.Style) string {
		rendered := make([]string, len(cells))
		for i, cell := range cells {
			rendered[i] = style.Width(widths[i] + 2).Align(lipgloss.Right).Render(cell)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, line(header, headerStyle))
	for i, row := range rows {
		style := cellStyle
		if i == highlight {
			style = acceptStyle
		}
		lines = append(lines, line(row, style))
	}
	return strings.Join(lines, "\n")
}

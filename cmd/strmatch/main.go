// Command strmatch runs the exact substring matchers from the command line.
//
// Usage:
//
//	strmatch find --algo kmp --pattern onions --text onionionspl
//	strmatch find --algo rabin-karp --encoding digit --modulus 7 --trace \
//	    --pattern 26535 --text 3141592653589793
//	strmatch find --all --pattern algo --file notes.txt
//	strmatch table --algo automaton --pattern ababaca
//	strmatch hash --encoding digit --modulus 997 --pattern 26535
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:   "strmatch",
		Short: "Exact substring matching with naive, automaton, KMP and Rabin-Karp matchers",
		Long: `strmatch finds every (possibly overlapping) occurrence of a pattern in a text.

Algorithms:
  naive        brute-force comparison at every shift
  automaton    DFA built from the pattern
  kmp          Knuth-Morris-Pratt prefix table
  rabin-karp   rolling polynomial hash with verification

Use 'strmatch help <command>' for more information on a specific command.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	root.AddCommand(newFindCmd())
	root.AddCommand(newTableCmd())
	root.AddCommand(newHashCmd())
	return root
}

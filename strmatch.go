// Package strmatch provides exact substring matching over arbitrary symbol
// sequences with four interchangeable algorithms.
//
// All four report the same thing: the ascending, possibly overlapping,
// 0-based start offsets of every occurrence of a pattern in a text. They
// differ in preprocessing and scanning cost:
//
//   - Naive: no preprocessing, O(n*m) scan
//   - Automaton: O(m*|Σ|) DFA construction, O(n) scan
//   - KMP: O(m) prefix table, O(n) scan
//   - RabinKarp: O(m) pattern hash, O(n+m) expected scan with verification
//     of every hash hit (O(n*m) worst case)
//
// Symbols are any comparable Go type. RabinKarp additionally needs an
// encoder that maps symbols to non-negative integers.
//
// Basic usage:
//
//	offsets, err := strmatch.FindAllString(strmatch.KMP, "aaaa", "aa")
//	// offsets == [0 1 2]
//
// Compile once, match many texts:
//
//	p, err := strmatch.Compile([]rune("onions"), strmatch.DefaultConfig(), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for off, err := range p.All([]rune("onionionspl")) {
//	    ...
//	}
//
// Tracing:
//
//	cfg := strmatch.DefaultConfig()
//	cfg.Algorithm = strmatch.RabinKarp
//	cfg.Trace = trace.NewRecorder()
//
// Every matcher behaves identically with or without a trace sink.
package strmatch

import (
	"fmt"
	"strings"
)

// Algorithm selects a matching strategy.
type Algorithm uint8

const (
	// Naive compares the pattern at every shift.
	Naive Algorithm = iota

	// Automaton runs a DFA built from the pattern.
	Automaton

	// KMP uses the Knuth-Morris-Pratt prefix table.
	KMP

	// RabinKarp compares rolling hashes and verifies hits.
	RabinKarp
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Naive:
		return "naive"
	case Automaton:
		return "automaton"
	case KMP:
		return "kmp"
	case RabinKarp:
		return "rabin-karp"
	default:
		return fmt.Sprintf("Algorithm(%d)", a)
	}
}

// valid reports whether a is one of the declared algorithms.
func (a Algorithm) valid() bool {
	return a <= RabinKarp
}

// Algorithms returns every algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Naive, Automaton, KMP, RabinKarp}
}

// ParseAlgorithm returns the algorithm named s. Matching is case-insensitive
// and accepts a few common aliases ("brute-force", "dfa",
// "knuth-morris-pratt", "rk").
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "naive", "brute-force", "bruteforce":
		return Naive, nil
	case "automaton", "dfa", "finite-automaton":
		return Automaton, nil
	case "kmp", "knuth-morris-pratt":
		return KMP, nil
	case "rabin-karp", "rabinkarp", "rk":
		return RabinKarp, nil
	default:
		return 0, fmt.Errorf("strmatch: unknown algorithm %q", s)
	}
}

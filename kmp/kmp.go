// Package kmp implements Knuth-Morris-Pratt substring matching.
//
// The prefix table (failure function) records, for every pattern position,
// how much of the pattern is still matched after a mismatch. Scanning reuses
// that information instead of re-reading text, so each text symbol is
// examined a bounded number of times: O(m) preprocessing, O(n) scanning.
//
// KMP shines on small alphabets with tight repetition (DNA, binary data)
// where patterns contain re-usable sub-patterns.
package kmp

import (
	"github.com/coregx/strmatch/internal/seq"
	"github.com/coregx/strmatch/trace"
)

// Name identifies this matcher in trace events.
const Name = "kmp"

// Table is a prefix table: Table[i] is the length of the longest proper
// prefix of pattern[:i+1] that is also a suffix of it. Table[0] is always 0.
type Table []int

// ComputePrefixTable builds the prefix table of pattern in O(m). Each
// PrefixStep event carries a snapshot of the table so far; with a nil sink
// no snapshots are taken.
//
// Returns ErrInvalidPattern if pattern is empty.
func ComputePrefixTable[S comparable](pattern []S, sink trace.Sink) (Table, error) {
	if err := seq.CheckPattern(pattern); err != nil {
		return nil, err
	}

	m := len(pattern)
	prefix := make(Table, m)
	length := 0
	for i := 1; i < m; i++ {
		for length > 0 && pattern[length] != pattern[i] {
			length = prefix[length-1]
		}
		if pattern[length] == pattern[i] {
			length++
		}
		prefix[i] = length
		if sink != nil {
			sink.Emit(trace.Event{
				Kind:    trace.PrefixStep,
				Matcher: Name,
				Pos:     i,
				Next:    length,
				Table:   append([]int(nil), prefix[:i+1]...),
			})
		}
	}
	return prefix, nil
}

// Scan finds every occurrence of pattern in text using prefix, which must
// be ComputePrefixTable(pattern). yield receives start offsets in ascending
// order; scanning stops early if it returns false.
//
// After a full match the pointer falls back to prefix[m-1], so overlapping
// occurrences are reported: "aa" in "aaaa" yields 0, 1, 2.
func Scan[S comparable](text, pattern []S, prefix Table, sink trace.Sink, yield func(offset int) bool) error {
	if err := seq.CheckPattern(pattern); err != nil {
		return err
	}
	if len(prefix) != len(pattern) {
		return &TableError{PatternLen: len(pattern), TableLen: len(prefix)}
	}
	sink = trace.OrNop(sink)

	m := len(pattern)
	j := 0
	for i, sym := range text {
		for j > 0 && pattern[j] != sym {
			sink.Emit(trace.Event{
				Kind:    trace.Fallback,
				Matcher: Name,
				Pos:     i,
				State:   j,
				Next:    prefix[j-1],
				Symbol:  sym,
			})
			j = prefix[j-1]
		}
		if pattern[j] == sym {
			j++
		}
		if j == m {
			offset := i - m + 1
			sink.Emit(trace.Event{Kind: trace.Match, Matcher: Name, Shift: offset, Pos: i})
			if !yield(offset) {
				return nil
			}
			j = prefix[j-1]
		}
	}
	return nil
}

// Matcher pairs a pattern with its precomputed prefix table.
// It is immutable and safe for concurrent use.
type Matcher[S comparable] struct {
	pattern []S
	prefix  Table
}

// New computes the prefix table for pattern and returns a reusable Matcher.
func New[S comparable](pattern []S, sink trace.Sink) (*Matcher[S], error) {
	prefix, err := ComputePrefixTable(pattern, sink)
	if err != nil {
		return nil, err
	}
	return &Matcher[S]{pattern: append([]S(nil), pattern...), prefix: prefix}, nil
}

// Table returns a copy of the prefix table.
func (k *Matcher[S]) Table() Table {
	return append(Table(nil), k.prefix...)
}

// Len returns the pattern length.
func (k *Matcher[S]) Len() int {
	return len(k.pattern)
}

// Scan is Scan with the matcher's pattern and table.
func (k *Matcher[S]) Scan(text []S, sink trace.Sink, yield func(offset int) bool) error {
	return Scan(text, k.pattern, k.prefix, sink, yield)
}

// FindAll returns the start offsets of every occurrence in text.
func (k *Matcher[S]) FindAll(text []S, sink trace.Sink) ([]int, error) {
	var offsets []int
	err := k.Scan(text, sink, func(offset int) bool {
		offsets = append(offsets, offset)
		return true
	})
	if err != nil {
		return nil, err
	}
	return offsets, nil
}

// FindAll computes the prefix table of pattern and scans text with it.
func FindAll[S comparable](text, pattern []S, sink trace.Sink) ([]int, error) {
	k, err := New(pattern, sink)
	if err != nil {
		return nil, err
	}
	return k.FindAll(text, sink)
}

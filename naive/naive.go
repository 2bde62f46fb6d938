// Package naive implements brute-force substring matching.
//
// Every shift s in [0, n-m] is checked by comparing the pattern against
// text[s:s+m] element by element. There is no preprocessing, and the cost is
// O(n*m) in both the average and the worst case. It is the reference the
// other matchers are tested against.
package naive

import (
	"slices"

	"github.com/coregx/strmatch/internal/seq"
	"github.com/coregx/strmatch/trace"
)

// Name identifies this matcher in trace events.
const Name = "naive"

// Scan calls yield with the start offset of every occurrence of pattern in
// text, in ascending order. Occurrences may overlap. Scanning stops early if
// yield returns false.
//
// Returns ErrInvalidPattern if pattern is empty. A pattern longer than the
// text yields nothing.
func Scan[S comparable](text, pattern []S, sink trace.Sink, yield func(offset int) bool) error {
	if err := seq.CheckPattern(pattern); err != nil {
		return err
	}
	sink = trace.OrNop(sink)

	n, m := len(text), len(pattern)
	for s := 0; s <= n-m; s++ {
		ok := slices.Equal(text[s:s+m], pattern)
		sink.Emit(trace.Event{Kind: trace.Compare, Matcher: Name, Shift: s, Ok: ok})
		if !ok {
			continue
		}
		sink.Emit(trace.Event{Kind: trace.Match, Matcher: Name, Shift: s})
		if !yield(s) {
			return nil
		}
	}
	return nil
}

// FindAll returns the start offsets of every occurrence of pattern in text.
// The result is empty (nil) when there is no occurrence.
func FindAll[S comparable](text, pattern []S, sink trace.Sink) ([]int, error) {
	var offsets []int
	err := Scan(text, pattern, sink, func(offset int) bool {
		offsets = append(offsets, offset)
		return true
	})
	if err != nil {
		return nil, err
	}
	return offsets, nil
}

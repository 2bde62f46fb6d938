// Package automaton implements substring matching with a deterministic
// finite automaton built from the pattern.
//
// State q means "the last q text symbols equal pattern[:q]". The automaton
// has m+1 states over the pattern's own alphabet; state m is the only
// accepting state. Symbols that never occur in the pattern send every state
// back to 0, so they need no column in the table.
//
// Construction is O(m*|Σ|) and scanning is O(n) with exactly one table
// lookup per text symbol.
//
// Example:
//
//	a, err := automaton.Build([]byte("aa"), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	offsets, _ := a.FindAll([]byte("aaaa"), nil) // [0 1 2]
package automaton

import (
	"github.com/coregx/strmatch/internal/conv"
	"github.com/coregx/strmatch/internal/seq"
	"github.com/coregx/strmatch/trace"
)

// Name identifies this matcher in trace events.
const Name = "automaton"

// StateID is an automaton state: the number of pattern symbols matched.
type StateID uint32

// Automaton is an immutable transition table for one pattern.
// It is safe for concurrent use by multiple goroutines.
//
// The table is stored row-major:
//
//	table[state*stride + column(symbol)] → next state
//
// where stride is the alphabet size.
type Automaton[S comparable] struct {
	pattern []S

	// alphabet maps each distinct pattern symbol to its column.
	// symbols lists the columns in order of first appearance.
	alphabet map[S]uint32
	symbols  []S
	stride   int

	table  []StateID
	accept StateID
}

// Build constructs the automaton for pattern.
//
// Row 0 sends pattern[0] to state 1 and everything else to 0. Each row
// i ≥ 1 starts as a copy of the row of its failure state, then (for i < m)
// its forward edge on pattern[i] is set to i+1. The failure state for the
// next row is obtained by stepping the current failure state on pattern[i].
// Row m is materialized the same way, so after a full match the scan
// continues from the longest proper border and overlapping occurrences
// are found.
//
// Returns ErrInvalidPattern if pattern is empty.
func Build[S comparable](pattern []S, sink trace.Sink) (*Automaton[S], error) {
	if err := seq.CheckPattern(pattern); err != nil {
		return nil, err
	}
	m := len(pattern)
	a := &Automaton[S]{
		pattern:  append([]S(nil), pattern...),
		alphabet: make(map[S]uint32),
		accept:   StateID(conv.IntToUint32(m)),
	}
	for _, sym := range pattern {
		if _, ok := a.alphabet[sym]; !ok {
			a.alphabet[sym] = conv.IntToUint32(len(a.symbols))
			a.symbols = append(a.symbols, sym)
		}
	}
	a.stride = len(a.symbols)
	a.table = make([]StateID, (m+1)*a.stride)

	// Row 0: every column already defaults to state 0.
	a.table[a.alphabet[pattern[0]]] = 1
	a.emitRow(sink, 0, 0)

	lps := 0
	for i := 1; i <= m; i++ {
		copy(a.row(i), a.row(lps))
		from := lps
		if i < m {
			col := int(a.alphabet[pattern[i]])
			a.row(i)[col] = StateID(conv.IntToUint32(i + 1))
			lps = conv.Uint32ToInt(uint32(a.row(lps)[col]))
		}
		a.emitRow(sink, i, from)
	}

	return a, nil
}

// emitRow reports the finished row of state, which was copied from the
// row of failure state from. A nil sink skips the snapshot.
func (a *Automaton[S]) emitRow(sink trace.Sink, state, from int) {
	if sink == nil {
		return
	}
	row := a.row(state)
	snapshot := make([]int, len(row))
	for i, next := range row {
		snapshot[i] = conv.Uint32ToInt(uint32(next))
	}
	sink.Emit(trace.Event{Kind: trace.RowBuilt, Matcher: Name, State: state, Next: from, Table: snapshot})
}

// row returns the mutable slice of transitions for state.
func (a *Automaton[S]) row(state int) []StateID {
	return a.table[state*a.stride : (state+1)*a.stride]
}

// Next returns the state reached from state on sym. Symbols outside the
// pattern's alphabet lead to state 0. Panics if state > Len().
func (a *Automaton[S]) Next(state StateID, sym S) StateID {
	col, ok := a.alphabet[sym]
	if !ok {
		return 0
	}
	return a.table[int(state)*a.stride+int(col)]
}

// Len returns the pattern length m.
func (a *Automaton[S]) Len() int {
	return len(a.pattern)
}

// States returns the number of states, m+1.
func (a *Automaton[S]) States() int {
	return len(a.pattern) + 1
}

// Accepting returns the accepting state m.
func (a *Automaton[S]) Accepting() StateID {
	return a.accept
}

// Alphabet returns the distinct pattern symbols in column order.
func (a *Automaton[S]) Alphabet() []S {
	return append([]S(nil), a.symbols...)
}

// Row returns a copy of the transitions of state, one per Alphabet column.
// Panics if state > Len().
func (a *Automaton[S]) Row(state StateID) []StateID {
	return append([]StateID(nil), a.row(int(state))...)
}

// Pattern returns a copy of the pattern the automaton was built for.
func (a *Automaton[S]) Pattern() []S {
	return append([]S(nil), a.pattern...)
}

// Scan runs the automaton over text and calls yield with the start offset
// of every occurrence, in ascending order. Scanning stops early if yield
// returns false.
func (a *Automaton[S]) Scan(text []S, sink trace.Sink, yield func(offset int) bool) error {
	sink = trace.OrNop(sink)

	m := len(a.pattern)
	var state StateID
	for i, sym := range text {
		next := a.Next(state, sym)
		sink.Emit(trace.Event{
			Kind:    trace.Transition,
			Matcher: Name,
			Pos:     i,
			State:   int(state),
			Next:    int(next),
			Symbol:  sym,
		})
		state = next

		if state == a.accept {
			offset := i - m + 1
			sink.Emit(trace.Event{Kind: trace.Match, Matcher: Name, Shift: offset, Pos: i})
			if !yield(offset) {
				return nil
			}
		}
	}
	return nil
}

// FindAll returns the start offsets of every occurrence of the pattern in text.
func (a *Automaton[S]) FindAll(text []S, sink trace.Sink) ([]int, error) {
	var offsets []int
	err := a.Scan(text, sink, func(offset int) bool {
		offsets = append(offsets, offset)
		return true
	})
	return offsets, err
}

// FindAll builds the automaton for pattern and scans text with it.
// The same sink receives both construction and scanning events.
func FindAll[S comparable](text, pattern []S, sink trace.Sink) ([]int, error) {
	a, err := Build(pattern, sink)
	if err != nil {
		return nil, err
	}
	return a.FindAll(text, sink)
}

// Package trace defines the structured event stream emitted by the matchers.
//
// Matchers never format or print anything. When a Sink is attached they
// report semantic steps (a DFA transition, a KMP fallback, a rolled hash
// window, a spurious hash hit) as Event values, and leave rendering to the
// consumer. Attaching a sink never changes which offsets a matcher reports.
//
// Example:
//
//	rec := trace.NewRecorder()
//	offsets, _ := kmp.FindAll(text, pattern, rec)
//	for _, ev := range rec.Filter(trace.Fallback) {
//	    fmt.Println(ev)
//	}
package trace

import "fmt"

// Kind classifies a trace event.
type Kind uint8

const (
	// Compare reports a full element-wise comparison at a shift (naive scanner).
	Compare Kind = iota

	// Transition reports a DFA step: State -> Next on Symbol at text position Pos.
	Transition

	// RowBuilt reports that DFA row State was filled, copying row Next (the
	// failure state). Table holds the finished row, one entry per alphabet column.
	RowBuilt

	// PrefixStep reports that prefix[Pos] = Next was computed. Table holds
	// prefix[:Pos+1].
	PrefixStep

	// Fallback reports a KMP pointer fallback State -> Next at text position Pos.
	Fallback

	// Hash reports one fold step of the polynomial hash.
	Hash

	// Roll reports that the hash window was rolled to start at Shift.
	Roll

	// HashHit reports that the window hash at Shift equals the pattern hash.
	HashHit

	// SpuriousHit reports a hash hit whose verification failed.
	SpuriousHit

	// Match reports a recorded occurrence at Shift.
	Match

	numKinds
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Compare:
		return "compare"
	case Transition:
		return "transition"
	case RowBuilt:
		return "row-built"
	case PrefixStep:
		return "prefix-step"
	case Fallback:
		return "fallback"
	case Hash:
		return "hash"
	case Roll:
		return "roll"
	case HashHit:
		return "hash-hit"
	case SpuriousHit:
		return "spurious-hit"
	case Match:
		return "match"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Kinds returns every event kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Event is one semantic step of a matcher.
//
// Field meaning depends on Kind; unused fields are zero. Table, when set,
// is a snapshot owned by the event.
type Event struct {
	Kind    Kind
	Matcher string // "naive", "automaton", "kmp" or "rabin-karp"

	Shift int // candidate start offset in the text
	Pos   int // text (or pattern, while preprocessing) position

	State int // automaton state, KMP pointer or prefix value before the step
	Next  int // state or pointer after the step

	Symbol any

	Hash        uint64 // current window or prefix hash
	PatternHash uint64

	Ok    bool // Compare: whether the window equalled the pattern
	Table []int // RowBuilt: finished row; PrefixStep: prefix[:Pos+1]
}

// String renders the event on a single line.
func (e Event) String() string {
	switch e.Kind {
	case Compare:
		return fmt.Sprintf("%s %s shift=%d ok=%t", e.Matcher, e.Kind, e.Shift, e.Ok)
	case Transition, Fallback:
		return fmt.Sprintf("%s %s pos=%d %d->%d on %v", e.Matcher, e.Kind, e.Pos, e.State, e.Next, e.Symbol)
	case RowBuilt:
		return fmt.Sprintf("%s %s row=%d from=%d", e.Matcher, e.Kind, e.State, e.Next)
	case PrefixStep:
		return fmt.Sprintf("%s %s prefix[%d]=%d", e.Matcher, e.Kind, e.Pos, e.Next)
	case Hash:
		return fmt.Sprintf("%s %s pos=%d symbol=%v hash=%d", e.Matcher, e.Kind, e.Pos, e.Symbol, e.Hash)
	case Roll, HashHit, SpuriousHit:
		return fmt.Sprintf("%s %s shift=%d hash=%d pattern=%d", e.Matcher, e.Kind, e.Shift, e.Hash, e.PatternHash)
	case Match:
		return fmt.Sprintf("%s %s shift=%d", e.Matcher, e.Kind, e.Shift)
	default:
		return fmt.Sprintf("%s %s", e.Matcher, e.Kind)
	}
}

// Sink consumes trace events. Implementations must not retain the Table
// slice beyond the call unless they own it (events carry copies).
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

// Emit calls f(ev).
func (f SinkFunc) Emit(ev Event) {
	f(ev)
}

type nopSink struct{}

func (nopSink) Emit(Event) {}

// Nop returns a sink that discards every event.
func Nop() Sink {
	return nopSink{}
}

// OrNop returns s, or Nop() if s is nil.
func OrNop(s Sink) Sink {
	if s == nil {
		return nopSink{}
	}
	return s
}

// Multi fans each event out to every non-nil sink in order.
func Multi(sinks ...Sink) Sink {
	out := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return multiSink(out)
}

type multiSink []Sink

func (m multiSink) Emit(ev Event) {
	for _, s := range m {
		s.Emit(ev)
	}
}

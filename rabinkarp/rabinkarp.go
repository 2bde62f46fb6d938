// Package rabinkarp implements Rabin-Karp substring matching with a
// modular polynomial rolling hash.
//
// The pattern and each m-symbol text window are hashed as
//
//	h = (...((e(s0)*R + e(s1))*R + e(s2))...) mod Q
//
// where e is a caller-supplied Encoder. Sliding the window by one symbol
// updates the hash in O(1). Equal hashes are only candidates: every hit is
// verified element by element, and a failed verification (a spurious hit)
// is reported to the trace sink and otherwise ignored.
//
// Expected cost is O(n+m); adversarial inputs or a tiny modulus degrade
// it to O(n*m), never to a wrong answer.
//
// Example:
//
//	offsets, err := rabinkarp.FindAll(
//	    []byte("3141592653589793"), []byte("26535"),
//	    rabinkarp.DigitConfig(997), nil)
//	// offsets == [6]
package rabinkarp

import (
	"slices"

	"github.com/coregx/strmatch/internal/seq"
	"github.com/coregx/strmatch/trace"
)

// Name identifies this matcher in trace events.
const Name = "rabin-karp"

// Hash returns the polynomial hash of sequence under cfg. Each fold step
// is reported to sink. The hash of an empty sequence is 0.
//
// Returns a *ConfigError for an invalid cfg and an *AlphabetError
// (matching ErrInvalidAlphabet, Source "sequence") if a symbol cannot be
// encoded.
func Hash[S comparable](sequence []S, cfg Config[S], sink trace.Sink) (uint64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	return hash(sequence, "sequence", cfg, trace.OrNop(sink))
}

func hash[S comparable](sequence []S, source string, cfg Config[S], sink trace.Sink) (uint64, error) {
	q := cfg.Modulus
	radix := cfg.Radix % q

	var h uint64
	for i, sym := range sequence {
		code, err := encode(cfg.Encode, sym, source, i, q)
		if err != nil {
			return 0, err
		}
		h = addMod(mulMod(h, radix, q), code, q)
		sink.Emit(trace.Event{Kind: trace.Hash, Matcher: Name, Pos: i, Symbol: sym, Hash: h})
	}
	return h, nil
}

// encode maps sym to a digit reduced mod q.
func encode[S comparable](enc Encoder[S], sym S, source string, index int, q uint64) (uint64, error) {
	code, ok := enc(sym)
	if !ok {
		return 0, &AlphabetError{Source: source, Index: index, Symbol: sym}
	}
	return code % q, nil
}

// Matcher holds a pattern with its precomputed hash and leading-digit
// weight R^(m-1) mod Q. It is immutable and safe for concurrent use.
type Matcher[S comparable] struct {
	cfg         Config[S]
	pattern     []S
	patternHash uint64
	radix       uint64 // R mod Q
	lead        uint64 // R^(m-1) mod Q
}

// New validates cfg, hashes pattern and returns a reusable Matcher.
//
// Returns ErrInvalidPattern if pattern is empty, a *ConfigError for an
// invalid cfg, or an *AlphabetError if a pattern symbol cannot be encoded.
func New[S comparable](pattern []S, cfg Config[S], sink trace.Sink) (*Matcher[S], error) {
	if err := seq.CheckPattern(pattern); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ph, err := hash(pattern, "pattern", cfg, trace.OrNop(sink))
	if err != nil {
		return nil, err
	}

	q := cfg.Modulus
	return &Matcher[S]{
		cfg:         cfg,
		pattern:     append([]S(nil), pattern...),
		patternHash: ph,
		radix:       cfg.Radix % q,
		lead:        powMod(cfg.Radix, uint64(len(pattern)-1), q),
	}, nil
}

// PatternHash returns the hash of the pattern.
func (r *Matcher[S]) PatternHash() uint64 {
	return r.patternHash
}

// Len returns the pattern length.
func (r *Matcher[S]) Len() int {
	return len(r.pattern)
}

// roll drops the digit out and appends the digit in:
// (R*(h - out*R^(m-1)) + in) mod Q, normalized into [0, Q).
func (r *Matcher[S]) roll(h, out, in uint64) uint64 {
	q := r.cfg.Modulus
	h = subMod(h, mulMod(out, r.lead, q), q)
	return addMod(mulMod(h, r.radix, q), in, q)
}

// Scan slides an m-symbol window over text and calls yield with the start
// offset of every verified occurrence, in ascending order. Scanning stops
// early if yield returns false.
//
// Returns an *AlphabetError if a text symbol cannot be encoded; offsets
// already passed to yield remain valid. A text shorter than the pattern
// is not hashed at all.
func (r *Matcher[S]) Scan(text []S, sink trace.Sink, yield func(offset int) bool) error {
	sink = trace.OrNop(sink)

	n, m := len(text), len(r.pattern)
	if n < m {
		return nil
	}
	q := r.cfg.Modulus

	window, err := hash(text[:m], "text", r.cfg, sink)
	if err != nil {
		return err
	}

	for s := 0; s <= n-m; s++ {
		if window == r.patternHash {
			ev := trace.Event{Matcher: Name, Shift: s, Hash: window, PatternHash: r.patternHash}
			ev.Kind = trace.HashHit
			sink.Emit(ev)

			if slices.Equal(text[s:s+m], r.pattern) {
				ev.Kind = trace.Match
				sink.Emit(ev)
				if !yield(s) {
					return nil
				}
			} else {
				ev.Kind = trace.SpuriousHit
				sink.Emit(ev)
			}
		}

		if s < n-m {
			out, err := encode(r.cfg.Encode, text[s], "text", s, q)
			if err != nil {
				return err
			}
			in, err := encode(r.cfg.Encode, text[s+m], "text", s+m, q)
			if err != nil {
				return err
			}
			window = r.roll(window, out, in)
			sink.Emit(trace.Event{
				Kind:        trace.Roll,
				Matcher:     Name,
				Shift:       s + 1,
				Pos:         s + m,
				Symbol:      text[s+m],
				Hash:        window,
				PatternHash: r.patternHash,
			})
		}
	}
	return nil
}

// FindAll returns the start offsets of every occurrence in text.
func (r *Matcher[S]) FindAll(text []S, sink trace.Sink) ([]int, error) {
	var offsets []int
	err := r.Scan(text, sink, func(offset int) bool {
		offsets = append(offsets, offset)
		return true
	})
	if err != nil {
		return nil, err
	}
	return offsets, nil
}

// FindAll hashes pattern under cfg and scans text with it.
func FindAll[S comparable](text, pattern []S, cfg Config[S], sink trace.Sink) ([]int, error) {
	r, err := New(pattern, cfg, sink)
	if err != nil {
		return nil, err
	}
	return r.FindAll(text, sink)
}

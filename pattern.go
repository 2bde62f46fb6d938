package strmatch

import (
	"iter"

	"github.com/coregx/strmatch/automaton"
	"github.com/coregx/strmatch/internal/seq"
	"github.com/coregx/strmatch/kmp"
	"github.com/coregx/strmatch/naive"
	"github.com/coregx/strmatch/rabinkarp"
	"github.com/coregx/strmatch/trace"
)

// Pattern is a compiled pattern bound to one algorithm.
//
// A Pattern is immutable and safe to use concurrently from multiple
// goroutines, provided the configured trace sink is.
type Pattern[S comparable] struct {
	alg     Algorithm
	pattern []S
	sink    trace.Sink

	// Exactly one of these is set, matching alg (none for Naive).
	dfa *automaton.Automaton[S]
	kmp *kmp.Matcher[S]
	rk  *rabinkarp.Matcher[S]
}

// Compile validates cfg and pattern and runs the algorithm's preprocessing:
// the DFA for Automaton, the prefix table for KMP, the pattern hash for
// RabinKarp. encode is only used (and then required) by RabinKarp.
//
// Returns ErrInvalidPattern for an empty pattern, a *ConfigError for a bad
// configuration, and an *AlphabetError if RabinKarp cannot encode a
// pattern symbol.
func Compile[S comparable](pattern []S, cfg Config, encode rabinkarp.Encoder[S]) (*Pattern[S], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := seq.CheckPattern(pattern); err != nil {
		return nil, err
	}

	p := &Pattern[S]{
		alg:     cfg.Algorithm,
		pattern: append([]S(nil), pattern...),
		sink:    cfg.Trace,
	}

	var err error
	switch cfg.Algorithm {
	case Automaton:
		p.dfa, err = automaton.Build(pattern, cfg.Trace)
	case KMP:
		p.kmp, err = kmp.New(pattern, cfg.Trace)
	case RabinKarp:
		if encode == nil {
			return nil, &ConfigError{Field: "Encoder", Message: "rabin-karp requires a symbol encoder"}
		}
		p.rk, err = rabinkarp.New(pattern, rabinkarp.Config[S]{
			Radix:   cfg.Radix,
			Modulus: cfg.Modulus,
			Encode:  encode,
		}, cfg.Trace)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile[S comparable](pattern []S, cfg Config, encode rabinkarp.Encoder[S]) *Pattern[S] {
	p, err := Compile(pattern, cfg, encode)
	if err != nil {
		panic("strmatch: Compile: " + err.Error())
	}
	return p
}

// Algorithm returns the algorithm the pattern was compiled for.
func (p *Pattern[S]) Algorithm() Algorithm {
	return p.alg
}

// Len returns the pattern length.
func (p *Pattern[S]) Len() int {
	return len(p.pattern)
}

// scan dispatches to the compiled matcher.
func (p *Pattern[S]) scan(text []S, yield func(int) bool) error {
	switch p.alg {
	case Automaton:
		return p.dfa.Scan(text, p.sink, yield)
	case KMP:
		return p.kmp.Scan(text, p.sink, yield)
	case RabinKarp:
		return p.rk.Scan(text, p.sink, yield)
	default:
		return naive.Scan(text, p.pattern, p.sink, yield)
	}
}

// FindAll returns the ascending start offsets of every occurrence of the
// pattern in text, overlapping occurrences included. The result is nil when
// there is no occurrence, including when the text is shorter than the pattern.
func (p *Pattern[S]) FindAll(text []S) ([]int, error) {
	var offsets []int
	err := p.scan(text, func(offset int) bool {
		offsets = append(offsets, offset)
		return true
	})
	if err != nil {
		return nil, err
	}
	return offsets, nil
}

// All returns an iterator over the occurrences in text. Breaking out of the
// loop stops the scan. If the scan fails, the last pair yielded is
// (-1, err).
func (p *Pattern[S]) All(text []S) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		stopped := false
		err := p.scan(text, func(offset int) bool {
			if !yield(offset, nil) {
				stopped = true
				return false
			}
			return true
		})
		if err != nil && !stopped {
			yield(-1, err)
		}
	}
}

// Index returns the offset of the first occurrence in text, or -1.
func (p *Pattern[S]) Index(text []S) (int, error) {
	first := -1
	err := p.scan(text, func(offset int) bool {
		first = offset
		return false
	})
	if err != nil {
		return -1, err
	}
	return first, nil
}

// Contains reports whether the pattern occurs in text.
func (p *Pattern[S]) Contains(text []S) (bool, error) {
	i, err := p.Index(text)
	return i >= 0, err
}

// Count returns the number of (possibly overlapping) occurrences in text.
func (p *Pattern[S]) Count(text []S) (int, error) {
	n := 0
	err := p.scan(text, func(int) bool {
		n++
		return true
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Match finds every occurrence of pattern in text with the given algorithm
// and default hash parameters. encode is required for RabinKarp only.
func Match[S comparable](alg Algorithm, text, pattern []S, encode rabinkarp.Encoder[S]) ([]int, error) {
	cfg := DefaultConfig()
	cfg.Algorithm = alg
	p, err := Compile(pattern, cfg, encode)
	if err != nil {
		return nil, err
	}
	return p.FindAll(text)
}

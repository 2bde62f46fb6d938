// Package seq holds the sentinel errors shared by every matcher and the
// pattern check that produces ErrInvalidPattern.
package seq

import "errors"

var (
	// ErrInvalidPattern is returned by every matcher when the pattern is empty.
	// Matching an empty pattern is undefined rather than "matches everywhere".
	ErrInvalidPattern = errors.New("invalid pattern: length must be at least 1")

	// ErrInvalidAlphabet is returned by the rolling-hash matcher when its
	// encoder cannot map a symbol present in the text or pattern.
	ErrInvalidAlphabet = errors.New("invalid alphabet: symbol cannot be encoded")
)

// CheckPattern returns ErrInvalidPattern if pattern is empty.
func CheckPattern[S comparable](pattern []S) error {
	if len(pattern) == 0 {
		return ErrInvalidPattern
	}
	return nil
}

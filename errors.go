package strmatch

import (
	"github.com/coregx/strmatch/internal/seq"
	"github.com/coregx/strmatch/rabinkarp"
)

var (
	// ErrInvalidPattern is returned by every algorithm for an empty pattern.
	ErrInvalidPattern = seq.ErrInvalidPattern

	// ErrInvalidAlphabet is returned by RabinKarp when its encoder cannot
	// map a symbol of the text or pattern. The concrete error is an
	// *AlphabetError carrying the offending position.
	ErrInvalidAlphabet = seq.ErrInvalidAlphabet
)

// AlphabetError reports a symbol the RabinKarp encoder could not map.
type AlphabetError = rabinkarp.AlphabetError

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "strmatch: invalid config: " + e.Field + ": " + e.Message
}

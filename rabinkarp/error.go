package rabinkarp

import (
	"fmt"

	"github.com/coregx/strmatch/internal/seq"
)

// AlphabetError reports a symbol the encoder could not map.
// It matches ErrInvalidAlphabet under errors.Is.
type AlphabetError struct {
	Source string // "pattern", "text", or "sequence" for Hash
	Index  int
	Symbol any
}

// Error implements the error interface.
func (e *AlphabetError) Error() string {
	return fmt.Sprintf("rabin-karp: cannot encode %s symbol %v at index %d", e.Source, e.Symbol, e.Index)
}

// Unwrap returns ErrInvalidAlphabet.
func (e *AlphabetError) Unwrap() error {
	return seq.ErrInvalidAlphabet
}

// ConfigError represents an invalid hash configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "rabin-karp: invalid config: " + e.Field + ": " + e.Message
}

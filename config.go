package strmatch

import (
	"github.com/coregx/strmatch/rabinkarp"
	"github.com/coregx/strmatch/trace"
)

// Config controls pattern compilation.
//
// Example:
//
//	cfg := strmatch.DefaultConfig()
//	cfg.Algorithm = strmatch.RabinKarp
//	cfg.Radix, cfg.Modulus = 10, 997
//	p, err := strmatch.Compile([]byte("26535"), cfg, rabinkarp.DigitByte)
type Config struct {
	// Algorithm selects the matcher.
	// Default: KMP
	Algorithm Algorithm

	// Radix is the RabinKarp polynomial base. Ignored by other algorithms.
	// Default: 256
	Radix uint64

	// Modulus is the RabinKarp hash modulus. Ignored by other algorithms.
	// Default: 1,000,000,007
	Modulus uint64

	// Trace receives step events from preprocessing and every scan.
	// It must be safe for concurrent use if the compiled Pattern is shared
	// between goroutines. Default: nil (no tracing)
	Trace trace.Sink
}

// DefaultConfig returns KMP with the default RabinKarp hash parameters.
func DefaultConfig() Config {
	return Config{
		Algorithm: KMP,
		Radix:     rabinkarp.DefaultRadix,
		Modulus:   rabinkarp.DefaultModulus,
	}
}

// Validate checks if the configuration is valid.
//
// Radix and Modulus are only checked when Algorithm is RabinKarp; both
// must be at least 2.
func (c Config) Validate() error {
	if !c.Algorithm.valid() {
		return &ConfigError{Field: "Algorithm", Message: "unknown algorithm " + c.Algorithm.String()}
	}
	if c.Algorithm == RabinKarp {
		if c.Radix < 2 {
			return &ConfigError{Field: "Radix", Message: "must be at least 2"}
		}
		if c.Modulus < 2 {
			return &ConfigError{Field: "Modulus", Message: "must be at least 2"}
		}
	}
	return nil
}

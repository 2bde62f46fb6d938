package rabinkarp

const (
	// DefaultRadix treats every byte value as a distinct digit.
	DefaultRadix = 256

	// DefaultModulus is a prime large enough that spurious hits are rare
	// for texts of a few megabytes.
	DefaultModulus = 1_000_000_007
)

// Encoder maps a symbol to its non-negative digit value. It reports false
// for symbols outside the alphabet it understands.
type Encoder[S comparable] func(S) (uint64, bool)

// Config describes the polynomial hash used by the matcher.
//
// The probability of a spurious hit per window is roughly 1/Modulus for a
// well-mixed alphabet; Modulus should be large relative to n*m² to keep the
// expected number of verifications low. This is not enforced: a small
// modulus only costs extra comparisons, never correctness.
type Config[S comparable] struct {
	// Radix is the polynomial base R. Must be at least 2.
	Radix uint64

	// Modulus is Q. Must be at least 2.
	Modulus uint64

	// Encode maps symbols to digits. Must be non-nil. Values at or above
	// Modulus are reduced.
	Encode Encoder[S]
}

// ByteConfig returns the configuration for raw bytes: radix 256, the
// default modulus and the identity encoder.
func ByteConfig() Config[byte] {
	return Config[byte]{Radix: DefaultRadix, Modulus: DefaultModulus, Encode: Byte}
}

// DigitConfig returns a radix-10 configuration over ASCII digits with the
// given modulus. Any non-digit symbol is an alphabet error.
func DigitConfig(modulus uint64) Config[byte] {
	return Config[byte]{Radix: 10, Modulus: modulus, Encode: DigitByte}
}

// Validate checks that the configuration can be used for hashing.
//
// Example:
//
//	cfg := rabinkarp.Config[byte]{Radix: 1, Modulus: 7, Encode: rabinkarp.Byte}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err) // rabin-karp: invalid config: Radix: must be at least 2
//	}
func (c Config[S]) Validate() error {
	if c.Radix < 2 {
		return &ConfigError{Field: "Radix", Message: "must be at least 2"}
	}
	if c.Modulus < 2 {
		return &ConfigError{Field: "Modulus", Message: "must be at least 2"}
	}
	if c.Encode == nil {
		return &ConfigError{Field: "Encode", Message: "must not be nil"}
	}
	return nil
}

// Package conv provides checked integer narrowing for automaton state ids.
//
// A pattern of length m produces m+1 states, so state ids fit in uint32 for
// any pattern that fits in memory on 64-bit platforms. The helpers panic on
// overflow since that indicates a programming error, not bad input.
package conv

import "math"

// IntToUint32 converts n to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Compare as uint so 32-bit platforms, where int cannot hold
	// math.MaxUint32, do not overflow.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

// Uint32ToInt widens a state id back to an int offset.
//
//go:inline
func Uint32ToInt(n uint32) int {
	if uint64(n) > uint64(math.MaxInt) {
		panic("integer overflow: uint32 value out of int range")
	}
	return int(n)
}

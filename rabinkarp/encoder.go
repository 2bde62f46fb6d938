package rabinkarp

import "unicode/utf8"

// Byte encodes a byte as its numeric value.
func Byte(b byte) (uint64, bool) {
	return uint64(b), true
}

// Rune encodes a valid Unicode code point as its numeric value.
func Rune(r rune) (uint64, bool) {
	if !utf8.ValidRune(r) {
		return 0, false
	}
	return uint64(r), true
}

// DigitByte encodes the ASCII digits '0'..'9' as 0..9.
func DigitByte(b byte) (uint64, bool) {
	if b < '0' || b > '9' {
		return 0, false
	}
	return uint64(b - '0'), true
}

// DigitRune encodes the ASCII digits '0'..'9' as 0..9.
func DigitRune(r rune) (uint64, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return uint64(r - '0'), true
}

// Signed is the set of signed integer symbol types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer symbol types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Int encodes a non-negative signed integer symbol as itself.
func Int[S Signed](s S) (uint64, bool) {
	if s < 0 {
		return 0, false
	}
	return uint64(s), true
}

// Uint encodes an unsigned integer symbol as itself.
func Uint[S Unsigned](s S) (uint64, bool) {
	return uint64(s), true
}

// Table returns an encoder backed by an explicit symbol → digit mapping.
// Symbols missing from codes are rejected. The map is copied.
func Table[S comparable](codes map[S]uint64) Encoder[S] {
	owned := make(map[S]uint64, len(codes))
	for k, v := range codes {
		owned[k] = v
	}
	return func(s S) (uint64, bool) {
		v, ok := owned[s]
		return v, ok
	}
}

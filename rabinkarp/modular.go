package rabinkarp

import "math/bits"

// The helpers below keep every intermediate value in [0, q). Operands must
// already be reduced. 128-bit products make any q up to 2^64-1 safe.

// mulMod returns a*b mod q.
func mulMod(a, b, q uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	// a, b < q implies hi < q, which Div64 requires.
	_, rem := bits.Div64(hi, lo, q)
	return rem
}

// addMod returns (a+b) mod q.
func addMod(a, b, q uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 || sum >= q {
		sum -= q
	}
	return sum
}

// subMod returns (a-b) mod q, normalized into [0, q).
func subMod(a, b, q uint64) uint64 {
	if a >= b {
		return a - b
	}
	return q - (b - a)
}

// powMod returns base^exp mod q by repeated squaring.
func powMod(base, exp, q uint64) uint64 {
	result := uint64(1) % q
	base %= q
	for ; exp > 0; exp >>= 1 {
		if exp&1 != 0 {
			result = mulMod(result, base, q)
		}
		base = mulMod(base, base, q)
	}
	return result
}

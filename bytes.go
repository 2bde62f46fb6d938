package strmatch

import "github.com/coregx/strmatch/rabinkarp"

// FindAllIndex returns the offsets of every occurrence of pattern in text.
// RabinKarp hashes raw byte values with radix 256.
func FindAllIndex(alg Algorithm, text, pattern []byte) ([]int, error) {
	return Match(alg, text, pattern, rabinkarp.Byte)
}

// FindAllString is FindAllIndex for strings. Offsets are byte offsets.
func FindAllString(alg Algorithm, text, pattern string) ([]int, error) {
	return FindAllIndex(alg, []byte(text), []byte(pattern))
}

// CountString returns the number of (possibly overlapping) occurrences of
// pattern in text.
func CountString(alg Algorithm, text, pattern string) (int, error) {
	cfg := DefaultConfig()
	cfg.Algorithm = alg
	p, err := Compile([]byte(pattern), cfg, rabinkarp.Byte)
	if err != nil {
		return 0, err
	}
	return p.Count([]byte(text))
}

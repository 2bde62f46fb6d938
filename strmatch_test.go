package strmatch

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/coregx/strmatch/rabinkarp"
	"github.com/coregx/strmatch/trace"
)

func TestAlgorithmString(t *testing.T) {
	tests := []struct {
		alg  Algorithm
		want string
	}{
		{Naive, "naive"},
		{Automaton, "automaton"},
		{KMP, "kmp"},
		{RabinKarp, "rabin-karp"},
		{Algorithm(9), "Algorithm(9)"},
	}
	for _, tt := range tests {
		if got := tt.alg.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{"naive", Naive, false},
		{"Brute-Force", Naive, false},
		{"dfa", Automaton, false},
		{"automaton", Automaton, false},
		{"KMP", KMP, false},
		{"knuth-morris-pratt", KMP, false},
		{"rk", RabinKarp, false},
		{" rabin-karp ", RabinKarp, false},
		{"boyer-moore", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAlgorithm(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAlgorithm(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	for _, alg := range Algorithms() {
		got, err := ParseAlgorithm(alg.String())
		if err != nil || got != alg {
			t.Errorf("ParseAlgorithm(%q) = %v, %v; want round trip", alg.String(), got, err)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"default", func(*Config) {}, ""},
		{"unknown algorithm", func(c *Config) { c.Algorithm = Algorithm(42) }, "Algorithm"},
		{"rk radix", func(c *Config) { c.Algorithm, c.Radix = RabinKarp, 1 }, "Radix"},
		{"rk modulus", func(c *Config) { c.Algorithm, c.Modulus = RabinKarp, 0 }, "Modulus"},
		{"kmp ignores hash params", func(c *Config) { c.Radix, c.Modulus = 0, 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("ConfigError.Field = %q, want %q", cfgErr.Field, tt.wantField)
			}
		})
	}
}

func TestDefaultConfigValues(t *testing.T) {
	c := DefaultConfig()
	if c.Algorithm != KMP {
		t.Errorf("Algorithm = %v, want kmp", c.Algorithm)
	}
	if c.Radix != 256 || c.Modulus != 1_000_000_007 {
		t.Errorf("Radix/Modulus = %d/%d, want 256/1000000007", c.Radix, c.Modulus)
	}
	if c.Trace != nil {
		t.Error("Trace should be nil by default")
	}
}

func TestOverlap(t *testing.T) {
	for _, alg := range Algorithms() {
		got, err := FindAllString(alg, "aaaa", "aa")
		if err != nil {
			t.Fatalf("%v: %v", alg, err)
		}
		if want := []int{0, 1, 2}; !slices.Equal(got, want) {
			t.Errorf("%v: FindAllString(aaaa, aa) = %v, want %v", alg, got, want)
		}
	}
}

func TestNoMatch(t *testing.T) {
	for _, alg := range Algorithms() {
		got, err := FindAllString(alg, "abcdef", "xyz")
		if err != nil {
			t.Fatalf("%v: %v", alg, err)
		}
		if len(got) != 0 {
			t.Errorf("%v: FindAllString(abcdef, xyz) = %v, want []", alg, got)
		}
	}
}

func TestPatternLongerThanText(t *testing.T) {
	for _, alg := range Algorithms() {
		got, err := FindAllString(alg, "ab", "abc")
		if err != nil || len(got) != 0 {
			t.Errorf("%v: got %v, %v; want empty, nil", alg, got, err)
		}
		got, err = FindAllString(alg, "", "a")
		if err != nil || len(got) != 0 {
			t.Errorf("%v: empty text: got %v, %v; want empty, nil", alg, got, err)
		}
	}
}

func TestEmptyPattern(t *testing.T) {
	for _, alg := range Algorithms() {
		if _, err := FindAllString(alg, "abc", ""); !errors.Is(err, ErrInvalidPattern) {
			t.Errorf("%v: error = %v, want ErrInvalidPattern", alg, err)
		}
		cfg := DefaultConfig()
		cfg.Algorithm = alg
		if _, err := Compile([]int{}, cfg, rabinkarp.Int[int]); !errors.Is(err, ErrInvalidPattern) {
			t.Errorf("%v: Compile error = %v, want ErrInvalidPattern", alg, err)
		}
	}
}

func TestRabinKarpRequiresEncoder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithm = RabinKarp
	_, err := Compile([]rune("abc"), cfg, nil)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "Encoder" {
		t.Errorf("Compile without encoder error = %v, want Encoder ConfigError", err)
	}

	// Other algorithms do not need one.
	cfg.Algorithm = Automaton
	if _, err := Compile([]rune("abc"), cfg, nil); err != nil {
		t.Errorf("Automaton Compile without encoder: %v", err)
	}
}

func TestInvalidAlphabet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithm = RabinKarp
	cfg.Radix = 10
	p, err := Compile([]byte("42"), cfg, rabinkarp.DigitByte)
	if err != nil {
		t.Fatal(err)
	}
	_, err = p.FindAll([]byte("1042-42"))
	if !errors.Is(err, ErrInvalidAlphabet) {
		t.Fatalf("FindAll error = %v, want ErrInvalidAlphabet", err)
	}
	var alphaErr *AlphabetError
	if !errors.As(err, &alphaErr) || alphaErr.Index != 4 {
		t.Errorf("AlphabetError = %v, want index 4", err)
	}
}

func randomBytes(rng *rand.Rand, n int, alphabet string) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return b
}

// TestEquivalence checks that the four algorithms agree on random inputs
// over small alphabets, where occurrences and overlaps are frequent.
func TestEquivalence(t *testing.T) {
	rng := rand.New(rand.NewPCG(2024, 1))
	for iter := 0; iter < 500; iter++ {
		alphabet := []string{"ab", "abc", "acgt"}[rng.IntN(3)]
		text := randomBytes(rng, rng.IntN(80), alphabet)
		pattern := randomBytes(rng, 1+rng.IntN(6), alphabet)

		want, err := FindAllIndex(Naive, text, pattern)
		if err != nil {
			t.Fatal(err)
		}
		for _, alg := range Algorithms()[1:] {
			got, err := FindAllIndex(alg, text, pattern)
			if err != nil {
				t.Fatalf("%v: %v", alg, err)
			}
			if !slices.Equal(got, want) {
				t.Fatalf("%v: text=%q pattern=%q: got %v, naive %v", alg, text, pattern, got, want)
			}
		}
	}
}

// TestPlantability plants the pattern at offset k and checks that k is found.
func TestPlantability(t *testing.T) {
	rng := rand.New(rand.NewPCG(99, 7))
	for iter := 0; iter < 300; iter++ {
		base := randomBytes(rng, rng.IntN(50), "xyz")
		pattern := randomBytes(rng, 1+rng.IntN(5), "xyz")
		k := rng.IntN(len(base) + 1)
		text := slices.Concat(base[:k], pattern, base[k:])

		for _, alg := range Algorithms() {
			got, err := FindAllIndex(alg, text, pattern)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Contains(got, k) {
				t.Fatalf("%v: planted %q at %d in %q, got %v", alg, pattern, k, text, got)
			}
		}
	}
}

// TestRabinKarpSmallModulus uses R=10, Q=7 so that spurious hits occur and
// checks the offsets still equal the naive ones.
func TestRabinKarpSmallModulus(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	cfg := Config{Algorithm: RabinKarp, Radix: 10, Modulus: 7}

	for iter := 0; iter < 200; iter++ {
		text := randomBytes(rng, rng.IntN(100), "0123456789")
		pattern := randomBytes(rng, 1+rng.IntN(3), "0123")

		want, _ := FindAllIndex(Naive, text, pattern)
		p, err := Compile(pattern, cfg, rabinkarp.DigitByte)
		if err != nil {
			t.Fatal(err)
		}
		got, err := p.FindAll(text)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(got, want) {
			t.Fatalf("text=%q pattern=%q: got %v, want %v", text, pattern, got, want)
		}
	}
}

// TestTracingDoesNotChangeResults compares runs with and without a sink.
func TestTracingDoesNotChangeResults(t *testing.T) {
	text := []byte("abracadabra abracadabra")
	pattern := []byte("abra")

	for _, alg := range Algorithms() {
		cfg := DefaultConfig()
		cfg.Algorithm = alg

		plain, err := MustCompile(pattern, cfg, rabinkarp.Byte).FindAll(text)
		if err != nil {
			t.Fatal(err)
		}

		rec := trace.NewRecorder()
		cfg.Trace = rec
		traced, err := MustCompile(pattern, cfg, rabinkarp.Byte).FindAll(text)
		if err != nil {
			t.Fatal(err)
		}

		if !slices.Equal(plain, traced) {
			t.Errorf("%v: traced %v, plain %v", alg, traced, plain)
		}
		if rec.Len() == 0 {
			t.Errorf("%v: no events recorded", alg)
		}
		matches := rec.Filter(trace.Match)
		if len(matches) != len(plain) {
			t.Errorf("%v: %d match events, %d offsets", alg, len(matches), len(plain))
		}
		for i, ev := range matches {
			if ev.Shift != plain[i] || ev.Matcher != alg.String() {
				t.Errorf("%v: match event %d = %+v, want shift %d", alg, i, ev, plain[i])
			}
		}
	}
}

func TestPatternHelpers(t *testing.T) {
	text := []rune("onionionspl onions")
	for _, alg := range Algorithms() {
		cfg := DefaultConfig()
		cfg.Algorithm = alg
		p := MustCompile([]rune("onions"), cfg, rabinkarp.Rune)

		if p.Algorithm() != alg || p.Len() != 6 {
			t.Errorf("%v: Algorithm/Len = %v/%d", alg, p.Algorithm(), p.Len())
		}
		if i, err := p.Index(text); err != nil || i != 3 {
			t.Errorf("%v: Index = %d, %v; want 3", alg, i, err)
		}
		if n, err := p.Count(text); err != nil || n != 2 {
			t.Errorf("%v: Count = %d, %v; want 2", alg, n, err)
		}
		if ok, err := p.Contains([]rune("onion")); err != nil || ok {
			t.Errorf("%v: Contains(onion) = %v, %v; want false", alg, ok, err)
		}
		if i, _ := p.Index([]rune("xyz")); i != -1 {
			t.Errorf("%v: Index(xyz) = %d, want -1", alg, i)
		}
	}
}

func TestAllIterator(t *testing.T) {
	p := MustCompile([]byte("a"), DefaultConfig(), nil)

	var got []int
	for off, err := range p.All([]byte("banana")) {
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, off)
		if len(got) == 2 {
			break
		}
	}
	if want := []int{1, 3}; !slices.Equal(got, want) {
		t.Errorf("All with break = %v, want %v", got, want)
	}

	cfg := Config{Algorithm: RabinKarp, Radix: 10, Modulus: 97}
	rk := MustCompile([]byte("1"), cfg, rabinkarp.DigitByte)
	var lastErr error
	var offs []int
	for off, err := range rk.All([]byte("121x1")) {
		if err != nil {
			lastErr = err
			continue
		}
		offs = append(offs, off)
	}
	if !errors.Is(lastErr, ErrInvalidAlphabet) {
		t.Errorf("All error = %v, want ErrInvalidAlphabet", lastErr)
	}
	if want := []int{0, 2}; !slices.Equal(offs, want) {
		t.Errorf("offsets before error = %v, want %v", offs, want)
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile(empty) did not panic")
		}
	}()
	MustCompile([]byte{}, DefaultConfig(), nil)
}

func TestCountString(t *testing.T) {
	for _, alg := range Algorithms() {
		n, err := CountString(alg, "abababa", "aba")
		if err != nil || n != 3 {
			t.Errorf("%v: CountString = %d, %v; want 3", alg, n, err)
		}
	}
	if _, err := CountString(KMP, "abc", ""); !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("CountString(empty) error = %v", err)
	}
}

func TestMatchGeneric(t *testing.T) {
	type token struct {
		kind  string
		value int
	}
	text := []token{{"num", 1}, {"op", '+'}, {"num", 2}, {"op", '+'}, {"num", 2}}
	pattern := []token{{"op", '+'}, {"num", 2}}

	for _, alg := range []Algorithm{Naive, Automaton, KMP} {
		got, err := Match(alg, text, pattern, nil)
		if err != nil {
			t.Fatal(err)
		}
		if want := []int{1, 3}; !slices.Equal(got, want) {
			t.Errorf("%v: Match = %v, want %v", alg, got, want)
		}
	}

	codes := map[token]uint64{text[0]: 1, text[1]: 2, text[2]: 3}
	got, err := Match(RabinKarp, text, pattern, rabinkarp.Table(codes))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 3}; !slices.Equal(got, want) {
		t.Errorf("rabin-karp: Match = %v, want %v", got, want)
	}
}

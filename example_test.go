package strmatch_test

import (
	"fmt"

	"github.com/coregx/strmatch"
	"github.com/coregx/strmatch/kmp"
	"github.com/coregx/strmatch/rabinkarp"
	"github.com/coregx/strmatch/trace"
)

// ExampleFindAllString demonstrates overlapping matches.
func ExampleFindAllString() {
	for _, alg := range strmatch.Algorithms() {
		offsets, err := strmatch.FindAllString(alg, "aaaa", "aa")
		if err != nil {
			panic(err)
		}
		fmt.Println(alg, offsets)
	}
	// Output:
	// naive [0 1 2]
	// automaton [0 1 2]
	// kmp [0 1 2]
	// rabin-karp [0 1 2]
}

// ExampleCompile demonstrates compiling a pattern once and reusing it.
func ExampleCompile() {
	cfg := strmatch.DefaultConfig()
	cfg.Algorithm = strmatch.Automaton

	p, err := strmatch.Compile([]rune("onions"), cfg, nil)
	if err != nil {
		panic(err)
	}
	offsets, _ := p.FindAll([]rune("onionionspl"))
	fmt.Println(offsets)
	// Output: [3]
}

// ExamplePattern_All demonstrates stopping a scan early.
func ExamplePattern_All() {
	p := strmatch.MustCompile([]byte("a"), strmatch.DefaultConfig(), nil)
	for off, err := range p.All([]byte("banana")) {
		if err != nil {
			panic(err)
		}
		fmt.Println("first a at", off)
		break
	}
	// Output: first a at 1
}

// ExampleConfig_rabinKarp demonstrates spurious hits with a tiny modulus.
func ExampleConfig_rabinKarp() {
	rec := trace.NewRecorder()
	cfg := strmatch.Config{Algorithm: strmatch.RabinKarp, Radix: 10, Modulus: 7, Trace: rec}

	p, err := strmatch.Compile([]byte("26535"), cfg, rabinkarp.DigitByte)
	if err != nil {
		panic(err)
	}
	offsets, _ := p.FindAll([]byte("3141592653589793"))
	fmt.Println("offsets:", offsets)
	for _, ev := range rec.Filter(trace.SpuriousHit) {
		fmt.Println("spurious hit at shift", ev.Shift)
	}
	// Output:
	// offsets: [6]
	// spurious hit at shift 1
	// spurious hit at shift 2
}

// ExampleMatch demonstrates matching non-byte symbols.
func ExampleMatch() {
	text := []string{"GET", "/", "HTTP", "GET", "/", "GET"}
	offsets, _ := strmatch.Match(strmatch.KMP, text, []string{"GET", "/"}, nil)
	fmt.Println(offsets)
	// Output: [0 3]
}

// Example_prefixTable shows the failure function of a classic pattern.
func Example_prefixTable() {
	table, _ := kmp.ComputePrefixTable([]byte("ababaca"), nil)
	fmt.Println(table)
	// Output: [0 0 1 2 3 0 1]
}

// Package wildkmp provides substring search for patterns containing a
// single-character wildcard.
//
// Four engines are available, selected by Algorithm:
//   - Naive: brute-force comparison at every offset
//   - Concat: failure function over pattern+separator+text
//   - Optimized: direct scan driven by the refined failure function
//   - Hash: rolling-hash window comparison, exact-match only
//
// Basic usage:
//
//	pos, err := wildkmp.OptimizedMatch("abcabcabc", "a?c")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pos) // 6
//
// Every engine reports the last occurrence through Last and the first one
// through First; All yields every occurrence lazily:
//
//	m, _ := wildkmp.New(wildkmp.Optimized, wildkmp.DefaultConfig())
//	seq, _ := m.All([]byte("aaaa"), []byte("a?"))
//	for pos := range seq {
//	    fmt.Println(pos) // 0, 1, 2
//	}
//
// The wildcard is '?' and the separator '#' unless configured otherwise.
// Patterns must be non-empty and no longer than the text; violations are
// reported as ErrInvalidInput before any scanning happens.
//
// Limitations:
//   - Hash hashes the wildcard as an ordinary byte and only finds exact
//     occurrences (SupportsWildcard reports false).
//   - Wildcard equality is not transitive, so the failure-function engines
//     (Concat, Optimized) may miss occurrences of wildcard patterns. They
//     never report a false one. For wildcard-free patterns all three
//     position-based engines agree exactly.
//   - Concat rejects a text containing the wildcard with
//     ErrAlphabetViolation. Naive and Optimized accept it and report every
//     occurrence; Optimized then shifts one offset at a time.
package wildkmp

import (
	"fmt"
	"strings"

	"github.com/coregx/wildkmp/alphabet"
	"github.com/coregx/wildkmp/border"
	"github.com/coregx/wildkmp/match"
	"github.com/coregx/wildkmp/rolling"
)

// NoMatch is the position returned when the pattern does not occur.
const NoMatch = match.NoMatch

// Matcher is the interface shared by all engines.
type Matcher = match.Matcher

// Errors reported by the engines. Test with errors.Is.
var (
	ErrInvalidInput      = match.ErrInvalidInput
	ErrAlphabetViolation = match.ErrAlphabetViolation
	ErrCapacityExceeded  = match.ErrCapacityExceeded
)

// Algorithm selects a search engine.
type Algorithm int

const (
	// Naive compares the pattern at every text offset.
	Naive Algorithm = iota

	// Concat runs the failure function over pattern+separator+text.
	Concat

	// Optimized scans the text with the refined failure function.
	Optimized

	// Hash compares rolling hashes; exact-match only.
	Hash
)

// Algorithms returns every algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Naive, Concat, Optimized, Hash}
}

// String returns the engine name.
func (a Algorithm) String() string {
	switch a {
	case Naive:
		return "naive"
	case Concat:
		return "concat"
	case Optimized:
		return "optimized"
	case Hash:
		return "hash"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm returns the algorithm named s. The report names used by
// the benchmark tables ("stupid", "kmp", "refined_kmp") are accepted too.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "naive", "stupid":
		return Naive, nil
	case "concat", "kmp":
		return Concat, nil
	case "optimized", "refined_kmp":
		return Optimized, nil
	case "hash":
		return Hash, nil
	}
	return 0, fmt.Errorf("wildkmp: unknown algorithm %q", s)
}

// New creates the engine for alg with the given configuration.
//
// Example:
//
//	config := wildkmp.DefaultConfig()
//	config.Wildcard = '*'
//	m, err := wildkmp.New(wildkmp.Naive, config)
func New(alg Algorithm, config Config) (Matcher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	opts := config.options()
	switch alg {
	case Naive:
		return match.NewNaive(opts), nil
	case Concat:
		return match.NewConcat(opts)
	case Optimized:
		return match.NewOptimized(opts), nil
	case Hash:
		return match.NewHash(opts), nil
	}
	return nil, fmt.Errorf("wildkmp: unknown algorithm %v", alg)
}

// MustNew is like New but panics on error.
func MustNew(alg Algorithm, config Config) Matcher {
	m, err := New(alg, config)
	if err != nil {
		panic("wildkmp: New(" + alg.String() + "): " + err.Error())
	}
	return m
}

var (
	defaultNaive     = MustNew(Naive, DefaultConfig())
	defaultConcat    = MustNew(Concat, DefaultConfig())
	defaultOptimized = MustNew(Optimized, DefaultConfig())
	defaultHash      = MustNew(Hash, DefaultConfig())
)

// NaiveMatch returns the last occurrence of pattern in text found by the
// Naive engine with the default configuration, or NoMatch.
func NaiveMatch(text, pattern string) (int, error) {
	return defaultNaive.Last([]byte(text), []byte(pattern))
}

// ConcatMatch returns the last occurrence of pattern in text found by the
// Concat engine with the default configuration, or NoMatch.
func ConcatMatch(text, pattern string) (int, error) {
	return defaultConcat.Last([]byte(text), []byte(pattern))
}

// OptimizedMatch returns the last occurrence of pattern in text found by
// the Optimized engine with the default configuration, or NoMatch.
func OptimizedMatch(text, pattern string) (int, error) {
	return defaultOptimized.Last([]byte(text), []byte(pattern))
}

// HashMatch returns the last window of text whose hash equals the hash of
// pattern, or NoMatch. The wildcard is not interpreted.
func HashMatch(text, pattern string) (int, error) {
	return defaultHash.Last([]byte(text), []byte(pattern))
}

// BuildPrefixFunction returns the failure function of pattern under the
// default wildcard.
func BuildPrefixFunction(pattern string) []int {
	return border.Prefix([]byte(pattern), alphabet.DefaultWildcard)
}

// BuildRefinedPrefixFunction returns the refined failure function of
// pattern under the default wildcard.
func BuildRefinedPrefixFunction(pattern string) []int {
	return border.Refined([]byte(pattern), alphabet.DefaultWildcard)
}

// BuildRollingHash returns the prefix hash array of seq, of length
// len(seq)+1.
func BuildRollingHash(seq string) rolling.Prefix {
	return rolling.Build([]byte(seq))
}

// QueryHash returns the hash of the range [i, j) of the sequence h was
// built from, using the shared power table.
func QueryHash(h rolling.Prefix, i, j int) (int64, error) {
	return rolling.Query(h, i, j)
}

// Package match implements single-pattern search engines for patterns that
// may contain a wildcard symbol.
//
// Four engines share the Matcher interface:
//   - Naive: compares the pattern at every text offset
//   - Concat: runs the failure function over pattern+separator+text
//   - Optimized: scans the text with the refined failure function
//   - Hash: compares rolling hashes of the pattern and each text window
//
// The first three treat the wildcard as matching any single character, on
// either side of a comparison. Concat accepts it in the pattern only and
// rejects a text holding it; Naive and Optimized report every occurrence in
// such a text. Hash is exact-match only: the wildcard is
// hashed like any other byte, so it reports a window only when it is
// byte-for-byte equal to the pattern (modulo hash collisions).
//
// Every engine reports occurrences lazily through All, in ascending order.
// Last reports the final occurrence, First the earliest one. Preconditions
// are checked before any scanning starts, so a returned sequence never
// fails.
//
// Example:
//
//	m := match.NewOptimized(match.DefaultOptions())
//	pos, err := m.Last([]byte("abcabcabc"), []byte("a?c"))
//	// pos == 6, err == nil
package match

import (
	"iter"

	"github.com/coregx/wildkmp/alphabet"
	"github.com/coregx/wildkmp/rolling"
)

// NoMatch is returned by First and Last when the pattern does not occur.
const NoMatch = -1

// Matcher is a single-pattern search engine.
//
// Implementations are safe for concurrent use: all scratch data is
// allocated per call.
type Matcher interface {
	// Name returns a short identifier of the engine.
	Name() string

	// SupportsWildcard reports whether the wildcard symbol matches any
	// character. It is false for exact-match engines.
	SupportsWildcard() bool

	// All returns the start offsets of every occurrence of pattern in text,
	// in ascending order. The sequence may be ranged over any number of
	// times and yields the same offsets each time.
	All(text, pattern []byte) (iter.Seq[int], error)

	// First returns the earliest occurrence, or NoMatch.
	First(text, pattern []byte) (int, error)

	// Last returns the final occurrence, or NoMatch. The whole text is
	// scanned.
	Last(text, pattern []byte) (int, error)
}

// Options configures the engines.
type Options struct {
	// Alphabet holds the wildcard and separator symbols.
	Alphabet alphabet.Alphabet

	// Powers is the power table used by Hash. Nil selects rolling.Default.
	Powers *rolling.PowerTable

	// StrictHash makes Hash reject patterns containing the wildcard with
	// ErrAlphabetViolation instead of hashing it as an ordinary byte.
	StrictHash bool

	// CountComparisons enables the Comparisons counter of Stats.
	CountComparisons bool
}

// DefaultOptions returns options with the default alphabet and the shared
// power table.
func DefaultOptions() Options {
	return Options{Alphabet: alphabet.Default()}
}

// first returns the earliest offset of seq, stopping the scan there.
func first(seq iter.Seq[int], err error) (int, error) {
	if err != nil {
		return NoMatch, err
	}
	for pos := range seq {
		return pos, nil
	}
	return NoMatch, nil
}

// last drains seq and returns its final offset.
func last(seq iter.Seq[int], err error) (int, error) {
	if err != nil {
		return NoMatch, err
	}
	pos := NoMatch
	for p := range seq {
		pos = p
	}
	return pos, nil
}

// Collect returns every occurrence of pattern in text reported by m.
func Collect(m Matcher, text, pattern []byte) ([]int, error) {
	seq, err := m.All(text, pattern)
	if err != nil {
		return nil, err
	}
	var out []int
	for pos := range seq {
		out = append(out, pos)
	}
	return out, nil
}

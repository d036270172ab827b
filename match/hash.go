package match

import (
	"iter"

	"github.com/coregx/wildkmp/alphabet"
	"github.com/coregx/wildkmp/rolling"
)

// Hash compares the rolling hash of the pattern with the hash of every
// text window of the same length.
//
// Hash is exact-match only. The wildcard is hashed as an ordinary byte, so
// a pattern containing it is reported only where the text holds the same
// byte; true wildcard occurrences are generally missed. Set
// Options.StrictHash to reject such patterns instead. Equal hashes are not
// verified, so a collision reports a false occurrence.
type Hash struct {
	alpha  alphabet.Alphabet
	powers *rolling.PowerTable
	strict bool
	stats  counters
}

// NewHash creates a Hash engine.
func NewHash(opts Options) *Hash {
	powers := opts.Powers
	if powers == nil {
		powers = rolling.Default()
	}
	return &Hash{
		alpha:  opts.Alphabet,
		powers: powers,
		strict: opts.StrictHash,
		stats:  counters{count: opts.CountComparisons},
	}
}

// Name returns "hash".
func (m *Hash) Name() string { return "hash" }

// SupportsWildcard returns false.
func (m *Hash) SupportsWildcard() bool { return false }

// All implements Matcher.
func (m *Hash) All(text, pattern []byte) (iter.Seq[int], error) {
	if err := checkInput(m.Name(), text, pattern); err != nil {
		return nil, err
	}
	if m.strict {
		if i := m.alpha.IndexWildcard(pattern); i >= 0 {
			return nil, &alphabet.ViolationError{Symbol: m.alpha.Wildcard, Where: "pattern", Offset: i}
		}
	}
	n := len(pattern)
	if n > m.powers.Capacity() {
		return nil, &rolling.RangeError{I: 0, J: n, Len: len(text), Capacity: m.powers.Capacity()}
	}
	pow, err := m.powers.Pow(n)
	if err != nil {
		return nil, err
	}
	return func(yield func(int) bool) {
		var cmp int
		defer m.stats.record(&cmp)

		h := rolling.Build(text)
		want := rolling.Hash(pattern)
		for i := 0; i+n <= len(text); i++ {
			got := rolling.Window(h, i, i+n, pow)
			cmp++
			if got == want && !yield(i) {
				return
			}
		}
	}, nil
}

// First implements Matcher.
func (m *Hash) First(text, pattern []byte) (int, error) {
	return first(m.All(text, pattern))
}

// Last implements Matcher.
func (m *Hash) Last(text, pattern []byte) (int, error) {
	return last(m.All(text, pattern))
}

// Stats returns execution counters.
func (m *Hash) Stats() Stats { return m.stats.snapshot() }

// ResetStats resets execution counters to zero.
func (m *Hash) ResetStats() { m.stats.reset() }

package match

import (
	"iter"

	"github.com/coregx/wildkmp/alphabet"
	"github.com/coregx/wildkmp/prefilter"
)

// Naive compares the pattern against every text offset. It runs in
// O(len(text)*len(pattern)) and serves as the reference engine.
//
// When the pattern starts with a literal, offsets rejected by the lead-byte
// prefilter are skipped without comparisons.
type Naive struct {
	alpha alphabet.Alphabet
	stats counters
}

// NewNaive creates a Naive engine.
func NewNaive(opts Options) *Naive {
	return &Naive{
		alpha: opts.Alphabet,
		stats: counters{count: opts.CountComparisons},
	}
}

// Name returns "naive".
func (m *Naive) Name() string { return "naive" }

// SupportsWildcard returns true.
func (m *Naive) SupportsWildcard() bool { return true }

// All implements Matcher.
func (m *Naive) All(text, pattern []byte) (iter.Seq[int], error) {
	if err := checkInput(m.Name(), text, pattern); err != nil {
		return nil, err
	}
	return func(yield func(int) bool) {
		var cmp int
		defer m.stats.record(&cmp)

		pf := prefilter.ForPattern(pattern, m.alpha.Wildcard)
		end := len(text) - len(pattern)
		for i := 0; i <= end; i++ {
			if pf != nil {
				if i = pf.Find(text[:end+1], i); i < 0 {
					return
				}
			}
			j := 0
			for j < len(pattern) {
				cmp++
				if !m.alpha.Equal(pattern[j], text[i+j]) {
					break
				}
				j++
			}
			if j == len(pattern) && !yield(i) {
				return
			}
		}
	}, nil
}

// First implements Matcher.
func (m *Naive) First(text, pattern []byte) (int, error) {
	return first(m.All(text, pattern))
}

// Last implements Matcher.
func (m *Naive) Last(text, pattern []byte) (int, error) {
	return last(m.All(text, pattern))
}

// Stats returns execution counters.
func (m *Naive) Stats() Stats { return m.stats.snapshot() }

// ResetStats resets execution counters to zero.
func (m *Naive) ResetStats() { m.stats.reset() }

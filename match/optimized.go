package match

import (
	"iter"

	"github.com/coregx/wildkmp/alphabet"
	"github.com/coregx/wildkmp/border"
	"github.com/coregx/wildkmp/prefilter"
)

// Optimized scans the text directly and uses the refined failure function
// to decide how far to shift after a mismatch.
//
// For patterns without wildcards the prefix already known to match after a
// shift is not compared again, which bounds the number of character
// comparisons by 2*len(text) regardless of the pattern. A pattern wildcard
// makes the border relation non-transitive, so such patterns resume from
// the first pattern position after every shift.
//
// Borders say nothing about a text that holds the wildcard. Such a text is
// scanned one offset at a time, like Naive, and every occurrence is
// reported.
type Optimized struct {
	alpha alphabet.Alphabet
	stats counters
}

// NewOptimized creates an Optimized engine.
func NewOptimized(opts Options) *Optimized {
	return &Optimized{
		alpha: opts.Alphabet,
		stats: counters{count: opts.CountComparisons},
	}
}

// Name returns "optimized".
func (m *Optimized) Name() string { return "optimized" }

// SupportsWildcard returns true.
func (m *Optimized) SupportsWildcard() bool { return true }

// All implements Matcher.
func (m *Optimized) All(text, pattern []byte) (iter.Seq[int], error) {
	if err := checkInput(m.Name(), text, pattern); err != nil {
		return nil, err
	}
	return func(yield func(int) bool) {
		var cmp int
		defer m.stats.record(&cmp)

		tab := border.Compute(pattern, m.alpha.Wildcard)
		pf := prefilter.ForPattern(pattern, m.alpha.Wildcard)
		exact := m.alpha.IndexWildcard(text) < 0
		resume := exact && m.alpha.IndexWildcard(pattern) < 0
		n := len(pattern)
		end := len(text) - n

		i, j := 0, 0
		for i <= end {
			if j == 0 && pf != nil {
				if i = pf.Find(text[:end+1], i); i < 0 {
					return
				}
			}
			for j < n {
				cmp++
				if !m.alpha.Equal(pattern[j], text[i+j]) {
					break
				}
				j++
			}

			var b int
			switch {
			case j == n:
				if !yield(i) {
					return
				}
				// Nothing mismatched, so only the plain border is safe.
				b = tab.Prefix[n-1]
			case j == 0:
				i++
				continue
			default:
				b = tab.Refined[j-1]
			}

			if !exact {
				i++
				j = 0
				continue
			}
			i += j - b
			if resume {
				j = b
			} else {
				j = 0
			}
		}
	}, nil
}

// First implements Matcher.
func (m *Optimized) First(text, pattern []byte) (int, error) {
	return first(m.All(text, pattern))
}

// Last implements Matcher.
func (m *Optimized) Last(text, pattern []byte) (int, error) {
	return last(m.All(text, pattern))
}

// Stats returns execution counters.
func (m *Optimized) Stats() Stats { return m.stats.snapshot() }

// ResetStats resets execution counters to zero.
func (m *Optimized) ResetStats() { m.stats.reset() }

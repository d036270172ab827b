package match

import (
	"iter"

	"github.com/coregx/wildkmp/alphabet"
	"github.com/coregx/wildkmp/border"
)

// Concat runs the failure function over pattern+separator+text in one
// linear pass. Every position of the text part whose border equals the
// pattern length ends an occurrence.
//
// Wildcard equality is not transitive, so for a pattern containing the
// wildcard the failure function can reach the pattern length where the
// pattern does not match; such candidates are verified against the text
// before they are reported.
//
// The separator must not occur in the text or the pattern, and the text
// must not contain the wildcard, which would compare equal to the
// separator. Both are rejected with ErrAlphabetViolation.
type Concat struct {
	alpha        alphabet.Alphabet
	textGuard    *alphabet.Scanner
	patternGuard *alphabet.Scanner
	stats        counters
}

// NewConcat creates a Concat engine. It fails if the alphabet is invalid.
func NewConcat(opts Options) (*Concat, error) {
	if err := opts.Alphabet.Validate(); err != nil {
		return nil, err
	}
	textGuard, err := alphabet.NewScanner(opts.Alphabet.Separator, opts.Alphabet.Wildcard)
	if err != nil {
		return nil, err
	}
	patternGuard, err := alphabet.NewScanner(opts.Alphabet.Separator)
	if err != nil {
		return nil, err
	}
	return &Concat{
		alpha:        opts.Alphabet,
		textGuard:    textGuard,
		patternGuard: patternGuard,
		stats:        counters{count: opts.CountComparisons},
	}, nil
}

// Name returns "concat".
func (m *Concat) Name() string { return "concat" }

// SupportsWildcard returns true. Wildcards are accepted in the pattern only.
func (m *Concat) SupportsWildcard() bool { return true }

// All implements Matcher.
func (m *Concat) All(text, pattern []byte) (iter.Seq[int], error) {
	if err := checkInput(m.Name(), text, pattern); err != nil {
		return nil, err
	}
	if err := m.patternGuard.Check(pattern, "pattern"); err != nil {
		return nil, err
	}
	if err := m.textGuard.Check(text, "text"); err != nil {
		return nil, err
	}
	return func(yield func(int) bool) {
		var cmp int
		defer m.stats.record(&cmp)

		n := len(pattern)
		combined := make([]byte, 0, n+1+len(text))
		combined = append(combined, pattern...)
		combined = append(combined, m.alpha.Separator)
		combined = append(combined, text...)

		pr := border.Prefix(combined, m.alpha.Wildcard)
		verify := m.alpha.IndexWildcard(pattern) >= 0
		// A border of length n ending before 2n would straddle the
		// separator through a pattern wildcard.
		for k := 2 * n; k < len(pr); k++ {
			if pr[k] != n {
				continue
			}
			pos := k - 2*n
			if verify && !m.matchesAt(text, pattern, pos, &cmp) {
				continue
			}
			if !yield(pos) {
				return
			}
		}
	}, nil
}

// matchesAt compares pattern with the text window at pos.
func (m *Concat) matchesAt(text, pattern []byte, pos int, cmp *int) bool {
	for j, c := range pattern {
		*cmp++
		if !m.alpha.Equal(c, text[pos+j]) {
			return false
		}
	}
	return true
}

// First implements Matcher.
func (m *Concat) First(text, pattern []byte) (int, error) {
	return first(m.All(text, pattern))
}

// Last implements Matcher.
func (m *Concat) Last(text, pattern []byte) (int, error) {
	return last(m.All(text, pattern))
}

// Stats returns execution counters.
func (m *Concat) Stats() Stats { return m.stats.snapshot() }

// ResetStats resets execution counters to zero.
func (m *Concat) ResetStats() { m.stats.reset() }

// Package prefilter finds candidate start positions for a pattern before
// the full comparison runs.
//
// An offset can only start an occurrence if its text symbol matches the
// first pattern symbol. When that symbol is a literal, the candidates are
// the offsets holding the literal or the wildcard, located with
// simd.Memchr2. A pattern led by the wildcard has no prefilter.
//
// Example:
//
//	pf := prefilter.ForPattern([]byte("b?a"), '?')
//	pos := pf.Find([]byte("aaab?ab"), 0)
//	// pos == 3
package prefilter

import "github.com/coregx/wildkmp/simd"

// Prefilter reports candidate start positions.
type Prefilter interface {
	// Find returns the first candidate at or after start, or -1.
	Find(haystack []byte, start int) int
}

// ForPattern returns the prefilter for pattern, or nil if every offset is
// a candidate.
func ForPattern(pattern []byte, wildcard byte) Prefilter {
	if len(pattern) == 0 || pattern[0] == wildcard {
		return nil
	}
	return &LeadBytePrefilter{lead: pattern[0], wildcard: wildcard}
}

// LeadBytePrefilter finds offsets holding the first pattern symbol or the
// wildcard.
type LeadBytePrefilter struct {
	lead     byte
	wildcard byte
}

// Find implements Prefilter.
func (p *LeadBytePrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	if i := simd.Memchr2(haystack[start:], p.lead, p.wildcard); i >= 0 {
		return start + i
	}
	return -1
}

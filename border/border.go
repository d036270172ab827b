// Package border computes failure functions (border arrays) of patterns that
// may contain a wildcard symbol.
//
// Two symbols are considered equal when they are identical or when either
// of them is the wildcard. The relation is symmetric but not transitive, so
// the arrays computed here are the classic recurrences evaluated under that
// relation rather than exact longest borders.
package border

// Prefix returns the failure function of pattern: pr[i] is the length of the
// longest proper border of pattern[:i+1] found by the classic recurrence.
//
// len(pr) == len(pattern) and pr[0] == 0 for every non-empty pattern. An
// empty pattern yields an empty slice.
//
// Example:
//
//	border.Prefix([]byte("abab"), '?')  // [0 0 1 2]
//	border.Prefix([]byte("a?"), '?')    // [0 1]
func Prefix(pattern []byte, wildcard byte) []int {
	pr := make([]int, len(pattern))
	for i := 1; i < len(pattern); i++ {
		j := pr[i-1]
		for j > 0 && !same(pattern[i], pattern[j], wildcard) {
			j = pr[j-1]
		}
		if same(pattern[i], pattern[j], wildcard) {
			j++
		}
		pr[i] = j
	}
	return pr
}

// Refined returns the compressed failure function of pattern.
//
// prs[i] is the border used after a mismatch on pattern[i+1]. When the
// symbol that follows the border pr[i] is the same literal as pattern[i+1],
// resuming at pr[i] would fail on the very symbol that just mismatched, so
// prs[i] takes the refined value of the next shorter border instead.
//
// prs[0] == 0 and the last entry equals the plain border, since nothing
// follows it.
func Refined(pattern []byte, wildcard byte) []int {
	return refine(pattern, Prefix(pattern, wildcard), wildcard)
}

// Table bundles both arrays of a pattern.
type Table struct {
	// Prefix is the plain failure function, used after a full match.
	Prefix []int

	// Refined is the compressed failure function, used after a mismatch.
	Refined []int
}

// Compute builds both the plain and the refined failure function with a
// single pass of the border recurrence.
func Compute(pattern []byte, wildcard byte) Table {
	pr := Prefix(pattern, wildcard)
	return Table{
		Prefix:  pr,
		Refined: refine(pattern, pr, wildcard),
	}
}

func refine(pattern []byte, pr []int, wildcard byte) []int {
	m := len(pattern)
	prs := make([]int, m)
	if m == 0 {
		return prs
	}
	for i := 1; i < m-1; i++ {
		b := pr[i]
		next := pattern[i+1]
		// A wildcard after the border still matches whatever mismatched, so
		// that border stays a candidate.
		if pattern[b] == wildcard || (next != wildcard && pattern[b] != next) {
			prs[i] = b
			continue
		}
		if b > 0 {
			prs[i] = prs[b-1]
		}
	}
	prs[m-1] = pr[m-1]
	return prs
}

//go:inline
func same(a, b, wildcard byte) bool {
	return a == b || a == wildcard || b == wildcard
}

// Package bench measures the search engines on synthetic corpora and writes
// the timings as delimited reports.
package bench

import (
	"fmt"
	"math/rand/v2"
)

// CorpusSpec describes a random text.
type CorpusSpec struct {
	// Label names the size class ("small", "big").
	Label string

	// Size is the text length.
	Size int

	// Letters is the alphabet size; symbols are 'a', 'b', ...
	Letters int
}

// Name returns the corpus name used in report file names, e.g. "small2".
func (s CorpusSpec) Name() string {
	return fmt.Sprintf("%s%d", s.Label, s.Letters)
}

// Corpus is a generated text.
type Corpus struct {
	Spec CorpusSpec
	Text []byte
}

// Generate fills a corpus with symbols drawn uniformly from the first
// spec.Letters lowercase letters.
func Generate(rng *rand.Rand, spec CorpusSpec) Corpus {
	text := make([]byte, spec.Size)
	for i := range text {
		text[i] = byte('a' + rng.IntN(spec.Letters))
	}
	return Corpus{Spec: spec, Text: text}
}

// PatternSpec controls pattern extraction from a corpus.
type PatternSpec struct {
	MinLen, MaxLen, Step int

	// Wildcards is the number of random positions overwritten with the
	// wildcard in each pattern. Positions may repeat.
	Wildcards int

	Wildcard byte
}

// Patterns slices patterns of lengths MinLen, MinLen+Step, ..., MaxLen from
// one random offset of the corpus, so that every pattern occurs in it
// before wildcards are placed.
func Patterns(rng *rand.Rand, c Corpus, spec PatternSpec) [][]byte {
	offset := rng.IntN(len(c.Text) - spec.MaxLen)
	var out [][]byte
	for q := spec.MinLen; q <= spec.MaxLen; q += spec.Step {
		p := append([]byte(nil), c.Text[offset:offset+q]...)
		for k := 0; k < spec.Wildcards; k++ {
			p[rng.IntN(len(p))] = spec.Wildcard
		}
		out = append(out, p)
	}
	return out
}

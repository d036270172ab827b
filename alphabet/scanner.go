package alphabet

import (
	"github.com/coregx/ahocorasick"
)

// Scanner finds the first occurrence of any symbol from a fixed reserved
// set. It is built once and is safe for concurrent use.
type Scanner struct {
	symbols []byte
	ac      *ahocorasick.Automaton
}

// NewScanner builds a Scanner over the given reserved symbols. Duplicates
// are ignored. A Scanner without symbols never reports anything.
func NewScanner(symbols ...byte) (*Scanner, error) {
	s := &Scanner{}
	var seen [256]bool
	for _, c := range symbols {
		if seen[c] {
			continue
		}
		seen[c] = true
		s.symbols = append(s.symbols, c)
	}
	if len(s.symbols) == 0 {
		return s, nil
	}

	builder := ahocorasick.NewBuilder()
	for _, c := range s.symbols {
		builder.AddPattern([]byte{c})
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	s.ac = auto
	return s, nil
}

// Symbols returns the reserved set in insertion order.
func (s *Scanner) Symbols() []byte {
	return append([]byte(nil), s.symbols...)
}

// Index returns the offset of the first reserved symbol in data, or -1.
func (s *Scanner) Index(data []byte) int {
	if s.ac == nil || len(data) == 0 {
		return -1
	}
	m := s.ac.Find(data, 0)
	if m == nil {
		return -1
	}
	return m.Start
}

// Check returns a *ViolationError for the first reserved symbol in data,
// naming the input by where.
func (s *Scanner) Check(data []byte, where string) error {
	i := s.Index(data)
	if i < 0 {
		return nil
	}
	return &ViolationError{Symbol: data[i], Where: where, Offset: i}
}

// Package alphabet describes the symbols with special meaning to the
// matchers: a wildcard that matches any single character and a separator
// reserved for joining a pattern and a text.
package alphabet

import (
	"errors"
	"fmt"

	"github.com/coregx/wildkmp/simd"
)

// Default symbols.
const (
	DefaultWildcard  byte = '?'
	DefaultSeparator byte = '#'
)

// ErrViolation indicates a reserved symbol found where it is not permitted.
var ErrViolation = errors.New("alphabet violation")

// ErrInvalid indicates an alphabet whose wildcard and separator coincide.
var ErrInvalid = errors.New("invalid alphabet")

// Alphabet holds the reserved symbols.
type Alphabet struct {
	// Wildcard matches any single character, on either side of a comparison.
	Wildcard byte

	// Separator joins pattern and text. It must never occur in either.
	Separator byte
}

// Default returns the alphabet with '?' as wildcard and '#' as separator.
func Default() Alphabet {
	return Alphabet{Wildcard: DefaultWildcard, Separator: DefaultSeparator}
}

// Validate reports ErrInvalid if the separator is the wildcard.
func (a Alphabet) Validate() error {
	if a.Wildcard == a.Separator {
		return fmt.Errorf("%w: wildcard and separator are both %q", ErrInvalid, a.Wildcard)
	}
	return nil
}

// Equal reports whether x and y match: they are the same symbol or either
// one is the wildcard.
//
//go:inline
func (a Alphabet) Equal(x, y byte) bool {
	return x == y || x == a.Wildcard || y == a.Wildcard
}

// IndexWildcard returns the offset of the first wildcard in s, or -1.
func (a Alphabet) IndexWildcard(s []byte) int {
	return simd.Memchr(s, a.Wildcard)
}

// ViolationError reports a reserved Symbol found at Offset of the input
// named by Where ("text" or "pattern").
type ViolationError struct {
	Symbol byte
	Where  string
	Offset int
}

// Error implements the error interface
func (e *ViolationError) Error() string {
	return fmt.Sprintf("alphabet violation: reserved symbol %q in %s at offset %d", e.Symbol, e.Where, e.Offset)
}

// Unwrap returns ErrViolation
func (e *ViolationError) Unwrap() error {
	return ErrViolation
}

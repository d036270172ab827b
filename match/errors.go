package match

import (
	"errors"
	"fmt"

	"github.com/coregx/wildkmp/alphabet"
	"github.com/coregx/wildkmp/rolling"
)

var (
	// ErrInvalidInput indicates an empty pattern or a pattern longer than
	// the text.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlphabetViolation indicates a reserved symbol where it is not
	// permitted. Errors of this kind are *alphabet.ViolationError.
	ErrAlphabetViolation = alphabet.ErrViolation

	// ErrCapacityExceeded indicates a pattern longer than the power table
	// used by Hash. Errors of this kind are *rolling.RangeError.
	ErrCapacityExceeded = rolling.ErrCapacityExceeded
)

// InputError reports text and pattern lengths rejected by engine Op.
type InputError struct {
	Op         string
	TextLen    int
	PatternLen int
}

// Error implements the error interface
func (e *InputError) Error() string {
	if e.PatternLen == 0 {
		return fmt.Sprintf("%s: invalid input: empty pattern", e.Op)
	}
	return fmt.Sprintf("%s: invalid input: pattern length %d exceeds text length %d",
		e.Op, e.PatternLen, e.TextLen)
}

// Unwrap returns ErrInvalidInput
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// checkInput rejects lengths that would make the scan bound
// len(text)-len(pattern) negative or the pattern empty.
func checkInput(op string, text, pattern []byte) error {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return &InputError{Op: op, TextLen: len(text), PatternLen: len(pattern)}
	}
	return nil
}

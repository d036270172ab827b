// Package rolling implements a polynomial rolling hash over byte sequences.
//
// A Prefix array built once over a sequence answers the hash of any of its
// half-open ranges in O(1), using a PowerTable of base^k mod Modulus. The
// hash is computed over raw byte values: no symbol (including a wildcard)
// has special meaning here.
//
// Example:
//
//	h := rolling.Build([]byte("abcabc"))
//	x, _ := rolling.Query(h, 0, 3)
//	y, _ := rolling.Query(h, 3, 6)
//	// x == y
package rolling

import (
	"errors"
	"fmt"
)

const (
	// Base is the polynomial base.
	Base = 31

	// Modulus is the prime modulus. Base*Modulus and Modulus*Modulus both fit
	// in int64, so no intermediate product overflows.
	Modulus = 1791791791
)

// ErrCapacityExceeded indicates a query outside a prefix array or past the
// range of a power table.
var ErrCapacityExceeded = errors.New("rolling hash capacity exceeded")

// RangeError describes an invalid half-open range [I, J) queried against a
// prefix array of Len symbols and a power table of the given Capacity.
type RangeError struct {
	I, J     int
	Len      int
	Capacity int
}

// Error implements the error interface
func (e *RangeError) Error() string {
	return fmt.Sprintf("rolling: range [%d, %d) invalid for sequence of length %d (power capacity %d)",
		e.I, e.J, e.Len, e.Capacity)
}

// Unwrap returns ErrCapacityExceeded
func (e *RangeError) Unwrap() error {
	return ErrCapacityExceeded
}

// Prefix holds the prefix hashes of a sequence: Prefix[i] is the hash of the
// first i symbols, so len(Prefix) == len(sequence)+1 and Prefix[0] == 0.
type Prefix []int64

// Len returns the length of the hashed sequence.
func (h Prefix) Len() int {
	if len(h) == 0 {
		return 0
	}
	return len(h) - 1
}

// Build computes the prefix hash array of seq.
func Build(seq []byte) Prefix {
	h := make(Prefix, len(seq)+1)
	for i := 1; i <= len(seq); i++ {
		h[i] = (h[i-1]*Base + int64(seq[i-1])) % Modulus
	}
	return h
}

// Hash returns the hash of the whole of seq. It equals Build(seq)[len(seq)]
// without allocating the prefix array.
func Hash(seq []byte) int64 {
	var h int64
	for _, c := range seq {
		h = (h*Base + int64(c)) % Modulus
	}
	return h
}

// Query returns the hash of the range [i, j) of the sequence h was built
// from, using the shared default power table.
func Query(h Prefix, i, j int) (int64, error) {
	return Default().Query(h, i, j)
}

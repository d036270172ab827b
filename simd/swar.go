package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// zeroBytes marks the high bit of every zero byte of v. The lowest marked
// byte is always exact; marks above it may be spurious, so callers only use
// the trailing one.
//
//go:inline
func zeroBytes(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

// memchr2SWAR checks 8 bytes per step for either needle.
func memchr2SWAR(haystack []byte, needle1, needle2 byte) int {
	mask1 := uint64(needle1) * lo8
	mask2 := uint64(needle2) * lo8

	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if hit := zeroBytes(chunk^mask1) | zeroBytes(chunk^mask2); hit != 0 {
			return i + bits.TrailingZeros64(hit)/8
		}
	}
	for ; i < len(haystack); i++ {
		if c := haystack[i]; c == needle1 || c == needle2 {
			return i
		}
	}
	return -1
}

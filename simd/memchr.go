// Package simd provides fast byte scanning primitives used to skip text
// positions that cannot start a match.
//
// The implementation is selected once at package initialization from the
// CPU features reported by golang.org/x/sys/cpu: on x86-64 with AVX2 the
// runtime's vectorized bytes.IndexByte is driven block by block, elsewhere
// a pure Go SWAR (SIMD Within A Register) loop inspects 8 bytes per step.
package simd

import (
	"bytes"

	"golang.org/x/sys/cpu"
)

// hasAVX2 reports whether the runtime byte search is vectorized with 256-bit
// registers, which makes two bounded IndexByte passes cheaper than one SWAR
// pass over the same block.
var hasAVX2 = cpu.X86.HasAVX2

// blockSize bounds how far the second needle is searched past a hit of the
// first one on the AVX2 path.
const blockSize = 256

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	return bytes.IndexByte(haystack, needle)
}

// Memchr2 returns the index of the first instance of either needle1 or
// needle2 in haystack, or -1 if neither is present.
//
// Example:
//
//	pos := simd.Memchr2([]byte("xxbxa"), 'a', 'b')
//	// pos == 2
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	if needle1 == needle2 {
		return Memchr(haystack, needle1)
	}
	if hasAVX2 && len(haystack) >= 2*blockSize {
		return memchr2Blocks(haystack, needle1, needle2)
	}
	return memchr2SWAR(haystack, needle1, needle2)
}

// memchr2Blocks scans haystack one block at a time with the vectorized
// runtime search, looking for the second needle only before the first hit.
func memchr2Blocks(haystack []byte, needle1, needle2 byte) int {
	for start := 0; start < len(haystack); start += blockSize {
		end := min(start+blockSize, len(haystack))
		block := haystack[start:end]
		limit := len(block)
		if i := bytes.IndexByte(block, needle1); i >= 0 {
			limit = i
		}
		if i := bytes.IndexByte(block[:limit], needle2); i >= 0 {
			return start + i
		}
		if limit < len(block) {
			return start + limit
		}
	}
	return -1
}

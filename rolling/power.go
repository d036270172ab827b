package rolling

import "sync"

// DefaultCapacity is the capacity of the shared power table returned by
// Default. It covers every range length up to 128 KiB.
const DefaultCapacity = 1 << 17

// PowerTable holds Base^k mod Modulus for k in [0, Capacity].
//
// A PowerTable is immutable after construction and safe to use concurrently
// from multiple goroutines. It never grows: a lookup past its capacity fails
// with ErrCapacityExceeded.
type PowerTable struct {
	pows []int64
}

// NewPowerTable builds a power table able to serve ranges of up to capacity
// symbols. A negative capacity is treated as zero.
func NewPowerTable(capacity int) *PowerTable {
	if capacity < 0 {
		capacity = 0
	}
	pows := make([]int64, capacity+1)
	pows[0] = 1
	for k := 1; k <= capacity; k++ {
		pows[k] = (pows[k-1] * Base) % Modulus
	}
	return &PowerTable{pows: pows}
}

var defaultTable = sync.OnceValue(func() *PowerTable {
	return NewPowerTable(DefaultCapacity)
})

// Default returns the process-wide power table. It is built on first use
// and shared read-only afterwards.
func Default() *PowerTable {
	return defaultTable()
}

// Capacity returns the longest range length the table can serve.
func (t *PowerTable) Capacity() int {
	return len(t.pows) - 1
}

// Pow returns Base^k mod Modulus.
func (t *PowerTable) Pow(k int) (int64, error) {
	if k < 0 || k >= len(t.pows) {
		return 0, &RangeError{I: 0, J: k, Len: k, Capacity: t.Capacity()}
	}
	return t.pows[k], nil
}

// Query returns the hash of the half-open range [i, j) of the sequence h
// was built from. The result is normalized into [0, Modulus).
//
// Returns a *RangeError wrapping ErrCapacityExceeded unless
// 0 <= i <= j <= h.Len() and j-i <= t.Capacity().
func (t *PowerTable) Query(h Prefix, i, j int) (int64, error) {
	if len(h) == 0 || i < 0 || i > j || j > h.Len() || j-i > t.Capacity() {
		return 0, &RangeError{I: i, J: j, Len: h.Len(), Capacity: t.Capacity()}
	}
	return Window(h, i, j, t.pows[j-i]), nil
}

// Window returns the hash of the range [i, j) of h given pow, which must be
// Base^(j-i) mod Modulus. Bounds are not checked; scans that hold one
// window length fetch pow once with Pow and call Window per offset.
func Window(h Prefix, i, j int, pow int64) int64 {
	v := (h[j] - (h[i]*pow)%Modulus) % Modulus
	return (v + Modulus) % Modulus
}

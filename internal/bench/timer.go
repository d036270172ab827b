package bench

import (
	"time"

	"github.com/coregx/wildkmp"
)

// Result is the outcome of a timed invocation.
type Result struct {
	// Pos is the position returned by the last repetition.
	Pos int

	// Mean is the average elapsed time of one call.
	Mean time.Duration
}

// Measure calls m.Last reps times on the same input and averages the
// elapsed time. The first error aborts the measurement.
func Measure(m wildkmp.Matcher, text, pattern []byte, reps int) (Result, error) {
	if reps < 1 {
		reps = 1
	}
	var (
		total time.Duration
		pos   int
	)
	for i := 0; i < reps; i++ {
		start := time.Now()
		p, err := m.Last(text, pattern)
		total += time.Since(start)
		if err != nil {
			return Result{Pos: wildkmp.NoMatch}, err
		}
		pos = p
	}
	return Result{Pos: pos, Mean: total / time.Duration(reps)}, nil
}

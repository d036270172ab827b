package match

import "sync/atomic"

// Stats holds execution counters of an engine.
type Stats struct {
	// Searches counts completed or abandoned scans.
	Searches uint64

	// Comparisons counts character comparisons (Naive, Optimized), window
	// hash comparisons (Hash) or candidate verifications (Concat, whose
	// other comparisons happen inside the failure function). It stays zero
	// unless Options.CountComparisons is set.
	Comparisons uint64
}

type counters struct {
	searches    atomic.Uint64
	comparisons atomic.Uint64
	count       bool
}

// record is deferred by every scan with its local comparison count.
func (c *counters) record(comparisons *int) {
	c.searches.Add(1)
	if c.count {
		c.comparisons.Add(uint64(*comparisons))
	}
}

func (c *counters) snapshot() Stats {
	return Stats{
		Searches:    c.searches.Load(),
		Comparisons: c.comparisons.Load(),
	}
}

func (c *counters) reset() {
	c.searches.Store(0)
	c.comparisons.Store(0)
}

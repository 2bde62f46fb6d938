package trace

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// paddedCount keeps each per-kind counter on its own cache line so that
// goroutines matching in parallel do not contend on neighbouring counters.
type paddedCount struct {
	n atomic.Uint64
	_ cpu.CacheLinePad
}

// Counter is a Sink that counts events per kind without retaining them.
// It is safe for concurrent use and is the cheap choice for batch matching.
type Counter struct {
	counts [numKinds]paddedCount
}

// NewCounter creates a Counter with all counts at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Emit increments the count for ev.Kind.
func (c *Counter) Emit(ev Event) {
	if ev.Kind < numKinds {
		c.counts[ev.Kind].n.Add(1)
	}
}

// Count returns the number of events of the given kind seen so far.
func (c *Counter) Count(kind Kind) uint64 {
	if kind >= numKinds {
		return 0
	}
	return c.counts[kind].n.Load()
}

// Snapshot returns the non-zero counts keyed by kind.
func (c *Counter) Snapshot() map[Kind]uint64 {
	out := make(map[Kind]uint64)
	for k := Kind(0); k < numKinds; k++ {
		if n := c.counts[k].n.Load(); n > 0 {
			out[k] = n
		}
	}
	return out
}

// Reset sets every count back to zero.
func (c *Counter) Reset() {
	for k := range c.counts {
		c.counts[k].n.Store(0)
	}
}

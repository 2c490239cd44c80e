package testutil

import "sync"

// SeqClock is a resettable monotonic sequence counter.
//
// The harness stamps every check event with a sequence number so event
// traces compare byte-identically against golden baselines. Unlike a
// wall clock, SeqClock can be reset so the same scenario produces the
// same numbering on every run.
type SeqClock struct {
	mu  sync.Mutex
	seq int64
}

// NewSeqClock creates a clock starting at 0; the first Next returns 1.
func NewSeqClock() *SeqClock {
	return &SeqClock{}
}

// Next increments and returns the next sequence number.
func (c *SeqClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// Current returns the current sequence number without incrementing.
func (c *SeqClock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Reset restarts the numbering; the next call to Next returns 1.
func (c *SeqClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = 0
}

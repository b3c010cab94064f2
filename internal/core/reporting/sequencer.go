package reporting

import "sync/atomic"

// Sequencer issues monotonically increasing sequence numbers for report
// computations. A consumer that overlaps report requests tags each one
// with Next and drops any result for which IsLatest is false, so a
// late-arriving stale response can never overwrite a newer one.
type Sequencer struct {
	latest atomic.Uint64
}

// Next issues the next sequence number and marks it as the latest.
func (s *Sequencer) Next() uint64 {
	return s.latest.Add(1)
}

// IsLatest reports whether seq is the most recently issued sequence number.
func (s *Sequencer) IsLatest(seq uint64) bool {
	return s.latest.Load() == seq
}

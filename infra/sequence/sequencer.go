// Package sequence issues the monotone identifiers the exchange depends
// on: order ids and event sequence numbers.
package sequence

import "sync/atomic"

// Sequencer hands out strictly increasing uint64 ids. Zero is never issued;
// it is the null order id everywhere else.
type Sequencer struct {
	next atomic.Uint64
}

// New starts issuing above start: 0 for a fresh instance, the last
// journaled sequence after replay.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued id.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}

// Reset rewinds the sequencer; only journal replay may call it.
func (s *Sequencer) Reset(v uint64) {
	s.next.Store(v)
}

package engine

import (
	"sync"
	"time"
)

// Scheduler owns zero or one recurring timer. Start always cancels the
// previous timer first, so at most one is ever live regardless of how
// settings changes interleave.
type Scheduler struct {
	mu     sync.Mutex
	ticker *time.Ticker
	done   chan struct{}
}

// NewScheduler returns a stopped Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Start arms the timer to invoke fn every interval. Any previously armed
// timer is stopped first.
func (s *Scheduler) Start(interval time.Duration, fn func()) {
	s.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	s.ticker = ticker
	s.done = done

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()
}

// Stop cancels the timer if one is armed. Safe to call repeatedly.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	close(s.done)
	s.ticker = nil
	s.done = nil
}

// Running reports whether a timer is currently armed.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticker != nil
}

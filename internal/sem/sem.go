// Package sem provides a counting semaphore with blocking acquisition.
//
// Unlike a rate limiter, a semaphore's permit count is fixed at
// construction: exactly capacity permits exist for its whole lifetime, so
// the number of concurrently held permits can never exceed capacity. The
// mpsc ring uses one permit per free slot as its backpressure bound.
package sem

import (
	"sync"

	"github.com/vnykmshr/goring/internal/invariant"
)

// Sem is a counting semaphore. All methods are safe for concurrent use.
type Sem struct {
	mu        sync.Mutex
	cond      *sync.Cond
	capacity  int
	available int
}

// New creates a semaphore with the given number of permits, all initially
// available. It panics if capacity is not positive.
func New(capacity int) *Sem {
	invariant.Assertf(capacity > 0, "sem: capacity must be positive, got %d", capacity)

	s := &Sem{
		capacity:  capacity,
		available: capacity,
	}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Acquire takes one permit, blocking until one is available.
func (s *Sem) Acquire() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.available == 0 {
		s.cond.Wait()
	}
	s.available--
}

// TryAcquire takes one permit if one is available without blocking.
// It reports whether a permit was taken.
func (s *Sem) TryAcquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.available == 0 {
		return false
	}
	s.available--
	return true
}

// Release returns one permit to the semaphore. It panics if more permits
// are released than were acquired.
func (s *Sem) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.available >= s.capacity {
		panic("sem: released more permits than acquired")
	}
	s.available++
	s.cond.Signal()
}

// Capacity returns the total number of permits.
func (s *Sem) Capacity() int {
	return s.capacity
}

// Available returns the number of permits currently available.
func (s *Sem) Available() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available
}

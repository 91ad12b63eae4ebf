package mpsc

import (
	"sync"
	"sync/atomic"

	"github.com/vnykmshr/goring/internal/cell"
	"github.com/vnykmshr/goring/internal/invariant"
	"github.com/vnykmshr/goring/internal/sem"
)

// ring is the shared state behind a Sender/Receiver pair: the slot array,
// the readiness flags, the claim counters, and the park/wake machinery.
// It is reachable only through the handle types and is torn down when the
// last handle is closed.
//
// Concurrency discipline:
//   - tail and the ready flags are the only fields mutated by more than one
//     goroutine without holding mu; both use sync/atomic, whose operations
//     are sequentially consistent.
//   - head belongs to the receiver alone and needs no synchronization.
//   - mu and cond guard only the park/wake handshake; the fast paths of
//     send and recv never touch them.
type ring[T any] struct {
	mask  uint64
	slots []cell.Cell[T]
	ready []atomic.Bool

	// head is the next counter value to consume; the slot is head & mask.
	// Receiver-private.
	head uint64

	// tail is the next counter value to claim. Producers advance it with an
	// atomic add, so every claimed index is written by exactly one sender.
	tail atomic.Uint64

	// free holds one permit per empty slot. Acquiring a permit is the sole
	// backpressure mechanism: exactly capacity permits exist for the ring's
	// lifetime, so at most capacity values can ever be in flight.
	free *sem.Sem

	// waiting is true while the receiver is parked on cond.
	waiting atomic.Bool
	mu      sync.Mutex
	cond    *sync.Cond

	// senders counts live Sender handles; recv treats zero as end-of-stream
	// once the buffer drains.
	senders atomic.Int64

	// handles counts every live handle, senders plus the receiver. The last
	// one to close runs teardown.
	handles atomic.Int64
}

func newRing[T any](capacity int) *ring[T] {
	invariant.Assertf(capacity > 0, "mpsc: capacity must be positive, got %d", capacity)
	invariant.Assertf(capacity&(capacity-1) == 0, "mpsc: capacity must be a power of two, got %d", capacity)

	r := &ring[T]{
		mask:  uint64(capacity - 1),
		slots: make([]cell.Cell[T], capacity),
		ready: make([]atomic.Bool, capacity),
		free:  sem.New(capacity),
	}
	r.cond = sync.NewCond(&r.mu)
	return r
}

func (r *ring[T]) capacity() int {
	return int(r.mask + 1)
}

// send blocks until a slot is free, then enqueues v. Safe for any number of
// concurrent callers; values are delivered in the order their slot claims
// were assigned.
func (r *ring[T]) send(v T) {
	r.free.Acquire()

	i := (r.tail.Add(1) - 1) & r.mask
	r.slots[i].Put(v)
	// The readiness store must come after the slot write, so the receiver
	// can never observe ready=true before the value is visible.
	r.ready[i].Store(true)

	// The waiting check must come after the readiness store. If it came
	// first, the receiver could set waiting and park between our check and
	// our publish, and the signal would never be sent.
	if !r.waiting.Load() {
		return
	}
	// Taking mu before signaling closes the window between the receiver's
	// final predicate check and its Wait.
	r.mu.Lock()
	r.cond.Signal()
	r.mu.Unlock()
}

// recv returns the next value in claim order. It returns ok=false once the
// buffer is empty and every sender handle has been closed; after that it
// can never return a value again. Only the single receiver may call it.
func (r *ring[T]) recv() (T, bool) {
	i := r.head & r.mask
	// The readiness load must come before the slot read, or a half-written
	// value could be observed.
	if !r.ready[i].Load() {
		r.mu.Lock()
		// waiting must be set before the predicate check below. Otherwise a
		// sender could publish and see waiting=false between that check and
		// the store, and this goroutine would park with no one left to wake
		// it.
		r.waiting.Store(true)
		for r.senders.Load() != 0 && !r.ready[i].Load() {
			r.cond.Wait()
		}
		r.mu.Unlock()
		r.waiting.Store(false)
		if !r.ready[i].Load() {
			// Woken with the slot still empty: only possible because the
			// sender count hit zero, and no new sender can appear.
			var zero T
			return zero, false
		}
	}
	return r.consume(i), true
}

// tryRecv is the non-blocking variant: ErrEmpty while senders remain,
// ErrDisconnected once the buffer is empty and all senders are gone.
func (r *ring[T]) tryRecv() (T, error) {
	i := r.head & r.mask
	if !r.ready[i].Load() {
		var zero T
		if r.senders.Load() == 0 {
			return zero, ErrDisconnected
		}
		return zero, ErrEmpty
	}
	return r.consume(i), nil
}

// consume takes the value out of slot i and recycles the slot. Caller has
// already established ready[i].
func (r *ring[T]) consume(i uint64) T {
	v := r.slots[i].Take()
	r.head++
	// Clearing readiness must come after the value is taken (a sender could
	// otherwise overwrite the slot mid-read) and before the permit release
	// (the permit is what licenses a sender to reuse the slot).
	r.ready[i].Store(false)
	r.free.Release()
	return v
}

func (r *ring[T]) incSender() {
	r.senders.Add(1)
}

// decSender records a Sender close. When the last sender goes away, a
// parked receiver must be woken so it observes end-of-stream instead of
// blocking forever.
func (r *ring[T]) decSender() {
	if r.senders.Add(-1) > 0 {
		return
	}
	if !r.waiting.Load() {
		return
	}
	r.mu.Lock()
	r.cond.Signal()
	r.mu.Unlock()
}

func (r *ring[T]) ref() {
	r.handles.Add(1)
}

func (r *ring[T]) unref() {
	if r.handles.Add(-1) > 0 {
		return
	}
	r.teardown()
}

// teardown runs when the last handle closes. No operation may be in flight
// at that point; closing the final handle while a Send or Recv is running
// is a precondition violation, not a defended race.
func (r *ring[T]) teardown() {
	tail := r.tail.Load()
	inFlight := tail - r.head
	invariant.Assertf(uint64(r.free.Available())+inFlight == r.mask+1,
		"mpsc: slot accounting broken at teardown: %d free + %d in flight, capacity %d",
		r.free.Available(), inFlight, r.mask+1)

	// Drop undelivered values so the cells stop pinning them.
	for ; r.head != tail; r.head++ {
		i := r.head & r.mask
		r.slots[i].Drop()
		r.ready[i].Store(false)
	}
}

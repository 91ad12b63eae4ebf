package mpsc

import (
	"errors"
	"sync/atomic"

	"github.com/vnykmshr/goring/internal/invariant"
	"github.com/vnykmshr/goring/pkg/common/validation"
)

// ErrEmpty is returned by TryRecv when no value is buffered but senders
// remain, so a value may still arrive.
var ErrEmpty = errors.New("mpsc: channel is empty")

// ErrDisconnected is returned by TryRecv once no value is buffered and
// every sender handle has been closed. No later call can yield a value.
var ErrDisconnected = errors.New("mpsc: all senders closed")

// Sender is a producer handle for a channel. Any number of senders may
// operate concurrently; use Clone to create additional ones. A Sender must
// be closed when its producer is done, both to release the ring and to let
// the receiver observe end-of-stream.
type Sender[T any] struct {
	r      *ring[T]
	closed atomic.Bool
}

func newSender[T any](r *ring[T]) *Sender[T] {
	r.ref()
	r.incSender()
	return &Sender[T]{r: r}
}

// Send enqueues v, blocking while the buffer is full. There is no timeout
// or cancellation at this layer; callers that need one must wrap Send
// externally. It panics if the sender has been closed.
func (s *Sender[T]) Send(v T) {
	invariant.Assertf(!s.closed.Load(), "mpsc: Send on a closed Sender")
	s.r.send(v)
}

// Clone returns a new Sender for the same channel. Cloning is the only way
// to obtain multiple producers. It panics if the sender has been closed.
func (s *Sender[T]) Clone() *Sender[T] {
	invariant.Assertf(!s.closed.Load(), "mpsc: Clone of a closed Sender")
	return newSender(s.r)
}

// Close releases the sender. When the last sender closes, a blocked Recv
// returns end-of-stream once the buffer drains. Close is idempotent and
// always returns nil.
func (s *Sender[T]) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	s.r.decSender()
	s.r.unref()
	return nil
}

// Cap returns the channel capacity.
func (s *Sender[T]) Cap() int {
	return s.r.capacity()
}

// Receiver is the consumer handle for a channel. Exactly one exists per
// channel and it must not be shared between goroutines; the single-consumer
// invariant is what lets the receive path run without locks.
type Receiver[T any] struct {
	r      *ring[T]
	closed atomic.Bool
}

func newReceiver[T any](r *ring[T]) *Receiver[T] {
	r.ref()
	return &Receiver[T]{r: r}
}

// Recv returns the next value in FIFO order, blocking while the buffer is
// empty and senders remain. It returns ok=false once the buffer is empty
// and every sender has closed; from then on it never yields a value again.
// It panics if the receiver has been closed.
func (rx *Receiver[T]) Recv() (v T, ok bool) {
	invariant.Assertf(!rx.closed.Load(), "mpsc: Recv on a closed Receiver")
	return rx.r.recv()
}

// TryRecv returns the next value without blocking. It returns ErrEmpty if
// the buffer is empty but senders remain, and ErrDisconnected once the
// buffer is empty and all senders have closed. It panics if the receiver
// has been closed.
func (rx *Receiver[T]) TryRecv() (T, error) {
	invariant.Assertf(!rx.closed.Load(), "mpsc: TryRecv on a closed Receiver")
	return rx.r.tryRecv()
}

// Close releases the receiver. Senders are unaffected (they block on free
// slots, never on the receiver's presence). Close is idempotent and always
// returns nil.
func (rx *Receiver[T]) Close() error {
	if !rx.closed.CompareAndSwap(false, true) {
		return nil
	}
	rx.r.unref()
	return nil
}

// Cap returns the channel capacity.
func (rx *Receiver[T]) Cap() int {
	return rx.r.capacity()
}

// New creates a bounded MPSC channel and returns its initial Sender and its
// sole Receiver. capacity must be a positive power of two; New panics
// otherwise. Use NewSafe to get an error instead.
func New[T any](capacity int) (*Sender[T], *Receiver[T]) {
	r := newRing[T](capacity)
	return newSender(r), newReceiver(r)
}

// NewSafe is like New but validates capacity and returns an error instead
// of panicking.
func NewSafe[T any](capacity int) (*Sender[T], *Receiver[T], error) {
	if err := validation.ValidatePowerOfTwo("mpsc", "capacity", capacity); err != nil {
		return nil, nil, err
	}
	tx, rx := New[T](capacity)
	return tx, rx, nil
}

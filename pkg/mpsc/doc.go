/*
Package mpsc provides a bounded multi-producer/single-consumer FIFO channel
backed by a fixed-capacity ring buffer.

Many concurrent producers push values through cloneable Sender handles; one
consumer drains them through the sole Receiver. Producers block while the
buffer is full (bounded backpressure), and the consumer observes a clean
end-of-stream once every sender handle has been closed.

Basic usage:

	tx, rx := mpsc.New[int](8)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		tx2 := tx.Clone()
		go func(id int) {
			defer wg.Done()
			defer tx2.Close()
			tx2.Send(id)
		}(i)
	}
	tx.Close()

	for {
		v, ok := rx.Recv()
		if !ok {
			break // all senders closed, buffer drained
		}
		fmt.Println(v)
	}
	wg.Wait()
	rx.Close()

Guarantees:

  - FIFO in claim order: the receiver sees values in exactly the order the
    senders' slot claims were assigned. Concurrent senders race for claim
    order, but once assigned it is fixed.
  - Bounded: with capacity C, at most C values are in flight; the C+1th
    Send blocks until a Recv makes room. Values are never dropped or
    overwritten.
  - Exactly-once delivery: every value sent is received exactly once under
    any interleaving of producers.
  - Prompt shutdown: a Recv blocked on an empty buffer returns end-of-stream
    as soon as the last sender closes; it cannot deadlock.

Blocking and cancellation:

Send and Recv are the only blocking operations and neither carries a
timeout or context. This keeps the uncontended fast path down to a few
atomic operations plus one semaphore operation. Callers that need
cancellation should wrap the blocking call in a goroutine, or poll with
TryRecv.

Capacity must be a positive power of two so slot indices reduce to a bit
mask; New panics on anything else, NewSafe returns a ValidationError.

Handles reference-count the shared ring. Closing the last handle tears the
ring down, discarding any undelivered values. Closing the last handle while
a Send or Recv is still running is a misuse of the API and not defended
against.

For Prometheus instrumentation, see NewWithMetrics.
*/
package mpsc

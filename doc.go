/*
Package goring provides a bounded multi-producer/single-consumer channel
built on a fixed-capacity ring buffer.

Core Channel (pkg/mpsc):
  - mpsc: FIFO ring channel with blocking backpressure and explicit
    end-of-stream semantics
  - metrics-instrumented sender/receiver wrappers

Observability (pkg/metrics):
  - Prometheus registry for channel instrumentation

Example usage:

	import "github.com/vnykmshr/goring/pkg/mpsc"

	tx, rx := mpsc.New[string](8)

	go func() {
		defer tx.Close()
		tx.Send("hello")
	}()

	for {
		v, ok := rx.Recv()
		if !ok {
			break // every sender closed
		}
		fmt.Println(v)
	}
	rx.Close()
*/
package goring

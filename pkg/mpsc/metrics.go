package mpsc

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/goring/pkg/metrics"
)

// MetricsSender wraps a Sender with Prometheus metrics collection.
type MetricsSender[T any] struct {
	sender   *Sender[T]
	name     string
	registry *metrics.Registry
	enabled  bool
	closed   atomic.Bool
}

// MetricsReceiver wraps a Receiver with Prometheus metrics collection.
type MetricsReceiver[T any] struct {
	receiver *Receiver[T]
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a channel with metrics enabled, registered on a
// fresh Prometheus registry so repeated instances do not collide.
func NewWithMetrics[T any](capacity int, name string) (*MetricsSender[T], *MetricsReceiver[T]) {
	// Use a separate registry for each metrics-enabled channel to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}
	return NewWithConfigAndMetrics[T](capacity, name, config)
}

// NewWithConfigAndMetrics creates a channel with the given metrics config.
// When metricsConfig.Enabled is false the wrappers pass operations straight
// through without touching any registry. The capacity rules are the same as
// New's: it panics unless capacity is a positive power of two.
func NewWithConfigAndMetrics[T any](capacity int, name string, metricsConfig metrics.Config) (*MetricsSender[T], *MetricsReceiver[T]) {
	tx, rx := New[T](capacity)

	ms := &MetricsSender[T]{sender: tx, name: name}
	mr := &MetricsReceiver[T]{receiver: rx, name: name}
	if !metricsConfig.Enabled {
		return ms, mr
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	registry.ChannelCapacity.WithLabelValues(name).Set(float64(capacity))
	registry.ChannelSenders.WithLabelValues(name).Set(1)

	ms.registry = registry
	ms.enabled = true
	mr.registry = registry
	mr.enabled = true
	return ms, mr
}

// Send enqueues v, blocking while the buffer is full, and records the send
// count and duration.
func (ms *MetricsSender[T]) Send(v T) {
	if !ms.enabled {
		ms.sender.Send(v)
		return
	}
	start := time.Now()
	ms.sender.Send(v)
	ms.registry.ChannelSends.WithLabelValues(ms.name).Inc()
	ms.registry.SendDuration.WithLabelValues(ms.name).Observe(time.Since(start).Seconds())
}

// Clone returns a new instrumented Sender sharing the same channel and
// registry.
func (ms *MetricsSender[T]) Clone() *MetricsSender[T] {
	clone := ms.sender.Clone()
	if ms.enabled {
		ms.registry.ChannelSenders.WithLabelValues(ms.name).Inc()
	}
	return &MetricsSender[T]{sender: clone, name: ms.name, registry: ms.registry, enabled: ms.enabled}
}

// Close releases the underlying sender. The wrapper owns its own idempotence
// check so concurrent Close calls move the gauge exactly once.
func (ms *MetricsSender[T]) Close() error {
	if !ms.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := ms.sender.Close(); err != nil {
		return err
	}
	if ms.enabled {
		ms.registry.ChannelSenders.WithLabelValues(ms.name).Dec()
	}
	return nil
}

// Cap returns the channel capacity.
func (ms *MetricsSender[T]) Cap() int {
	return ms.sender.Cap()
}

// Recv returns the next value in FIFO order, recording receive counts,
// durations, and end-of-stream observations.
func (mr *MetricsReceiver[T]) Recv() (T, bool) {
	if !mr.enabled {
		return mr.receiver.Recv()
	}
	start := time.Now()
	v, ok := mr.receiver.Recv()
	mr.registry.ReceiveDuration.WithLabelValues(mr.name).Observe(time.Since(start).Seconds())
	if ok {
		mr.registry.ChannelReceives.WithLabelValues(mr.name).Inc()
	} else {
		mr.registry.ChannelEndOfStream.WithLabelValues(mr.name).Inc()
	}
	return v, ok
}

// TryRecv attempts a non-blocking receive, labelling the outcome.
func (mr *MetricsReceiver[T]) TryRecv() (T, error) {
	if !mr.enabled {
		return mr.receiver.TryRecv()
	}
	v, err := mr.receiver.TryRecv()
	switch err {
	case nil:
		mr.registry.ChannelTryReceives.WithLabelValues(mr.name, "value").Inc()
		mr.registry.ChannelReceives.WithLabelValues(mr.name).Inc()
	case ErrEmpty:
		mr.registry.ChannelTryReceives.WithLabelValues(mr.name, "empty").Inc()
	case ErrDisconnected:
		mr.registry.ChannelTryReceives.WithLabelValues(mr.name, "disconnected").Inc()
	}
	return v, err
}

// Close releases the underlying receiver.
func (mr *MetricsReceiver[T]) Close() error {
	return mr.receiver.Close()
}

// Cap returns the channel capacity.
func (mr *MetricsReceiver[T]) Cap() int {
	return mr.receiver.Cap()
}

// Package metrics provides Prometheus instrumentation for goring components.
//
// This package enables monitoring and observability for the mpsc channel
// through Prometheus metrics.
//
// # Overview
//
// The metrics package provides automatic instrumentation for:
//   - Channel sends and receives (totals, durations)
//   - Non-blocking receive outcomes (value, empty, disconnected)
//   - End-of-stream observations
//   - Channel capacity and live sender count
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructor:
//
//	tx, rx := mpsc.NewWithMetrics[Event](64, "event_bus")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//	tx, rx := mpsc.NewWithConfigAndMetrics[Event](64, "event_bus", config)
//
// # Available Metrics
//
//   - goring_mpsc_sends_total: Total values sent into the channel
//   - goring_mpsc_receives_total: Total values received from the channel
//   - goring_mpsc_try_receives_total: Non-blocking receive attempts, by outcome
//   - goring_mpsc_end_of_stream_total: End-of-stream results observed
//   - goring_mpsc_capacity: Fixed slot capacity of the channel
//   - goring_mpsc_senders: Number of live sender handles
//   - goring_mpsc_send_duration_seconds: Time spent in Send, including blocking
//   - goring_mpsc_receive_duration_seconds: Time spent in Recv, including parked time
//
// # Labels
//
//   - channel_name: User-provided name for the channel instance
//   - outcome: TryRecv result ("value", "empty", "disconnected")
//
// # Performance
//
// Metrics collection is designed for minimal overhead:
//   - Metrics are updated only when operations occur
//   - No background goroutines or timers
//   - Instrumentation lives in wrapper handles; the uninstrumented channel
//     pays nothing
package metrics

// Package metrics provides Prometheus instrumentation for goring components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for goring components.
type Registry struct {
	// Channel Metrics
	ChannelSends       *prometheus.CounterVec
	ChannelReceives    *prometheus.CounterVec
	ChannelTryReceives *prometheus.CounterVec
	ChannelEndOfStream *prometheus.CounterVec
	ChannelCapacity    *prometheus.GaugeVec
	ChannelSenders     *prometheus.GaugeVec
	SendDuration       *prometheus.HistogramVec
	ReceiveDuration    *prometheus.HistogramVec
}

// DefaultRegistry is the default metrics registry used by goring components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		ChannelSends: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goring",
				Subsystem: "mpsc",
				Name:      "sends_total",
				Help:      "Total number of values sent into the channel",
			},
			[]string{"channel_name"},
		),

		ChannelReceives: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goring",
				Subsystem: "mpsc",
				Name:      "receives_total",
				Help:      "Total number of values received from the channel",
			},
			[]string{"channel_name"},
		),

		ChannelTryReceives: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goring",
				Subsystem: "mpsc",
				Name:      "try_receives_total",
				Help:      "Total number of non-blocking receive attempts by outcome",
			},
			[]string{"channel_name", "outcome"},
		),

		ChannelEndOfStream: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goring",
				Subsystem: "mpsc",
				Name:      "end_of_stream_total",
				Help:      "Total number of end-of-stream results observed by the receiver",
			},
			[]string{"channel_name"},
		),

		ChannelCapacity: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "goring",
				Subsystem: "mpsc",
				Name:      "capacity",
				Help:      "Fixed slot capacity of the channel",
			},
			[]string{"channel_name"},
		),

		ChannelSenders: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "goring",
				Subsystem: "mpsc",
				Name:      "senders",
				Help:      "Number of live sender handles",
			},
			[]string{"channel_name"},
		),

		SendDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "goring",
				Subsystem: "mpsc",
				Name:      "send_duration_seconds",
				Help:      "Time spent in Send, including backpressure blocking",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"channel_name"},
		),

		ReceiveDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "goring",
				Subsystem: "mpsc",
				Name:      "receive_duration_seconds",
				Help:      "Time spent in Recv, including parked time",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"channel_name"},
		),
	}
}

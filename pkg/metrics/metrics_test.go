package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewRegistryRegistersChannelMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRegistry(reg)

	r.ChannelSends.WithLabelValues("test").Add(3)
	r.ChannelReceives.WithLabelValues("test").Add(2)
	r.ChannelTryReceives.WithLabelValues("test", "disconnected").Inc()
	r.ChannelCapacity.WithLabelValues("test").Set(8)
	r.SendDuration.WithLabelValues("test").Observe(0.001)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() failed: %v", err)
	}

	want := map[string]bool{
		"goring_mpsc_sends_total":           false,
		"goring_mpsc_receives_total":        false,
		"goring_mpsc_try_receives_total":    false,
		"goring_mpsc_capacity":              false,
		"goring_mpsc_send_duration_seconds": false,
	}
	for _, mf := range families {
		if _, ok := want[mf.GetName()]; ok {
			want[mf.GetName()] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("metric family %q not registered", name)
		}
	}
}

func TestDefaultRegistryInitialized(t *testing.T) {
	if DefaultRegistry == nil {
		t.Fatal("DefaultRegistry should be initialized")
	}
}

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.IncReviewWrite("create")
	m.IncReviewWrite("create")
	m.IncAggregationFailure("full")
	m.AddSweepCorrections(3)
	m.AddSweepCorrections(0)
	m.ObserveSearch("text", 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReviewWrites.WithLabelValues("create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AggregationFailures.WithLabelValues("full")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.SweepCorrections))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SearchLatency))
}

func TestMetrics_NilReceiverIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncReviewWrite("delete")
		m.IncRecompute("failed")
		m.AddSweepCorrections(1)
		m.ObserveSearch("filter", time.Second)
		m.ObserveHTTP("GET", "/health", "200", time.Millisecond)
	})
}

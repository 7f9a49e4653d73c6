package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveForward("sent", "")
	m.ObserveForward("sent", "")
	m.ObserveAttempt("json", "transient")
	m.ObserveAttachment(2048)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.forwards.WithLabelValues("sent", "")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.webhookAttempts.WithLabelValues("json", "transient")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.attachmentBytes))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveForward("failed", "")
		m.ObserveAttempt("multipart", "permanent")
		m.ObserveAttachment(1)
	})
}

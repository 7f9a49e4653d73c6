package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tgbridge"

// Metrics holds the bridge collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	forwards        *prometheus.CounterVec
	webhookAttempts *prometheus.CounterVec
	attachmentBytes prometheus.Histogram
}

// New registers the collectors on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		forwards: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "forwards_total",
			Help:      "Channel posts handled, by outcome.",
		}, []string{"status", "reason"}),
		webhookAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_attempts_total",
			Help:      "Webhook HTTP attempts, by request form and result.",
		}, []string{"form", "result"}),
		attachmentBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "attachment_bytes",
			Help:      "Size of attachments uploaded to the webhook.",
			Buckets:   prometheus.ExponentialBuckets(16*1024, 4, 8),
		}),
	}
}

func (m *Metrics) ObserveForward(status, reason string) {
	if m == nil {
		return
	}
	m.forwards.WithLabelValues(status, reason).Inc()
}

func (m *Metrics) ObserveAttempt(form, result string) {
	if m == nil {
		return
	}
	m.webhookAttempts.WithLabelValues(form, result).Inc()
}

func (m *Metrics) ObserveAttachment(size int) {
	if m == nil {
		return
	}
	m.attachmentBytes.Observe(float64(size))
}

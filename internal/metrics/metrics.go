// Package metrics exports consumer and upload counters to Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "document_uploader"

type Metrics struct {
	deliveries     *prometheus.CounterVec
	uploads        *prometheus.CounterVec
	uploadDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	deliveries, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deliveries_total",
		Help:      "Queue deliveries by settlement (acked, rejected, malformed, requeued).",
	}, []string{"outcome"}))
	if err != nil {
		return nil, err
	}

	uploads, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Upload attempts by result (success or failure kind).",
	}, []string{"result"}))
	if err != nil {
		return nil, err
	}

	uploadDuration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upload_duration_seconds",
		Help:      "Latency of a single upload attempt.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"result"}))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		deliveries:     deliveries,
		uploads:        uploads,
		uploadDuration: uploadDuration,
	}, nil
}

// register returns the collector already registered under the same
// descriptor, so several Metrics can share one registry.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing, nil
		}
	}

	var zero T
	return zero, fmt.Errorf("failed to register collector: %w", err)
}

func (m *Metrics) ObserveDelivery(outcome string) {
	m.deliveries.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveUpload(result string, duration time.Duration) {
	m.uploads.WithLabelValues(result).Inc()
	m.uploadDuration.WithLabelValues(result).Observe(duration.Seconds())
}

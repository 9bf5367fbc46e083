package stt

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stt_requests_total",
			Help: "Total number of transcription provider calls by terminal status",
		},
		[]string{"provider", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stt_request_duration_seconds",
			Help:    "Transcription provider round-trip duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
		[]string{"provider"},
	)
)

// ObserveRequest records the outcome and latency of one provider call.
// A transport error should be recorded with status "error".
func ObserveRequest(provider, status string, elapsed time.Duration) {
	requestsTotal.WithLabelValues(provider, status).Inc()
	requestDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

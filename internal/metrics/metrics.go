// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "racelens",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method, and status code.",
	}, []string{"route", "method", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "racelens",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	datasetEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "racelens",
		Name:      "dataset_entries",
		Help:      "Number of race entries in the loaded dataset.",
	})

	datasetLoadFailed = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "racelens",
		Name:      "dataset_load_failed",
		Help:      "1 when the startup dataset load failed, 0 otherwise.",
	})
)

// RecordHTTPRequest counts one completed request.
func RecordHTTPRequest(route, method, status string) {
	httpRequests.WithLabelValues(route, method, status).Inc()
}

// ObserveHTTPDuration records one request's latency.
func ObserveHTTPDuration(route, method string, seconds float64) {
	httpDuration.WithLabelValues(route, method).Observe(seconds)
}

// SetDatasetEntries records the size of the loaded dataset.
func SetDatasetEntries(n int) {
	datasetEntries.Set(float64(n))
}

// SetDatasetLoadFailed records the startup load outcome.
func SetDatasetLoadFailed(failed bool) {
	if failed {
		datasetLoadFailed.Set(1)
		return
	}
	datasetLoadFailed.Set(0)
}

// Package metrics provides Prometheus metrics for the studio console.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BackendRequestsTotal counts requests sent to the content API.
	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "backend_requests_total",
			Help:      "Total number of requests sent to the content API",
		},
		[]string{"method", "resource", "status"},
	)

	// BackendRequestDuration measures content API round trips.
	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "studio",
			Name:      "backend_request_duration_seconds",
			Help:      "Duration of content API requests in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"method", "resource"},
	)

	// HTTPRequestsTotal counts pages and actions served to browsers.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests served",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPRequestDuration measures request handling including backend calls.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "studio",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP request handling in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// ActivityEventsTotal counts journal writes and publishes.
	ActivityEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "activity_events_total",
			Help:      "Total number of activity journal operations",
		},
		[]string{"operation", "status"},
	)

	// ActivityDroppedTotal counts events lost to a full journal queue.
	ActivityDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "activity_dropped_total",
			Help:      "Total number of activity events dropped because the queue was full",
		},
	)

	// ActivityPrunedTotal counts journal entries removed by retention.
	ActivityPrunedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "studio",
			Name:      "activity_pruned_total",
			Help:      "Total number of activity events removed by retention",
		},
	)
)

// RecordBackendRequest records one content API round trip. status 0 means
// the request never got a response.
func RecordBackendRequest(method, resource string, status int, seconds float64) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	BackendRequestsTotal.WithLabelValues(method, resource, label).Inc()
	BackendRequestDuration.WithLabelValues(method, resource).Observe(seconds)
}

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(route, method string, status int, seconds float64) {
	HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(route).Observe(seconds)
}

// RecordActivity records a journal operation ("store" or "publish").
func RecordActivity(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	ActivityEventsTotal.WithLabelValues(operation, status).Inc()
}

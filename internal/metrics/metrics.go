// Package metrics defines the Prometheus collectors for the trip planner.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the API.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, route pattern, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route"},
	)

	// DocumentSaves counts document writes to the store.
	DocumentSaves = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "document_saves_total", Help: "Document blobs written to the store."},
	)

	// ShareLinks counts share-token operations by action (create, apply) and
	// outcome (ok, error).
	ShareLinks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "share_links_total", Help: "Share link operations."},
		[]string{"action", "outcome"},
	)
)

var regOnce sync.Once

// Register registers all collectors on the package registry, once.
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(DocumentSaves)
		Registry.MustRegister(ShareLinks)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

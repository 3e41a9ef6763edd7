// internal/pkg/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, path and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration tracks HTTP request latency
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// OrdersComposed counts checkout compositions by sink outcome
	OrdersComposed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_orders_composed_total",
			Help: "Total number of composed orders by persistence outcome",
		},
		[]string{"persisted"},
	)

	// CatalogFallbacks counts catalog reads served from the built-in dataset
	CatalogFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_catalog_fallbacks_total",
			Help: "Total number of catalog reads served from the built-in dataset",
		},
	)
)

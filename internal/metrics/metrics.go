// Package metrics defines Prometheus metrics for rentdesk.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rentdesk_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rentdesk_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rentdesk_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	ReconcileFlips = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rentdesk_property_status_flips_total",
			Help: "Property status changes applied by the reconciler",
		},
	)

	PropertyCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rentdesk_properties_total",
			Help: "Total property count",
		},
	)

	TenantCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rentdesk_tenants_total",
			Help: "Total tenant count",
		},
	)

	ActiveLeaseCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rentdesk_active_leases_total",
			Help: "Active lease count",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		ReconcileFlips,
		PropertyCount, TenantCount, ActiveLeaseCount,
	)
}

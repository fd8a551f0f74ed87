// Package metrics owns the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics groups every collector the service exports.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	LedgerEvents        *prometheus.CounterVec
	TxRetries           *prometheus.CounterVec
	AuditViolations     prometheus.Gauge
	AuditItems          prometheus.Gauge
	AuditLastRun        prometheus.Gauge
}

// New builds the collectors and registers them, together with the Go runtime
// and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventory",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "inventory",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		LedgerEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventory",
			Name:      "ledger_events_total",
			Help:      "Committed ledger events by type.",
		}, []string{"type"}),
		TxRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventory",
			Name:      "tx_retries_total",
			Help:      "Units of work retried after a retryable store error, by SQLSTATE.",
		}, []string{"sqlstate"}),
		AuditViolations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "inventory",
			Name:      "ledger_audit_violations",
			Help:      "Balance chain violations found by the last ledger audit.",
		}),
		AuditItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "inventory",
			Name:      "ledger_audit_items",
			Help:      "Items checked by the last ledger audit.",
		}),
		AuditLastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "inventory",
			Name:      "ledger_audit_last_run_timestamp_seconds",
			Help:      "Unix time the last ledger audit finished.",
		}),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.LedgerEvents,
		m.TxRetries,
		m.AuditViolations,
		m.AuditItems,
		m.AuditLastRun,
	)
	return m
}

// ObserveTxRetry satisfies the store's retry observer.
func (m *Metrics) ObserveTxRetry(sqlState string) {
	m.TxRetries.WithLabelValues(sqlState).Inc()
}

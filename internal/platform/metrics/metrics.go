package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "excise"

// Metrics holds the HTTP and register metrics of the service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Register metrics
	EntriesRecorded       *prometheus.CounterVec
	ValidationRejections  *prometheus.CounterVec
	AggregationRuns       *prometheus.CounterVec
	ReconciliationResults *prometheus.CounterVec
	ChargeableWastage     *prometheus.CounterVec
}

// New creates a Metrics instance on its own registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	m.HTTPRequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	m.EntriesRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "register_entries_total",
			Help:      "Register entries written, by register and operation",
		},
		[]string{"register", "operation"},
	)

	m.ValidationRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_rejections_total",
			Help:      "Register writes rejected by validation or a precondition",
		},
		[]string{"register", "reason"},
	)

	m.AggregationRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "master_ledger_aggregations_total",
			Help:      "Reg-78 aggregation runs by outcome",
		},
		[]string{"status"},
	)

	m.ReconciliationResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "master_ledger_reconciliations_total",
			Help:      "Reg-78 reconciliations by outcome",
		},
		[]string{"outcome"},
	)

	m.ChargeableWastage = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chargeable_wastage_events_total",
			Help:      "Receipts and production sessions whose wastage exceeded tolerance",
		},
		[]string{"register"},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.EntriesRecorded,
		m.ValidationRejections,
		m.AggregationRuns,
		m.ReconciliationResults,
		m.ChargeableWastage,
	)

	return m
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry returns the prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest records a finished HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) IncrementHTTPRequestsInFlight() {
	if m == nil {
		return
	}
	m.HTTPRequestsInFlight.Inc()
}

func (m *Metrics) DecrementHTTPRequestsInFlight() {
	if m == nil {
		return
	}
	m.HTTPRequestsInFlight.Dec()
}

// RecordEntry counts a successful register write.
func (m *Metrics) RecordEntry(register, operation string) {
	if m == nil {
		return
	}
	m.EntriesRecorded.WithLabelValues(register, operation).Inc()
}

// RecordRejection counts a rejected register write.
func (m *Metrics) RecordRejection(register, reason string) {
	if m == nil {
		return
	}
	m.ValidationRejections.WithLabelValues(register, reason).Inc()
}

// RecordAggregation counts a Reg-78 aggregation run.
func (m *Metrics) RecordAggregation(success bool) {
	if m == nil {
		return
	}
	status := "success"
	if !success {
		status = "error"
	}
	m.AggregationRuns.WithLabelValues(status).Inc()
}

// RecordReconciliation counts a Reg-78 reconciliation by whether it fell within threshold.
func (m *Metrics) RecordReconciliation(reconciled bool) {
	if m == nil {
		return
	}
	outcome := "reconciled"
	if !reconciled {
		outcome = "variance_exceeded"
	}
	m.ReconciliationResults.WithLabelValues(outcome).Inc()
}

// RecordChargeableWastage counts an entry whose wastage exceeded tolerance.
func (m *Metrics) RecordChargeableWastage(register string) {
	if m == nil {
		return
	}
	m.ChargeableWastage.WithLabelValues(register).Inc()
}

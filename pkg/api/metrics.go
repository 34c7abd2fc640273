package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds all Prometheus metrics for the API
type Metrics struct {
	// HTTP request metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight *prometheus.GaugeVec

	// Mail search metrics
	searchesTotal  *prometheus.CounterVec
	searchDuration *prometheus.HistogramVec
	searchWordSets *prometheus.HistogramVec
	decodesTotal   *prometheus.CounterVec
	badEggsDecoded prometheus.Counter

	// Record bank metrics
	bankOperationsTotal   *prometheus.CounterVec
	bankOperationDuration *prometheus.HistogramVec
	bankRecords           prometheus.Gauge

	// API key authentication metrics
	authRequestsTotal *prometheus.CounterVec

	// Health check metrics
	healthChecksTotal *prometheus.CounterVec

	handler http.Handler
}

// NewMetrics creates and registers all Prometheus metrics on reg. A nil reg
// means the default registry.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if reg != nil {
		registerer, gatherer = reg, reg
	}
	factory := promauto.With(registerer)

	m := &Metrics{
		// HTTP request metrics
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pkm3hex_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pkm3hex_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		httpRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pkm3hex_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method", "endpoint"},
		),

		searchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pkm3hex_mail_searches_total",
				Help: "Total number of mail word searches",
			},
			[]string{"mode", "status"},
		),

		searchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pkm3hex_mail_search_duration_seconds",
				Help:    "Mail word search duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"mode"},
		),

		searchWordSets: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pkm3hex_mail_search_word_sets",
				Help:    "Number of word sets a search returned",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"mode"},
		),

		decodesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pkm3hex_records_decoded_total",
				Help: "Total number of records decoded",
			},
			[]string{"status"},
		),

		badEggsDecoded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "pkm3hex_bad_eggs_decoded_total",
				Help: "Total number of decoded records that were bad eggs",
			},
		),

		bankOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pkm3hex_bank_operations_total",
				Help: "Total number of record bank operations",
			},
			[]string{"operation", "status"},
		),

		bankOperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pkm3hex_bank_operation_duration_seconds",
				Help:    "Record bank operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		bankRecords: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "pkm3hex_bank_records",
				Help: "Number of records in the bank at the last listing",
			},
		),

		// Authentication metrics
		authRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pkm3hex_auth_requests_total",
				Help: "Total number of authentication requests",
			},
			[]string{"status"},
		),

		// Health check metrics
		healthChecksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pkm3hex_health_checks_total",
				Help: "Total number of health checks",
			},
			[]string{"status"},
		),

		handler: promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
	}

	return m
}

func statusLabel(success bool) string {
	if success {
		return statusSuccess
	}
	return statusError
}

// Handler serves the registry the metrics were registered on
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	statusCodeStr := strconv.Itoa(statusCode)

	m.httpRequestsTotal.WithLabelValues(method, endpoint, statusCodeStr).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordSearch records a mail word search and how many sets it returned
func (m *Metrics) RecordSearch(mode string, success bool, wordSets int, duration time.Duration) {
	m.searchesTotal.WithLabelValues(mode, statusLabel(success)).Inc()
	m.searchDuration.WithLabelValues(mode).Observe(duration.Seconds())
	if success {
		m.searchWordSets.WithLabelValues(mode).Observe(float64(wordSets))
	}
}

// RecordDecode records a record decode
func (m *Metrics) RecordDecode(success, badEgg bool) {
	m.decodesTotal.WithLabelValues(statusLabel(success)).Inc()
	if badEgg {
		m.badEggsDecoded.Inc()
	}
}

// RecordBankOperation records a record bank operation
func (m *Metrics) RecordBankOperation(operation string, success bool, duration time.Duration) {
	m.bankOperationsTotal.WithLabelValues(operation, statusLabel(success)).Inc()
	m.bankOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateBankStats updates record bank statistics
func (m *Metrics) UpdateBankStats(records int) {
	m.bankRecords.Set(float64(records))
}

// RecordAuthRequest records an authentication request
func (m *Metrics) RecordAuthRequest(success bool) {
	m.authRequestsTotal.WithLabelValues(statusLabel(success)).Inc()
}

// RecordHealthCheck records a health check
func (m *Metrics) RecordHealthCheck(success bool) {
	m.healthChecksTotal.WithLabelValues(statusLabel(success)).Inc()
}

// InstrumentHandler instruments an HTTP handler with metrics
func (m *Metrics) InstrumentHandler(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Record request in flight
		gauge := m.httpRequestsInFlight.WithLabelValues(method, endpoint)
		gauge.Inc()
		defer gauge.Dec()

		// Create response writer wrapper to capture status code
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		handler(rw, r)

		m.RecordHTTPRequest(method, endpoint, rw.statusCode, time.Since(start))
	}
}

// InstrumentAuthMiddleware instruments the authentication middleware
func (m *Metrics) InstrumentAuthMiddleware(next func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hasAPIKey := r.Header.Get("X-API-Key") != ""

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next(h).ServeHTTP(rw, r)

			if hasAPIKey {
				m.RecordAuthRequest(rw.statusCode != http.StatusUnauthorized)
			}
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

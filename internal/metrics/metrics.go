package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "text2sql_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "text2sql_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	translationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "text2sql_translations_total",
			Help: "Language model translations by outcome.",
		},
		[]string{"outcome"},
	)

	translationDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "text2sql_translation_duration_seconds",
			Help:    "Latency of language model calls.",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
	)

	queryExecutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "text2sql_query_executions_total",
			Help: "Generated statements executed by outcome.",
		},
		[]string{"outcome"},
	)

	queryRowsReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "text2sql_query_rows_returned",
			Help:    "Rows returned per executed statement.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDurationSeconds,
		translationsTotal,
		translationDurationSeconds,
		queryExecutionsTotal,
		queryRowsReturned,
	)
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveTranslation records one language model call.
func ObserveTranslation(outcome string, duration time.Duration) {
	translationsTotal.WithLabelValues(outcome).Inc()
	translationDurationSeconds.Observe(duration.Seconds())
}

// ObserveExecution records one executed statement.
func ObserveExecution(outcome string, rows int) {
	queryExecutionsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		queryRowsReturned.Observe(float64(rows))
	}
}

// Outcome maps an error to an outcome label.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}

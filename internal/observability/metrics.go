// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Engine metrics
	EngineRunsTotal      *prometheus.CounterVec
	EngineRunDuration    prometheus.Histogram
	RowsProcessed        prometheus.Counter
	CampaignsScored      prometheus.Counter
	RecommendedActions   *prometheus.CounterVec
	StopLossFlagged      prometheus.Counter
	GuardrailOverrides   prometheus.Counter
	CoercedDates         prometheus.Counter

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Persistence metrics
	DatasetsPersisted  prometheus.Counter
	PersistenceErrors  *prometheus.CounterVec
	DBQueryDuration    *prometheus.HistogramVec

	// Health metrics
	LastSuccessfulRun prometheus.Gauge
	UptimeSeconds     prometheus.Counter
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "budget_engine"
	}

	return &Metrics{
		// Engine metrics
		EngineRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "runs_total",
			Help:      "Total number of engine runs by status",
		}, []string{"status"}),
		EngineRunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "run_duration_seconds",
			Help:      "Duration of engine runs in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		RowsProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "rows_processed_total",
			Help:      "Total number of performance rows processed",
		}),
		CampaignsScored: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "campaigns_scored_total",
			Help:      "Total number of campaigns scored",
		}),
		RecommendedActions: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "recommended_actions_total",
			Help:      "Total number of recommendations by action band",
		}, []string{"action"}),
		StopLossFlagged: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "stop_loss_flagged_total",
			Help:      "Total number of recommendations carrying the stop-loss flag",
		}),
		GuardrailOverrides: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "guardrail_overrides_total",
			Help:      "Total number of requests with caller guardrail overrides",
		}),
		CoercedDates: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "coerced_dates_total",
			Help:      "Total number of rows whose date failed to parse and was coerced",
		}),

		// HTTP metrics
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route and status code",
		}, []string{"route", "code"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),

		// Persistence metrics
		DatasetsPersisted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "datasets_persisted_total",
			Help:      "Total number of datasets persisted",
		}),
		PersistenceErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "persistence_errors_total",
			Help:      "Total number of persistence errors by table",
		}, []string{"table"}),
		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "db_query_duration_seconds",
			Help:      "Duration of database queries in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"database", "operation"}),

		// Health metrics
		LastSuccessfulRun: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "last_successful_run_timestamp",
			Help:      "Unix timestamp of last successful engine run",
		}),
		UptimeSeconds: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "uptime_seconds_total",
			Help:      "Total uptime in seconds",
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordEngineRun records one engine run.
func RecordEngineRun(status string, durationSeconds float64) {
	DefaultMetrics.EngineRunsTotal.WithLabelValues(status).Inc()
	DefaultMetrics.EngineRunDuration.Observe(durationSeconds)
}

// RecordRecommendation counts one recommendation by action band.
func RecordRecommendation(action string, stopLoss bool) {
	DefaultMetrics.RecommendedActions.WithLabelValues(action).Inc()
	DefaultMetrics.CampaignsScored.Inc()
	if stopLoss {
		DefaultMetrics.StopLossFlagged.Inc()
	}
}

// RecordPersistenceError counts a failed write to the given table.
func RecordPersistenceError(table string) {
	DefaultMetrics.PersistenceErrors.WithLabelValues(table).Inc()
}

// RecordDBQuery records database query metrics.
func RecordDBQuery(database, operation string, seconds float64) {
	DefaultMetrics.DBQueryDuration.WithLabelValues(database, operation).Observe(seconds)
}

// RecordHTTPRequest records one served HTTP request.
func RecordHTTPRequest(route, code string, seconds float64) {
	DefaultMetrics.HTTPRequestsTotal.WithLabelValues(route, code).Inc()
	DefaultMetrics.HTTPRequestDuration.WithLabelValues(route).Observe(seconds)
}

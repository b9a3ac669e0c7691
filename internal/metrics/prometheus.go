package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Engine metrics
	Recommendations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_recommendations_total",
			Help: "Total number of recommend calls",
		},
		[]string{"tolerance", "status"}, // status: success|no_suitable_assets
	)

	UnknownToleranceTags = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "advisor_unknown_tolerance_tags_total",
			Help: "Recommend calls whose tag fell back to medium",
		},
	)

	Analyses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_analyses_total",
			Help: "Total number of single-asset analyses",
		},
		[]string{"status"}, // status: success|unknown_asset
	)

	EligibleAssets = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "advisor_eligible_assets",
			Help:    "Eligible set size per recommendation",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21, 50},
		},
		[]string{"tolerance"},
	)

	// Catalog metrics
	CatalogAssets = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "advisor_catalog_assets",
			Help: "Number of assets in the current catalog snapshot",
		},
	)

	CatalogRefreshes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_catalog_refreshes_total",
			Help: "Catalog refresh attempts",
		},
		[]string{"source", "status"}, // status: success|error|unchanged
	)

	CatalogLastRefresh = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "advisor_catalog_last_refresh_timestamp",
			Help: "Unix timestamp of the last successful catalog swap",
		},
	)

	// Job metrics
	JobExecutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_job_executions_total",
			Help: "Scheduled job executions",
		},
		[]string{"job", "status"}, // status: success|error
	)

	JobDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "advisor_job_duration_seconds",
			Help:    "Scheduled job duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"job"},
	)

	// HTTP metrics
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_http_requests_total",
			Help: "HTTP requests by route and status code",
		},
		[]string{"route", "method", "code"},
	)

	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "advisor_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_cache_lookups_total",
			Help: "Response cache lookups",
		},
		[]string{"result"}, // result: hit|miss|error
	)

	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "advisor_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)
)

var initOnce sync.Once

// Init registers all metrics with Prometheus. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(Recommendations)
		prometheus.MustRegister(UnknownToleranceTags)
		prometheus.MustRegister(Analyses)
		prometheus.MustRegister(EligibleAssets)

		prometheus.MustRegister(CatalogAssets)
		prometheus.MustRegister(CatalogRefreshes)
		prometheus.MustRegister(CatalogLastRefresh)

		prometheus.MustRegister(JobExecutions)
		prometheus.MustRegister(JobDuration)

		prometheus.MustRegister(HTTPRequests)
		prometheus.MustRegister(HTTPDuration)
		prometheus.MustRegister(CacheLookups)
		prometheus.MustRegister(RateLimited)
	})
}

// Handler returns Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordJobExecution records one scheduled job run
func RecordJobExecution(job string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	JobExecutions.WithLabelValues(job, status).Inc()
	JobDuration.WithLabelValues(job).Observe(duration.Seconds())
}

// RecordCatalogRefresh records a refresh attempt; assets is the new size on success
func RecordCatalogRefresh(source, status string, assets int) {
	CatalogRefreshes.WithLabelValues(source, status).Inc()
	if status == "success" {
		CatalogAssets.Set(float64(assets))
		CatalogLastRefresh.SetToCurrentTime()
	}
}

// RecordHTTPRequest records one served request
func RecordHTTPRequest(route, method string, code int, duration time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	HTTPDuration.WithLabelValues(route).Observe(duration.Seconds())
}

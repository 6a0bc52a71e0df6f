package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics - все счётчики сервиса в одном месте
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	ScrapeRequestsTotal   *prometheus.CounterVec
	ScrapeRequestDuration *prometheus.HistogramVec

	CacheHitsTotal   prometheus.Counter
	CacheMissesTotal prometheus.Counter

	RateLimitRejectionsTotal prometheus.Counter
	AuthFailuresTotal        prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jobapi_requests_total",
				Help: "Total number of HTTP requests processed",
			},
			[]string{"path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "jobapi_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"path"},
		),

		ScrapeRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jobapi_scrape_requests_total",
				Help: "Total number of upstream scrape requests per site",
			},
			[]string{"site", "status"},
		),
		ScrapeRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "jobapi_scrape_request_duration_seconds",
				Help:    "Upstream scrape request duration in seconds",
				Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"site"},
		),

		CacheHitsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "jobapi_cache_hits_total",
				Help: "Total number of search cache hits",
			},
		),
		CacheMissesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "jobapi_cache_misses_total",
				Help: "Total number of search cache misses",
			},
		),

		RateLimitRejectionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "jobapi_rate_limit_rejections_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
		),
		AuthFailuresTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "jobapi_auth_failures_total",
				Help: "Total number of rejected API key authentications",
			},
		),
	}
}

// NewForTesting регистрирует метрики в отдельном реестре,
// чтобы тесты не конфликтовали из-за глобального prometheus.DefaultRegisterer
func NewForTesting() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{Name: "jobapi_requests_total", Help: "Total number of HTTP requests processed"},
			[]string{"path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{Name: "jobapi_request_duration_seconds", Help: "HTTP request duration in seconds"},
			[]string{"path"},
		),
		ScrapeRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{Name: "jobapi_scrape_requests_total", Help: "Total number of upstream scrape requests per site"},
			[]string{"site", "status"},
		),
		ScrapeRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{Name: "jobapi_scrape_request_duration_seconds", Help: "Upstream scrape request duration in seconds"},
			[]string{"site"},
		),
		CacheHitsTotal: factory.NewCounter(
			prometheus.CounterOpts{Name: "jobapi_cache_hits_total", Help: "Total number of search cache hits"},
		),
		CacheMissesTotal: factory.NewCounter(
			prometheus.CounterOpts{Name: "jobapi_cache_misses_total", Help: "Total number of search cache misses"},
		),
		RateLimitRejectionsTotal: factory.NewCounter(
			prometheus.CounterOpts{Name: "jobapi_rate_limit_rejections_total", Help: "Total number of requests rejected by the rate limiter"},
		),
		AuthFailuresTotal: factory.NewCounter(
			prometheus.CounterOpts{Name: "jobapi_auth_failures_total", Help: "Total number of rejected API key authentications"},
		),
	}
}

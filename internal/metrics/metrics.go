package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

var (
	// HTTP metrics
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_requests_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status_code"},
	)

	// Steam Web API call metrics
	steamCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "steam_api_call_duration_seconds",
			Help:    "Steam Web API call duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"endpoint", "status_code"},
	)

	// Lookup metrics
	lookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profile_lookups_total",
			Help: "Total number of profile lookups",
		},
		[]string{"status"}, // success/invalid_format/not_found/upstream_error/misconfigured
	)

	libraryGames = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "profile_library_games",
			Help:    "Owned games per resolved profile",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		},
	)

	// Rate limiting metrics
	rateLimitDroppedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratelimit_dropped_total",
			Help: "Total number of requests dropped due to rate limiting",
		},
		[]string{"key_type"}, // ip
	)
)

// Init initializes the metrics
func Init() error {
	// Register metrics
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		steamCallDuration,
		lookupsTotal,
		libraryGames,
		rateLimitDroppedTotal,
	)

	return nil
}

// HTTPMetricsMiddleware records HTTP metrics
func HTTPMetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Process request
		err := c.Next()

		// Record metrics
		duration := time.Since(start).Seconds()
		method := c.Method()
		route := c.Route().Path
		if route == "" {
			route = c.Path()
		}
		statusCode := strconv.Itoa(c.Response().StatusCode())

		httpRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
		httpRequestDuration.WithLabelValues(method, route, statusCode).Observe(duration)

		return err
	}
}

// RecordSteamCall records metrics for Steam Web API calls
func RecordSteamCall(endpoint string, statusCode int, duration time.Duration) {
	statusStr := strconv.Itoa(statusCode)
	steamCallDuration.WithLabelValues(endpoint, statusStr).Observe(duration.Seconds())
}

// RecordLookup records the outcome of a profile lookup
func RecordLookup(status string) {
	lookupsTotal.WithLabelValues(status).Inc()
}

// RecordLibrarySize records the number of owned games in a resolved profile
func RecordLibrarySize(count int) {
	libraryGames.Observe(float64(count))
}

// RecordRateLimitDrop records rate limit drops
func RecordRateLimitDrop(keyType string) {
	rateLimitDroppedTotal.WithLabelValues(keyType).Inc()
}

// PrometheusHandler returns the Prometheus metrics handler
func PrometheusHandler() fiber.Handler {
	promHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c *fiber.Ctx) error {
		promHandler(c.Context())
		return nil
	}
}

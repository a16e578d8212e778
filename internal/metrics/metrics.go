package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Recommendation metrics
	intakeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_requests_total",
			Help: "Intake requests by selected interest",
		},
		[]string{"interest"},
	)

	intakeRecommendationsReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "intake_recommendations_returned",
			Help:    "Number of recommendations returned per intake request",
			Buckets: []float64{0, 1, 2, 4, 6, 8},
		},
		[]string{"kind"},
	)

	fluencySubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fluency_submissions_total",
			Help: "Graded AI fluency quizzes by level",
		},
		[]string{"level"},
	)

	cacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_lookups_total",
			Help: "Listing cache lookups by key and result",
		},
		[]string{"key", "result"},
	)

	dependencyHealth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_health",
			Help: "Health status of dependencies (1 = healthy, 0 = unhealthy)",
		},
		[]string{"dependency"},
	)
)

func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// RecordIntake counts one request per selected interest and the sizes of both result lists.
func RecordIntake(interests []string, opportunities, events int) {
	for _, i := range interests {
		intakeRequestsTotal.WithLabelValues(i).Inc()
	}
	intakeRecommendationsReturned.WithLabelValues("opportunity").Observe(float64(opportunities))
	intakeRecommendationsReturned.WithLabelValues("event").Observe(float64(events))
}

func RecordFluencySubmission(level string) {
	fluencySubmissionsTotal.WithLabelValues(level).Inc()
}

func RecordCacheLookup(key string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookupsTotal.WithLabelValues(key, result).Inc()
}

func SetDependencyHealth(dependency string, healthy bool) {
	value := 0.0
	if healthy {
		value = 1.0
	}
	dependencyHealth.WithLabelValues(dependency).Set(value)
}

func Handler() http.Handler {
	return promhttp.Handler()
}

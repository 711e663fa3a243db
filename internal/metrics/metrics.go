package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "newsapi_requests_total",
		Help: "Number of API requests grouped by endpoint and status.",
	}, []string{"endpoint", "status"})

	storeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "newsapi_store_failures_total",
		Help: "Number of failed document store operations grouped by collection.",
	}, []string{"collection"})

	rateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "newsapi_rate_limit_hits_total",
		Help: "Rate limiter activations grouped by limiter name.",
	}, []string{"limiter"})
)

// IncRequest increments the request counter.
func IncRequest(endpoint, status string) {
	apiRequests.WithLabelValues(endpoint, status).Inc()
}

// IncStoreFailure increments the store failure counter.
func IncStoreFailure(collection string) {
	storeFailures.WithLabelValues(collection).Inc()
}

// IncRateLimit increments the rate-limit hit counter.
func IncRateLimit(name string) {
	rateLimitHits.WithLabelValues(name).Inc()
}

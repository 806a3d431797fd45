package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatabaseQueryLatency records database query latency by operation.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "devconnect_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// GithubProxyRequests counts outbound GitHub API calls by outcome.
	GithubProxyRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_github_proxy_requests_total",
		Help: "Total outbound GitHub repository listing requests by outcome",
	}, []string{"outcome"})

	// AuthFailures counts rejected requests at the auth gate by reason.
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_auth_failures_total",
		Help: "Total requests rejected by the auth middleware by reason",
	}, []string{"reason"})
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pethotel_http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pethotel_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ChatQuestionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pethotel_chat_questions_total",
			Help: "Total number of chat questions by match status",
		},
		[]string{"status"},
	)

	QueryExecutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pethotel_query_executions_total",
			Help: "Total number of aggregation executions by query type and outcome",
		},
		[]string{"query_type", "outcome"},
	)

	QueryExecutionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pethotel_query_execution_duration_seconds",
			Help:    "Duration of snapshot load plus aggregation in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query_type"},
	)
)

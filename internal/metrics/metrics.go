package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	// HTTPRequestsTotal - общее количество HTTP запросов
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration - время обработки запроса
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP request in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	// HTTPResponseSize - размер ответа
	HTTPResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_response_size_bytes",
		Help:    "Size of HTTP response in bytes",
		Buckets: prometheus.ExponentialBuckets(100, 10, 8),
	}, []string{"method", "path"})
)

// Error Metrics
var (
	// ErrorResponsesTotal - ответы с ошибкой по коду
	ErrorResponsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "error_responses_total",
		Help: "Total number of translated error responses",
	}, []string{"code", "status"})

	// UnhandledErrorsTotal - ошибки, ушедшие в fallback 500
	UnhandledErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "unhandled_errors_total",
		Help: "Total number of errors answered with internal server error",
	}, []string{"layer"})
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTP
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "farmlink_http_requests_total",
		Help: "The total number of HTTP requests served",
	}, []string{"method", "route", "status"})

	HTTPLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "farmlink_http_request_duration_seconds",
		Help: "The latency of HTTP requests",
	}, []string{"method", "route"})

	// Catalog
	FilterResultSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "farmlink_filter_result_size",
		Help:    "The number of products returned per catalog filter pass",
		Buckets: prometheus.LinearBuckets(0, 5, 10),
	})

	// Chat
	ChatMessagesPosted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "farmlink_chat_messages_posted_total",
		Help: "The total number of chat messages appended to transcripts",
	})
)

func init() {
	prometheus.MustRegister(HTTPRequests)
	prometheus.MustRegister(HTTPLatency)
	prometheus.MustRegister(FilterResultSize)
	prometheus.MustRegister(ChatMessagesPosted)
}

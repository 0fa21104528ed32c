package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "prana",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Count of handled HTTP requests by method, route and status code.",
	}, []string{"method", "route", "code"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "prana",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	seededRows = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "prana",
		Subsystem: "seed",
		Name:      "rows_total",
		Help:      "Rows inserted by the startup seed, by table.",
	}, []string{"table"})
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration, seededRows)
}

// RecordRequest counts one handled request and observes its latency.
func RecordRequest(method, route, code string, elapsed time.Duration) {
	requestsTotal.WithLabelValues(method, route, code).Inc()
	requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordSeededRows adds to the per-table seed counter.
func RecordSeededRows(table string, n int) {
	if n <= 0 {
		return
	}
	seededRows.WithLabelValues(table).Add(float64(n))
}

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "laundryops",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests handled, partitioned by method, route, and status.",
		},
		[]string{"method", "route", "status"},
	)

	requestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "laundryops",
			Name:      "http_request_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)
)

// RegisterMetrics attaches the HTTP collectors to the supplied registerer.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, collector := range []prometheus.Collector{requestsTotal, requestDurationSeconds} {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// Metrics records request counts and latency. Uses the route template
// (c.FullPath) rather than the raw path to keep label cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		requestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		requestDurationSeconds.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

package router

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var metrics = []prometheus.Collector{
	requestCount,
	requestDuration,
}

// registerPrometheusMetrics registers all Prometheus metrics with the
// default registry.
func registerPrometheusMetrics() error {
	for _, collector := range metrics {
		if err := prometheus.Register(collector); err != nil {
			return fmt.Errorf("could not register %s with Prometheus", collector)
		}
	}

	return nil
}

// unregisterPrometheusMetrics unregisters all Prometheus metrics.
//
// This is needed so that tests can set up and tear down the router
// repeatedly.
func unregisterPrometheusMetrics() bool {
	for _, collector := range metrics {
		if ok := prometheus.Unregister(collector); !ok {
			return false
		}
	}

	return true
}

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests were processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

// MetricsMiddleware updates the Prometheus metrics for every request.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		url := c.FullPath()

		requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
		requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(time.Since(start).Seconds())
	}
}

package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpReqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Count of HTTP requests"},
		[]string{"path", "method", "status"},
	)
	httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"},
	)
)

//nolint:gochecknoinits
func init() { prometheus.MustRegister(httpReqTotal, httpLatency) }

// Metrics records request counts and latencies labeled by route template.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			httpReqTotal.WithLabelValues(path, c.Request().Method, strconv.Itoa(c.Response().Status)).Inc()
			httpLatency.WithLabelValues(path, c.Request().Method).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

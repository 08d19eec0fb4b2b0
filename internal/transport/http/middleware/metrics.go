package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// route 标签取路由模式（/orders/:id），不是原始 path，避免标签基数失控
var (
	httpReqTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mock",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Count of HTTP requests served by the mock API",
	}, []string{"route", "method", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mock",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of HTTP requests, simulated delay included",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
)

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route, method := routeOf(c), c.Request.Method
		httpReqTotal.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		httpLatency.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

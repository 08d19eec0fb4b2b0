// Package metrics 业务指标（HTTP 指标见 middleware.Metrics）
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	OrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "mock_orders_created_total", Help: "Orders created through the mock API"},
	)
	OrderStatusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "mock_order_status_changes_total", Help: "Order status transitions"},
		[]string{"from", "to"},
	)
	ValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "mock_validation_failures_total", Help: "Requests answered 400 (binding, validation or bad path id), by resource path segment"},
		[]string{"resource"},
	)
	UnmatchedRoutes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "mock_unmatched_routes_total", Help: "Calls that matched no registered route"},
		[]string{"method"},
	)
)

func init() {
	prometheus.MustRegister(OrdersCreated, OrderStatusChanges, ValidationFailures, UnmatchedRoutes)
}

// Package metrics exposes the service's Prometheus instrumentation.
// Collectors are registered on the default registry and served by the HTTP
// adapter under /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersPlaced counts orders created through checkout.
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Name:      "orders_placed_total",
		Help:      "Number of orders placed.",
	})

	// OrderTransitions counts accepted status transitions by target status.
	OrderTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace",
		Name:      "order_transitions_total",
		Help:      "Number of accepted order status transitions.",
	}, []string{"to"})

	// NotificationsDispatched counts notification dispatch outcomes.
	NotificationsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace",
		Name:      "notifications_dispatched_total",
		Help:      "Number of push notification dispatch attempts by result.",
	}, []string{"result"})

	// DriverCoordWrites counts driver position writes by outcome.
	DriverCoordWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace",
		Name:      "driver_coord_writes_total",
		Help:      "Number of driver position writes by outcome.",
	}, []string{"outcome"})
)

// Dispatch result label values.
const (
	DispatchDelivered = "delivered"
	DispatchNoTarget  = "no_target"
	DispatchFailed    = "failed"
)

// Coordinate write outcome label values.
const (
	CoordAccepted = "accepted"
	CoordRejected = "rejected"
)

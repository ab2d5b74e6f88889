// Package metrics defines and registers all custom Prometheus metrics for the
// marketplace API. It is the single source of truth for metric names, labels,
// and help strings; metrics register with the default registry at import time
// and are exported through the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// GigsCreatedTotal counts newly listed gigs.
// Label:
//   - category: the gig's marketplace category
var GigsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gigs_created_total",
		Help:      "Total number of gigs created, by category.",
	},
	[]string{"category"},
)

// OrdersCreatedTotal counts orders opened for payment (pending).
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders opened for payment.",
	},
)

// OrdersStatusTotal counts order status transitions.
// Label:
//   - status: the status the order moved into (e.g. "in_progress", "completed")
var OrdersStatusTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_status_total",
		Help:      "Total number of order status transitions, by target status.",
	},
	[]string{"status"},
)

// ReviewsCreatedTotal counts accepted reviews.
var ReviewsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_created_total",
		Help:      "Total number of reviews accepted.",
	},
)

// ChatMessagesTotal counts realtime relay outcomes.
// Label:
//   - result: "delivered" (recipient connected, message forwarded) or
//     "dropped" (recipient offline or send buffer full; best-effort relay)
var ChatMessagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_messages_total",
		Help:      "Total number of realtime chat relay attempts, by result.",
	},
	[]string{"result"},
)

// ChatConnections tracks currently connected websocket clients.
var ChatConnections = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "chat_connections",
		Help:      "Current number of connected websocket chat clients.",
	},
)

// Package metrics defines and registers all custom Prometheus metrics for
// the account system. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// AccountsCreatedTotal counts successfully created accounts.
// Label:
//   - role: the role assigned at creation ("admin", "user")
var AccountsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// AccountsDeletedTotal counts deleted accounts.
var AccountsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deleted_total",
		Help:      "Total number of accounts deleted.",
	},
)

// LookupsTotal counts account queries.
// Label:
//   - result: "hit" or "miss"
var LookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookups_total",
		Help:      "Total number of account lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts signed tokens handed out by the auth service.
// Label:
//   - kind: "access" or "refresh"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of tokens issued, by kind.",
	},
	[]string{"kind"},
)

// EventsPublishedTotal counts domain events handed to the event bus.
// Label:
//   - event: the event name (e.g. "account.created")
var EventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_published_total",
		Help:      "Total number of domain events published, by event name.",
	},
	[]string{"event"},
)

// EventsQueueDepth tracks events waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var EventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// DispatchDuration measures command/query handling end-to-end.
// Label:
//   - message: the concrete command or query type name
var DispatchDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dispatch_duration_seconds",
		Help:      "Duration of command/query dispatch from routing to handler return.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"message"},
)

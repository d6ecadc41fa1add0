// Package metrics defines all custom Prometheus metrics for the systems
// catalog API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry
// via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// SystemsCreatedTotal counts newly created catalog entries.
// Label:
//   - status: the status the entry was created with ("active", "inactive", "pending")
var SystemsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "systems_created_total",
		Help:      "Total number of catalog entries created, by initial status.",
	},
	[]string{"status"},
)

// SystemsUpdatedTotal counts successful partial updates.
var SystemsUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "systems_updated_total",
		Help:      "Total number of successful catalog entry updates.",
	},
)

// SystemsDeletedTotal counts hard deletions.
var SystemsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "systems_deleted_total",
		Help:      "Total number of catalog entries deleted.",
	},
)

// ChatRequestsTotal counts prompts answered by the mock chat responder.
var ChatRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_requests_total",
		Help:      "Total number of prompts handled by the mock chat responder.",
	},
)

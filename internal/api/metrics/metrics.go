// Package metrics defines and registers all custom Prometheus metrics for the
// vacations backend. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry via promauto at package
// load; both routers expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vacations"

// ── User metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success" or a short failure reason (e.g. "duplicate_email", "invalid")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts on both services.
// Labels:
//   - service: "vacations" or "statistics"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by service and result.",
	},
	[]string{"service", "result"},
)

// ── Vacation metrics ──────────────────────────────────────────────────────────

// VacationMutationsTotal counts successful create/update/delete operations.
// Label:
//   - operation: "create", "update" or "delete"
var VacationMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vacation_mutations_total",
		Help:      "Total number of successful vacation mutations, by operation.",
	},
	[]string{"operation"},
)

// LikesTotal counts like and unlike operations that succeeded.
// Label:
//   - action: "like" or "unlike"
var LikesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "likes_total",
		Help:      "Total number of successful like/unlike operations.",
	},
	[]string{"action"},
)

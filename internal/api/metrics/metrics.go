// Package metrics defines and registers all custom Prometheus metrics for the
// TMS backend. It is the single source of truth for metric names, labels, and
// help strings. Metrics are registered with the default registry at package
// init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tms"

// ProjectsCreatedTotal counts created projects.
// Label:
//   - assigned: "true" when the project was assigned to a team inline
var ProjectsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created.",
	},
	[]string{"assigned"},
)

// TeamsCreatedTotal counts created teams.
var TeamsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "teams_created_total",
		Help:      "Total number of teams created.",
	},
)

// AssignmentsTotal counts ledger entries written via the standalone
// assignProject endpoint.
var AssignmentsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignments_total",
		Help:      "Total number of project-to-team assignments recorded.",
	},
)

// AssignmentConflictsTotal counts assignment attempts rejected because the
// project already had a ledger entry.
var AssignmentConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignment_conflicts_total",
		Help:      "Total number of assignment attempts rejected as duplicates.",
	},
)

// RoleGrantsTotal counts users granted the ProjectManager role by the bulk
// admin operation.
var RoleGrantsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_grants_total",
		Help:      "Total number of users granted the ProjectManager role.",
	},
)

// AuditEventsTotal counts audit events accepted by the dispatcher.
// Label:
//   - action: audit action name (e.g. "project_assigned")
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events enqueued, by action.",
	},
	[]string{"action"},
)

// AuditEventsDroppedTotal counts audit events dropped because the dispatcher
// queue was full.
var AuditEventsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_dropped_total",
		Help:      "Total number of audit events dropped due to a full queue.",
	},
)

// LoginThrottledTotal counts logins rejected by the failed-login guard.
var LoginThrottledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_throttled_total",
		Help:      "Total number of login attempts rejected by the throttle.",
	},
)

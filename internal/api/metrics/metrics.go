// Package metrics defines and registers all custom Prometheus metrics for
// the PTI record-keeping API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry via
// promauto at package init; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pti"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: "client" or "inspector"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ── Inspection metrics ────────────────────────────────────────────────────────

// InspectionsCreatedTotal counts newly recorded inspections.
var InspectionsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inspections_created_total",
		Help:      "Total number of inspection records created.",
	},
)

// InspectionsUpdatedTotal counts partial updates applied to inspections.
var InspectionsUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inspections_updated_total",
		Help:      "Total number of inspection records updated.",
	},
)

// InspectionsDeletedTotal counts permanently deleted inspections.
var InspectionsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inspections_deleted_total",
		Help:      "Total number of inspection records deleted.",
	},
)

// MalformedExpiryDatesTotal counts records skipped by the expiring-soon
// query because their expiry date did not parse as DD-MM-YYYY. The query
// excludes such records silently; this counter keeps them visible.
var MalformedExpiryDatesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "malformed_expiry_dates_total",
		Help:      "Total number of records skipped during expiry scans due to unparseable expiry dates.",
	},
)

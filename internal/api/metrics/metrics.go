// Package metrics defines and registers all custom Prometheus metrics for
// the jewellery inventory API. It is the single source of truth for metric
// names, labels, and help strings. Registration happens at import time via
// promauto against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jewellery"

// ── Authentication metrics ────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts bearer tokens issued at registration and login.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued.",
	},
)

// GuardRejectionsTotal counts requests rejected by the access guard.
// Label:
//   - reason: "missing_credential", "expired_token", "invalid_token",
//     "unknown_user", or "forbidden"
var GuardRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_rejections_total",
		Help:      "Total number of requests rejected by authentication or role checks.",
	},
	[]string{"reason"},
)

// ── Inventory metrics ─────────────────────────────────────────────────────

// ItemsCreatedTotal counts newly registered inventory items.
// Label:
//   - metal_type: "gold", "silver", or "platinum"
var ItemsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_created_total",
		Help:      "Total number of inventory items created, by metal type.",
	},
	[]string{"metal_type"},
)

// PriceUpdatesTotal counts metal price updates.
var PriceUpdatesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_updates_total",
		Help:      "Total number of metal price updates.",
	},
)

// Package metrics defines and registers all custom Prometheus metrics for
// the LandMarket client core. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default registry on import. The client itself
// never serves them; an embedding process may expose the default registry
// if it wants them scraped.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "landmarket"

// LoginsTotal counts login exchanges by outcome.
// Label:
//   - result: "success", "rejected" (credentials refused), or "network"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login exchanges, by result.",
	},
	[]string{"result"},
)

// SessionHydrationsTotal counts startup hydrations from the credential
// store.
// Label:
//   - result: "restored" (complete record found) or "anonymous"
var SessionHydrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_hydrations_total",
		Help:      "Total number of session hydrations from the credential store, by result.",
	},
	[]string{"result"},
)

// WishlistTogglesTotal counts wishlist toggles by outcome.
// Label:
//   - result: "success", "rolled_back", or "rejected" (anonymous/in-flight)
var WishlistTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wishlist_toggles_total",
		Help:      "Total number of wishlist toggles, by result.",
	},
	[]string{"result"},
)

// WishlistRollbacksTotal counts optimistic flips undone after a failed
// remote write.
var WishlistRollbacksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wishlist_rollbacks_total",
		Help:      "Total number of optimistic wishlist updates rolled back on failure.",
	},
)

// APIRequestDuration measures backend round-trips.
// Labels:
//   - endpoint: logical endpoint name (e.g. "auth_login", "wishlist_list")
//   - outcome: "ok", "client_error", "server_error", or "network"
var APIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of backend REST round-trips.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"endpoint", "outcome"},
)

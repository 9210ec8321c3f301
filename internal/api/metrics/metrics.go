// Package metrics defines and registers all custom Prometheus metrics for the
// HazelLab catalog API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hazellab"

// LoginsTotal counts staff login attempts.
// Label:
//   - result: "success", "invalid_credentials", "inactive", "not_found", or "forbidden"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// AccountsCreatedTotal counts newly registered accounts.
// Label:
//   - role: the role assigned to the new account (e.g. "cliente", "admin")
var AccountsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// FeaturedCacheTotal counts featured-product cache lookups.
// Label:
//   - result: "hit" (served from Redis) or "miss" (loaded from Mongo)
var FeaturedCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "featured_cache_total",
		Help:      "Total number of featured-product cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// Package metrics defines and registers all custom Prometheus metrics for
// the orchid catalog API. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// CommentsTotal counts comment submissions by outcome.
// Label:
//   - result: "accepted" or "rejected" (one-comment-per-author rule)
var CommentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_total",
		Help:      "Total number of comment submissions, by result.",
	},
	[]string{"result"},
)

// OrchidsCreatedTotal counts orchids added to the catalog.
var OrchidsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orchids_created_total",
		Help:      "Total number of orchids created.",
	},
)

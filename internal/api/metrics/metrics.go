// Package metrics defines the custom Prometheus metrics for the CodexIQ
// review API. It is the single source of truth for metric names, labels, and
// help strings; metrics self-register with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "codexiq"

// ReviewsTotal counts review requests by source channel and outcome.
// Labels:
//   - source: "inline" or "remote"
//   - outcome: "ok" or the domain error kind (e.g. "validation", "upstream")
var ReviewsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_total",
		Help:      "Total number of review requests, by source channel and outcome.",
	},
	[]string{"source", "outcome"},
)

// ReviewDuration measures end-to-end review handling, including the content
// fetch and the completion call.
var ReviewDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "review_duration_seconds",
		Help:      "Duration of review requests from validation to provider response.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	},
	[]string{"source"},
)

// LoginsTotal counts login attempts by outcome ("ok" or "rejected").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// RegistrationsTotal counts successful account registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered users.",
	},
)

// RateLimitedTotal counts review requests rejected by the rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of review requests rejected by the per-user rate limiter.",
	},
)

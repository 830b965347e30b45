// Package metrics defines and registers the custom Prometheus metrics for the
// CMS API. HTTP request metrics come from echoprometheus; this package only
// covers auth, recovery and notification outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cms"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthRejectionsTotal counts requests rejected by the authorization gate.
// Label:
//   - reason: "no_token", "token_failed", "user_missing" or "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the authorization gate.",
	},
	[]string{"reason"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RecoveryFlowsTotal counts reset and invite flow outcomes.
// Labels:
//   - kind: "reset" or "invite"
//   - stage: "issued", "delivery_failed", "consumed" or "rejected"
var RecoveryFlowsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recovery_flows_total",
		Help:      "Total number of recovery token events, by kind and stage.",
	},
	[]string{"kind", "stage"},
)

// ── Traffic metrics ───────────────────────────────────────────────────────────

// RateLimitedTotal counts requests refused with 429.
// Label:
//   - bucket: "public", "auth" or "content"
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests refused by the rate limiter.",
	},
	[]string{"bucket"},
)

// RateLimitErrorsTotal counts limiter backend failures (requests are let
// through when this happens).
var RateLimitErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_errors_total",
		Help:      "Total number of rate limiter backend errors.",
	},
)

// UploadsTotal counts accepted uploads.
// Label:
//   - type: "image" or "pdf"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of accepted file uploads, by type.",
	},
	[]string{"type"},
)

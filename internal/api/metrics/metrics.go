// Package metrics defines the custom Prometheus metrics for the voting
// portal. It is the single source of truth for metric names, labels, and
// help strings; the echoprometheus middleware covers the generic HTTP side.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "voting"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (failure never distinguishes cause)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// VotesCastTotal counts recorded votes.
// Label:
//   - category: "female" or "male"
var VotesCastTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_cast_total",
		Help:      "Total number of votes recorded, by category.",
	},
	[]string{"category"},
)

// UsersCreatedTotal counts accounts created through the admin dashboard.
// Label:
//   - role: "student" or "admin"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// SessionsActive tracks sessions established minus sessions cleared. Expired
// sessions are not observed here; the gauge is a login/logout balance.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Sessions established by login and not yet cleared by logout.",
	},
)

// Package metrics defines and registers all custom Prometheus metrics for the
// interview practice API. It is the single source of truth for metric names,
// labels, and help strings. Registration happens at package init via promauto;
// the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "interview"

// AuthAttemptsTotal counts register/login attempts.
// Labels:
//   - action: "register" or "login"
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by action and result.",
	},
	[]string{"action", "result"},
)

// SessionsStartedTotal counts interview sessions opened.
var SessionsStartedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_started_total",
		Help:      "Total number of interview sessions started.",
	},
)

// SessionsFinishedTotal counts sessions that reached a terminal status.
// Label:
//   - status: "COMPLETED" or "CANCELLED"
var SessionsFinishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_finished_total",
		Help:      "Total number of interview sessions finished, by terminal status.",
	},
	[]string{"status"},
)

// RandomQuestionsServedTotal counts questions returned by the random endpoint.
var RandomQuestionsServedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "random_questions_served_total",
		Help:      "Total number of questions returned by random sampling.",
	},
)

// QuestionCacheTotal counts question cache lookups.
// Label:
//   - result: "hit" or "miss"
var QuestionCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "question_cache_total",
		Help:      "Total number of question cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

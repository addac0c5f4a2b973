// Package metrics defines all custom Prometheus metrics for the expense
// tracker API. It is the single source of truth for metric names, labels,
// and help strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "expense_tracker"

// RegistrationsTotal counts successful account registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "not_found", "rejected", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// TransactionsRecordedTotal counts ledger entries recorded.
// Label:
//   - kind: the transaction kind as submitted (e.g. "Expense", "Income")
var TransactionsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_recorded_total",
		Help:      "Total number of ledger entries recorded, by kind.",
	},
	[]string{"kind"},
)

// TransactionsDedupTotal counts duplicate-submission checks.
// Label:
//   - result: "hit" (replay, skipped) or "miss" (new entry, recorded)
var TransactionsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_dedup_total",
		Help:      "Total number of duplicate-submission checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// BudgetsSetTotal counts budget rows appended.
var BudgetsSetTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "budgets_set_total",
		Help:      "Total number of budget rows appended.",
	},
)

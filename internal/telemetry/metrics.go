// Package telemetry wires tracing and Prometheus metrics for the advisor.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DialogActionsTotal counts dialog actions returned, by intent and action type.
	DialogActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_dialog_actions_total",
		Help: "Dialog actions returned to the bot platform",
	}, []string{"intent", "action"})

	// SlotViolationsTotal counts re-prompts caused by a failed slot check.
	SlotViolationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_slot_violations_total",
		Help: "Slots rejected by validation and re-elicited",
	}, []string{"intent", "slot"})

	// DispatchErrorsTotal counts events that could not be dispatched.
	DispatchErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_dispatch_errors_total",
		Help: "Events rejected before reaching an intent handler",
	}, []string{"code"})

	// UnknownInvocationSourceTotal counts events whose invocationSource was
	// neither DialogCodeHook nor FulfillmentCodeHook.
	UnknownInvocationSourceTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "advisor_unknown_invocation_source_total",
		Help: "Events routed to fulfillment because invocationSource was unrecognized",
	})

	// DispatchLatency observes time spent inside intent handlers.
	DispatchLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "advisor_dispatch_latency_seconds",
		Help:    "Intent handler latency",
		Buckets: prometheus.DefBuckets,
	})
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ReviewersAssignedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "scholarship_reviewers_assigned_total",
	Help: "Number of review slots created by reviewer assignment",
})

var ReviewsSubmittedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "scholarship_reviews_submitted_total",
	Help: "Number of reviews submitted by decision",
}, []string{"decision"})

var StatusTransitionCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "scholarship_status_transitions_total",
	Help: "Number of application status transitions",
}, []string{"from", "to"})

var RejectedOperationCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "scholarship_rejected_operations_total",
	Help: "Number of engine operations refused by a rule",
}, []string{"operation"})

var EligibilityCheckCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "scholarship_eligibility_checks_total",
	Help: "Number of eligibility evaluations by result",
}, []string{"result"})

var OperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "scholarship_engine_operation_duration_seconds",
	Help: "Duration of engine operations including lock wait",
	Buckets: []float64{
		0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1, 2,
	},
}, []string{"operation"})

var SideEffectFailureCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "scholarship_side_effect_failures_total",
	Help: "Number of discarded audit log or event publishing failures",
}, []string{"kind"})

package triage

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds Prometheus metrics for the triage subsystem.
type Metrics struct {
	AssessmentsTotal   *prometheus.CounterVec
	AssessmentDuration *prometheus.HistogramVec
	RemoteOutcomes     *prometheus.CounterVec
	RemoteDuration     prometheus.Histogram
	Explanations       *prometheus.CounterVec
	NotifyFailures     prometheus.Counter
}

// NewMetrics registers and returns triage metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AssessmentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_assessments_total",
			Help: "Total assessments by risk level, department, and result source.",
		}, []string{"risk", "department", "source"}),
		AssessmentDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "intake_assessment_duration_seconds",
			Help:    "Duration of assessment runs in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8), // 1ms .. ~16s
		}, []string{"source"}),
		RemoteOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_remote_predictions_total",
			Help: "Remote predictor calls by outcome (ok, error).",
		}, []string{"outcome"}),
		RemoteDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "intake_remote_prediction_duration_seconds",
			Help:    "Duration of remote predictor calls in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 8), // 50ms .. ~6.4s
		}),
		Explanations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_explanations_total",
			Help: "Explanation generation attempts by outcome (ok, error).",
		}, []string{"outcome"}),
		NotifyFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "intake_notify_failures_total",
			Help: "Failed high-risk notification deliveries.",
		}),
	}

	reg.MustRegister(
		m.AssessmentsTotal,
		m.AssessmentDuration,
		m.RemoteOutcomes,
		m.RemoteDuration,
		m.Explanations,
		m.NotifyFailures,
	)

	return m
}

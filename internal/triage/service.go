package triage

import (
	"context"
	"errors"
	"time"

	"github.com/linnemanlabs/go-core/log"
	"github.com/oklog/ulid/v2"
)

// DefaultPredictTimeout bounds the remote predictor call when no budget is
// configured; the local engine answers if the remote is slower.
const DefaultPredictTimeout = 3 * time.Second

// ErrNoExplainer is returned by Explain when no explanation provider is
// configured.
var ErrNoExplainer = errors.New("no explanation provider configured")

// Predictor is the remote predictive service: symptoms and vitals in,
// partial department/risk/confidence out.
type Predictor interface {
	Predict(ctx context.Context, p *PatientData) (*RemoteAssessment, error)
}

// Explainer produces a human-readable rationale for a finished assessment.
type Explainer interface {
	Explain(ctx context.Context, a *Assessment) (string, error)
}

// Notifier delivers completed high-risk assessments to an external channel.
type Notifier interface {
	Send(ctx context.Context, a *Assessment) error
}

// Service is the business boundary for triage operations. The local engine
// always runs; the remote predictor, explainer, and notifier are optional
// and their absence or failure degrades to the local result, never to a
// user-facing error.
type Service struct {
	store     Store
	predictor Predictor
	explainer Explainer
	notifier  Notifier
	timeout   time.Duration
	logger    log.Logger
	metrics   *Metrics
}

// NewService creates a new triage service. predictor, explainer, notifier,
// and metrics may be nil; a non-positive timeout falls back to
// DefaultPredictTimeout.
func NewService(store Store, predictor Predictor, explainer Explainer, notifier Notifier, timeout time.Duration, logger log.Logger, m *Metrics) *Service {
	if logger == nil {
		logger = log.Nop()
	}
	if timeout <= 0 {
		timeout = DefaultPredictTimeout
	}
	return &Service{
		store:     store,
		predictor: predictor,
		explainer: explainer,
		notifier:  notifier,
		timeout:   timeout,
		logger:    logger,
		metrics:   m,
	}
}

// Assess classifies a patient record, enriches it with the remote predictor
// when one is configured and reachable, persists the assessment, and kicks
// off a high-risk notification. A remote failure is logged and absorbed:
// the caller always gets at least the local engine's opinion.
func (s *Service) Assess(ctx context.Context, p *PatientData) (*Assessment, error) {
	start := time.Now()

	local := Classify(p)
	result := local
	source := SourceLocal

	if s.predictor != nil {
		pctx, cancel := context.WithTimeout(ctx, s.timeout)
		remoteStart := time.Now()
		remote, err := s.predictor.Predict(pctx, p)
		cancel()

		if s.metrics != nil {
			s.metrics.RemoteDuration.Observe(time.Since(remoteStart).Seconds())
		}
		if err != nil {
			s.logger.Warn(ctx, "remote predictor unavailable, using local result", "error", err)
			if s.metrics != nil {
				s.metrics.RemoteOutcomes.WithLabelValues("error").Inc()
			}
		} else {
			result = Merge(local, remote)
			source = SourceMerged
			if s.metrics != nil {
				s.metrics.RemoteOutcomes.WithLabelValues("ok").Inc()
			}
		}
	}

	a := &Assessment{
		ID:        ulid.Make().String(),
		Patient:   *p,
		Result:    *result,
		Source:    source,
		CreatedAt: time.Now().UTC(),
		Duration:  time.Since(start).Seconds(),
	}

	if err := s.store.Put(ctx, a); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.AssessmentsTotal.WithLabelValues(string(a.Result.RiskLevel), string(a.Result.Department), string(source)).Inc()
		s.metrics.AssessmentDuration.WithLabelValues(string(source)).Observe(a.Duration)
	}

	s.logger.Info(ctx, "assessment complete",
		"assessment_id", a.ID,
		"risk", a.Result.RiskLevel,
		"department", a.Result.Department,
		"confidence", a.Result.ConfidenceScore,
		"source", source,
	)

	if s.notifier != nil && a.Result.RiskLevel == RiskHigh {
		// detach from the request so the notification survives the response
		go s.notify(context.WithoutCancel(ctx), a)
	}

	return a, nil
}

// Get retrieves an assessment by ID.
func (s *Service) Get(ctx context.Context, id string) (*Assessment, bool, error) {
	return s.store.Get(ctx, id)
}

// Explain attaches a generated rationale to a stored assessment and returns
// the updated value. Already-explained assessments are returned as-is.
func (s *Service) Explain(ctx context.Context, id string) (*Assessment, bool, error) {
	a, ok, err := s.store.Get(ctx, id)
	if err != nil || !ok {
		return nil, ok, err
	}
	if a.Explanation != "" {
		return a, true, nil
	}
	if s.explainer == nil {
		return nil, true, ErrNoExplainer
	}

	text, err := s.explainer.Explain(ctx, a)
	if err != nil {
		if s.metrics != nil {
			s.metrics.Explanations.WithLabelValues("error").Inc()
		}
		return nil, true, err
	}
	if s.metrics != nil {
		s.metrics.Explanations.WithLabelValues("ok").Inc()
	}

	a.Explanation = text
	if err := s.store.Put(ctx, a); err != nil {
		return nil, true, err
	}
	return a, true, nil
}

// Analytics summarizes stored assessments.
func (s *Service) Analytics(ctx context.Context) (*AnalyticsReport, error) {
	return s.store.Analytics(ctx)
}

func (s *Service) notify(ctx context.Context, a *Assessment) {
	if err := s.notifier.Send(ctx, a); err != nil {
		s.logger.Error(ctx, err, "high-risk notification failed", "assessment_id", a.ID)
		if s.metrics != nil {
			s.metrics.NotifyFailures.Inc()
		}
	}
}

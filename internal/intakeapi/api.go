// Package intakeapi exposes the patient intake HTTP API.
package intakeapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/linnemanlabs/go-core/log"
	"github.com/linnemanlabs/go-core/xerrors"

	"github.com/linnemanlabs/intake/internal/hospital"
	"github.com/linnemanlabs/intake/internal/triage"
)

// TriageService defines the business operations intakeapi needs.
type TriageService interface {
	Assess(ctx context.Context, p *triage.PatientData) (*triage.Assessment, error)
	Get(ctx context.Context, id string) (*triage.Assessment, bool, error)
	Explain(ctx context.Context, id string) (*triage.Assessment, bool, error)
	Analytics(ctx context.Context) (*triage.AnalyticsReport, error)
}

// HospitalLocator finds the nearest hospital to a coordinate.
type HospitalLocator interface {
	Nearest(ctx context.Context, lat, lon float64) (*hospital.Hospital, error)
}

// API holds dependencies for HTTP handlers.
type API struct {
	logger    log.Logger
	svc       TriageService
	hospitals HospitalLocator
}

// New creates a new API handler. hospitals may be nil; the nearest-hospital
// endpoint then answers 503.
func New(logger log.Logger, svc TriageService, hospitals HospitalLocator) *API {
	if logger == nil {
		logger = log.Nop()
	}
	if svc == nil {
		panic(xerrors.New("triage service is required"))
	}
	return &API{
		logger:    logger,
		svc:       svc,
		hospitals: hospitals,
	}
}

// RegisterRoutes attaches API endpoints to the router.
func (a *API) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/assessments", a.handleCreateAssessment)
		r.Get("/assessments/{id}", a.handleGetAssessment)
		r.Post("/assessments/{id}/explain", a.handleExplainAssessment)
		r.Get("/catalog/symptoms", a.handleListSymptoms)
		r.Get("/catalog/conditions", a.handleListConditions)
		r.Get("/analytics", a.handleAnalytics)
		r.Post("/hospitals/nearest", a.handleNearestHospital)
	})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package intakeapi

import (
	"errors"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-chi/chi/v5"

	"github.com/linnemanlabs/intake/internal/triage"
)

const maxAge = 130

func (a *API) handleCreateAssessment(w http.ResponseWriter, r *http.Request) {
	var p triage.PatientData
	if err := decodeJSON(r, &p); err != nil {
		http.Error(w, `{"error":"invalid payload"}`, http.StatusBadRequest)
		return
	}
	if msg := validatePatient(&p); msg != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	assessment, err := a.svc.Assess(r.Context(), &p)
	if err != nil {
		a.logger.Error(r.Context(), err, "assessment failed")
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}

	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(
		attribute.String("intake.assessment.id", assessment.ID),
		attribute.String("intake.assessment.risk", string(assessment.Result.RiskLevel)),
		attribute.String("intake.assessment.department", string(assessment.Result.Department)),
	)

	writeJSON(w, http.StatusCreated, assessment)
}

func (a *API) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(attribute.String("intake.assessment.id", id))

	assessment, ok, err := a.svc.Get(r.Context(), id)
	if err != nil {
		a.logger.Error(r.Context(), err, "failed to get assessment", "id", id)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

func (a *API) handleExplainAssessment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(attribute.String("intake.assessment.id", id))

	assessment, ok, err := a.svc.Explain(r.Context(), id)
	if err != nil {
		if errors.Is(err, triage.ErrNoExplainer) {
			http.Error(w, `{"error":"explanations not configured"}`, http.StatusServiceUnavailable)
			return
		}
		a.logger.Error(r.Context(), err, "failed to explain assessment", "id", id)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

func (a *API) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	rep, err := a.svc.Analytics(r.Context())
	if err != nil {
		a.logger.Error(r.Context(), err, "analytics query failed")
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, rep)
}

// validatePatient rejects only what the engine cannot sensibly absorb.
// Unknown symptom or condition names are accepted and ignored downstream.
func validatePatient(p *triage.PatientData) string {
	if p.Age < 0 || p.Age > maxAge {
		return "age out of range"
	}
	switch p.Gender {
	case "", triage.GenderMale, triage.GenderFemale, triage.GenderOther:
	default:
		return "invalid gender"
	}
	return ""
}

package intakeapi

import (
	"net/http"

	"github.com/linnemanlabs/intake/internal/catalog"
)

type symptomEntry struct {
	Name        string `json:"name"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

type conditionEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// The catalog endpoints feed the intake form's pickers. Weight vectors stay
// internal; clients only see names, severities, and descriptions.

func (a *API) handleListSymptoms(w http.ResponseWriter, _ *http.Request) {
	names := catalog.AllSymptoms()
	out := make([]symptomEntry, 0, len(names))
	for _, name := range names {
		s, ok := catalog.SymptomByName(name)
		if !ok {
			continue
		}
		out = append(out, symptomEntry{
			Name:        s.Name,
			Severity:    string(s.Severity),
			Description: s.Description,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"symptoms": out})
}

func (a *API) handleListConditions(w http.ResponseWriter, _ *http.Request) {
	names := catalog.AllConditions()
	out := make([]conditionEntry, 0, len(names))
	for _, name := range names {
		c, ok := catalog.ConditionByName(name)
		if !ok {
			continue
		}
		out = append(out, conditionEntry{
			Name:        c.Name,
			Description: c.Description,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"conditions": out})
}

package triage

import "github.com/linnemanlabs/intake/internal/catalog"

// RemoteAssessment is the partial result returned by the remote predictive
// service. Nil fields mean the remote made no claim and the local value
// stands.
type RemoteAssessment struct {
	Department *catalog.Department `json:"department,omitempty"`
	RiskLevel  *RiskLevel          `json:"risk_level,omitempty"`
	Confidence *int                `json:"confidence,omitempty"`
}

// Merge overlays remote headline fields onto a local result, returning a new
// value. Local contributing factors and recommendations always survive; the
// wait-time priority is re-derived from the final risk level so the
// priority/risk coupling holds after the overwrite. Remote values outside
// the closed sets are ignored rather than propagated.
func Merge(local *TriageResult, remote *RemoteAssessment) *TriageResult {
	out := *local
	out.ContributingFactors = append([]Factor(nil), local.ContributingFactors...)
	out.Recommendations = append([]string(nil), local.Recommendations...)

	if remote == nil {
		return &out
	}

	if remote.Department != nil && catalog.ValidDepartment(*remote.Department) {
		out.Department = *remote.Department
	}
	if remote.RiskLevel != nil && remote.RiskLevel.Rank() > 0 {
		out.RiskLevel = *remote.RiskLevel
		out.WaitTimePriority = waitTimePriority(out.RiskLevel)
	}
	if remote.Confidence != nil {
		c := *remote.Confidence
		if c < 0 {
			c = 0
		}
		if c > 100 {
			c = 100
		}
		out.ConfidenceScore = c
	}

	return &out
}

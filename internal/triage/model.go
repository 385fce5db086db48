package triage

import (
	"time"

	"github.com/linnemanlabs/intake/internal/catalog"
)

// Gender is the closed set shared with the intake form's selection widget.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// EmergencyContact is passed through untouched; it never influences
// classification.
type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// Vitals holds the measured vital signs. A zero value means "not provided"
// and is excluded from scoring rather than treated as an extreme reading.
type Vitals struct {
	SystolicBP       float64 `json:"systolic_bp,omitempty"`
	DiastolicBP      float64 `json:"diastolic_bp,omitempty"`
	HeartRate        float64 `json:"heart_rate,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
	OxygenSaturation float64 `json:"oxygen_saturation,omitempty"`
}

// PatientData is the input to one classification call. The engine never
// mutates it.
type PatientData struct {
	PatientID             string             `json:"patient_id"`
	Name                  string             `json:"name"`
	Age                   int                `json:"age"`
	Gender                Gender             `json:"gender"`
	Symptoms              []string           `json:"symptoms"`
	Vitals                Vitals             `json:"vitals"`
	PreExistingConditions []string           `json:"pre_existing_conditions,omitempty"`
	EmergencyContacts     []EmergencyContact `json:"emergency_contacts,omitempty"`
	UploadedReport        string             `json:"uploaded_report,omitempty"`
}

// RiskLevel is the overall urgency tier, totally ordered Low < Medium < High.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Rank orders risk levels; unknown values rank below Low.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	default:
		return 0
	}
}

// Factor is one rule-firing explanation item included for transparency.
type Factor struct {
	Factor      string           `json:"factor"`
	Description string           `json:"description"`
	Impact      catalog.Severity `json:"impact"`
}

// TriageResult is the outcome of one classification call. It is never
// mutated after creation; callers that fold in remote data build a new value
// via Merge.
type TriageResult struct {
	RiskLevel           RiskLevel          `json:"risk_level"`
	Department          catalog.Department `json:"department"`
	ConfidenceScore     int                `json:"confidence_score"`
	ContributingFactors []Factor           `json:"contributing_factors"`
	Recommendations     []string           `json:"recommendations"`
	WaitTimePriority    int                `json:"wait_time_priority"`
}

// Source records which classifier produced the result's headline fields.
type Source string

const (
	// SourceLocal means the local rule engine alone produced the result.
	SourceLocal Source = "local"

	// SourceMerged means remote predictions overwrote the headline fields
	// while the local engine supplied factors and recommendations.
	SourceMerged Source = "merged"
)

// Assessment is one stored triage run: the submitted patient record plus the
// final (possibly merged) result.
type Assessment struct {
	ID          string       `json:"id"`
	Patient     PatientData  `json:"patient"`
	Result      TriageResult `json:"result"`
	Source      Source       `json:"source"`
	Explanation string       `json:"explanation,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	Duration    float64      `json:"duration_seconds,omitempty"`
}

// AnalyticsReport summarizes stored assessments for the analytics endpoint.
type AnalyticsReport struct {
	TotalAssessments int            `json:"total_assessments"`
	HighRisk         int            `json:"high_risk"`
	ByDepartment     map[string]int `json:"by_department"`
	ByRiskLevel      map[string]int `json:"by_risk_level"`
}

// Package catalog holds the static rule tables the triage engine evaluates:
// the department set, the symptom and condition vocabularies, vital-sign
// threshold bands, and recommendation templates. The tables are process-wide,
// read-only, and shared with any UI or voice-input consumer so the
// user-facing vocabulary and the engine-recognized vocabulary never diverge.
//
// Policy lives here as data; the evaluation algorithm lives in
// internal/triage. Threshold and weight values are tuning constants, not
// clinical guidelines.
package catalog

// Department is a member of the closed set of referral departments.
type Department string

const (
	Emergency        Department = "Emergency"
	Cardiology       Department = "Cardiology"
	Neurology        Department = "Neurology"
	Pulmonology      Department = "Pulmonology"
	Gastroenterology Department = "Gastroenterology"
	Orthopedics      Department = "Orthopedics"
	Endocrinology    Department = "Endocrinology"
	Urology          Department = "Urology"
	Nephrology       Department = "Nephrology"
	ENT              Department = "ENT"
	Ophthalmology    Department = "Ophthalmology"
	Gynecology       Department = "Gynecology"
	Psychiatry       Department = "Psychiatry"
	Dermatology      Department = "Dermatology"
	GeneralMedicine  Department = "General Medicine"
)

// departmentPriority is the tie-break order for department scoring.
// Emergency comes first so equal scores resolve toward safety; General
// Medicine comes last so a tied specialty always beats the catch-all.
var departmentPriority = []Department{
	Emergency,
	Cardiology,
	Neurology,
	Pulmonology,
	Gastroenterology,
	Orthopedics,
	Endocrinology,
	Urology,
	Nephrology,
	ENT,
	Ophthalmology,
	Gynecology,
	Psychiatry,
	Dermatology,
	GeneralMedicine,
}

// Departments returns the closed department set in tie-break priority order.
func Departments() []Department {
	out := make([]Department, len(departmentPriority))
	copy(out, departmentPriority)
	return out
}

// ValidDepartment reports whether d is a member of the closed department set.
func ValidDepartment(d Department) bool {
	for _, p := range departmentPriority {
		if p == d {
			return true
		}
	}
	return false
}

// Severity is the impact tier attached to a fired rule.
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// Rank orders severities for max-aggregation and factor sorting.
// Unknown values rank below Low.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	default:
		return 0
	}
}

// MaxSeverity returns the higher-ranked of a and b.
func MaxSeverity(a, b Severity) Severity {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

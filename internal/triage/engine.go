package triage

import (
	"fmt"
	"math"
	"sort"

	"github.com/linnemanlabs/intake/internal/catalog"
)

// Confidence heuristic constants. Confidence is a transparency signal, not a
// calibrated probability.
const (
	confidenceBase         = 70
	confidenceMatchBonus   = 5   // per symptom corroborating the winning department
	confidenceMatchCap     = 20  // cap on the corroboration bonus
	confidenceClosePenalty = 15  // applied when the top two departments are close
	confidenceCloseMargin  = 2.0 // score gap under which the signal counts as ambiguous
	confidenceNoSymptoms   = 25  // fixed low confidence for an empty symptom set
)

// Age bounds for the escalation rule: very young and elderly patients get a
// Low tier raised to Medium. Age 0 is the intake form's zero value and is
// treated as not provided.
const (
	ageEscalateUnder = 5
	ageEscalateOver  = 65
)

// Classify converts a patient record into a structured risk assessment. It
// is pure and total: no I/O, no shared mutable state, and no failure mode.
// Malformed numerics are clamped or ignored, and an empty symptom set
// degrades to a low-confidence General Medicine result. Identical input
// always produces identical output.
func Classify(p *PatientData) *TriageResult {
	v := sanitizeVitals(p.Vitals)
	symptoms := dedupe(p.Symptoms)
	conditions := dedupe(p.PreExistingConditions)

	vitalFactors, vitalTier := scoreVitals(v)
	symptomFactors, symptomTier := scoreSymptoms(symptoms)
	dept, matched, top, second, conditionFactors := scoreDepartments(symptoms, conditions)

	risk := aggregateRisk(vitalTier, symptomTier, p.Age)

	factors := make([]Factor, 0, len(vitalFactors)+len(symptomFactors)+len(conditionFactors))
	factors = append(factors, vitalFactors...)
	factors = append(factors, symptomFactors...)
	factors = append(factors, conditionFactors...)
	// Severity-first presentation; stable sort preserves evaluation order
	// (vitals, then symptoms, then conditions) within a tier.
	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].Impact.Rank() > factors[j].Impact.Rank()
	})

	return &TriageResult{
		RiskLevel:           risk,
		Department:          dept,
		ConfidenceScore:     confidence(len(symptoms), matched, top, second),
		ContributingFactors: factors,
		Recommendations:     recommend(risk, dept, len(symptoms) > 0),
		WaitTimePriority:    waitTimePriority(risk),
	}
}

// sanitizeVitals maps NaN, infinite, and negative readings to zero so they
// are excluded from scoring instead of firing false extremes.
func sanitizeVitals(v Vitals) Vitals {
	clean := func(x float64) float64 {
		if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
			return 0
		}
		return x
	}
	return Vitals{
		SystolicBP:       clean(v.SystolicBP),
		DiastolicBP:      clean(v.DiastolicBP),
		HeartRate:        clean(v.HeartRate),
		Temperature:      clean(v.Temperature),
		OxygenSaturation: clean(v.OxygenSaturation),
	}
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func vitalValue(kind catalog.VitalKind, v Vitals) float64 {
	switch kind {
	case catalog.VitalHeartRate:
		return v.HeartRate
	case catalog.VitalTemperature:
		return v.Temperature
	case catalog.VitalOxygenSaturation:
		return v.OxygenSaturation
	case catalog.VitalSystolicBP:
		return v.SystolicBP
	case catalog.VitalDiastolicBP:
		return v.DiastolicBP
	default:
		return 0
	}
}

// scoreVitals evaluates the catalog's threshold bands plus the compound
// rules. Each out-of-band vital emits one factor; the overall tier is the
// maximum across fired rules.
func scoreVitals(v Vitals) ([]Factor, catalog.Severity) {
	var factors []Factor
	var tier catalog.Severity

	for _, rule := range catalog.VitalRules() {
		val := vitalValue(rule.Kind, v)
		if val <= 0 {
			continue // not provided
		}
		for _, band := range rule.Bands {
			if !band.Fires(val) {
				continue
			}
			factors = append(factors, Factor{
				Factor:      band.Factor,
				Description: fmt.Sprintf(band.Description, val),
				Impact:      band.Severity,
			})
			tier = catalog.MaxSeverity(tier, band.Severity)
			break // first matching band wins
		}
	}

	for _, rule := range catalog.CompoundVitalRules() {
		if rule.HeartRateAbove > 0 && (v.HeartRate <= 0 || v.HeartRate <= rule.HeartRateAbove) {
			continue
		}
		if rule.TemperatureAbove > 0 && (v.Temperature <= 0 || v.Temperature <= rule.TemperatureAbove) {
			continue
		}
		factors = append(factors, Factor{
			Factor:      rule.Factor,
			Description: fmt.Sprintf(rule.Description, v.HeartRate, v.Temperature),
			Impact:      rule.Severity,
		})
		tier = catalog.MaxSeverity(tier, rule.Severity)
	}

	return factors, tier
}

// scoreSymptoms derives the symptom severity tier and the factors for
// symptoms of Medium impact or higher. Names outside the catalog are
// ignored.
func scoreSymptoms(symptoms []string) ([]Factor, catalog.Severity) {
	var factors []Factor
	var tier catalog.Severity

	for _, name := range symptoms {
		s, ok := catalog.SymptomByName(name)
		if !ok {
			continue
		}
		tier = catalog.MaxSeverity(tier, s.Severity)
		if s.Severity.Rank() >= catalog.SeverityMedium.Rank() {
			factors = append(factors, Factor{
				Factor:      s.Name,
				Description: s.Description,
				Impact:      s.Severity,
			})
		}
	}
	return factors, tier
}

// scoreDepartments sums symptom weight vectors, boosts them with
// pre-existing conditions, and selects the winner. Ties resolve by the
// catalog's fixed priority order (Emergency first), making the choice
// deterministic for identical input. It also reports how many symptoms
// corroborate the winner, the top two scores, and the condition factors
// that influenced the winner.
func scoreDepartments(symptoms, conditions []string) (catalog.Department, int, float64, float64, []Factor) {
	scores := make(map[catalog.Department]float64)

	for _, name := range symptoms {
		s, ok := catalog.SymptomByName(name)
		if !ok {
			continue
		}
		for d, w := range s.Weights {
			scores[d] += w
		}
	}
	for _, name := range conditions {
		c, ok := catalog.ConditionByName(name)
		if !ok {
			continue
		}
		for d, w := range c.Boosts {
			scores[d] += w
		}
	}

	// Strict greater-than over the priority order: an earlier department
	// keeps the win on an exact tie. With no scored weights at all the
	// assessment defaults to General Medicine.
	winner := catalog.GeneralMedicine
	var top float64
	for _, d := range catalog.Departments() {
		if scores[d] > top {
			winner = d
			top = scores[d]
		}
	}

	var second float64
	for d, sc := range scores {
		if d != winner && sc > second {
			second = sc
		}
	}

	matched := 0
	for _, name := range symptoms {
		if s, ok := catalog.SymptomByName(name); ok && s.Weights[winner] > 0 {
			matched++
		}
	}

	var conditionFactors []Factor
	for _, name := range conditions {
		c, ok := catalog.ConditionByName(name)
		if !ok || c.Boosts[winner] <= 0 {
			continue
		}
		conditionFactors = append(conditionFactors, Factor{
			Factor:      c.Name,
			Description: c.Description,
			Impact:      catalog.SeverityLow,
		})
	}

	return winner, matched, top, second, conditionFactors
}

// aggregateRisk takes the maximum of the vital and symptom tiers, then
// applies the age adjustment: under-5 and over-65 patients never come out
// Low. Age 0 means not provided and is skipped.
func aggregateRisk(vitalTier, symptomTier catalog.Severity, age int) RiskLevel {
	risk := riskFromSeverity(catalog.MaxSeverity(vitalTier, symptomTier))
	if risk == RiskLow && age > 0 && (age < ageEscalateUnder || age > ageEscalateOver) {
		risk = RiskMedium
	}
	return risk
}

func riskFromSeverity(s catalog.Severity) RiskLevel {
	switch s {
	case catalog.SeverityHigh:
		return RiskHigh
	case catalog.SeverityMedium:
		return RiskMedium
	default:
		return RiskLow
	}
}

func severityForRisk(r RiskLevel) catalog.Severity {
	switch r {
	case RiskHigh:
		return catalog.SeverityHigh
	case RiskMedium:
		return catalog.SeverityMedium
	default:
		return catalog.SeverityLow
	}
}

// confidence starts from a base value, rewards symptoms that corroborate
// the winning department, and penalizes an ambiguous top-two gap.
func confidence(symptomCount, matched int, top, second float64) int {
	if symptomCount == 0 {
		return confidenceNoSymptoms
	}

	c := confidenceBase

	bonus := matched * confidenceMatchBonus
	if bonus > confidenceMatchCap {
		bonus = confidenceMatchCap
	}
	c += bonus

	if second > 0 && top-second < confidenceCloseMargin {
		c -= confidenceClosePenalty
	}

	if c < 0 {
		c = 0
	}
	if c > 100 {
		c = 100
	}
	return c
}

// recommend assembles the urgency line plus department guidance. An empty
// symptom set at Low risk gets plain checkup advice instead.
func recommend(risk RiskLevel, dept catalog.Department, hasSymptoms bool) []string {
	if !hasSymptoms && risk == RiskLow {
		return []string{catalog.GeneralCheckupAdvice}
	}
	recs := make([]string, 0, 4)
	recs = append(recs, catalog.UrgencyAdvice(severityForRisk(risk)))
	recs = append(recs, catalog.DepartmentAdvice(dept)...)
	return recs
}

// waitTimePriority maps risk to the queue tier: High=1, Medium=2, Low=3.
func waitTimePriority(risk RiskLevel) int {
	switch risk {
	case RiskHigh:
		return 1
	case RiskMedium:
		return 2
	default:
		return 3
	}
}

package catalog

// urgencyAdvice is the always-included recommendation line, scaled to the
// final risk tier.
var urgencyAdvice = map[Severity]string{
	SeverityHigh:   "Seek emergency medical attention immediately",
	SeverityMedium: "Seek medical attention promptly, within the next 24 hours",
	SeverityLow:    "Monitor your symptoms and consult a doctor if they persist or worsen",
}

// GeneralCheckupAdvice is returned when no symptoms were reported.
const GeneralCheckupAdvice = "Schedule a routine check-up with a general physician"

// departmentAdvice holds department-specific guidance lines appended after
// the urgency line.
var departmentAdvice = map[Department][]string{
	Emergency: {
		"Go to the nearest emergency department or call emergency services",
		"Do not drive yourself if symptoms are severe",
	},
	Cardiology: {
		"Avoid physical exertion and monitor for chest pain recurrence",
		"Keep a record of episodes, including time and duration",
	},
	Neurology: {
		"Note the time symptoms started; sudden neurological changes are time-critical",
		"Avoid driving or operating machinery until assessed",
	},
	Pulmonology: {
		"Rest in an upright position and avoid smoke or other airway irritants",
		"Seek immediate help if breathing worsens at rest",
	},
	Gastroenterology: {
		"Stay hydrated with small, frequent sips of fluid",
		"Avoid solid food until symptoms settle",
	},
	Orthopedics: {
		"Rest and immobilize the affected area",
		"Apply ice and avoid weight-bearing until assessed",
	},
	Endocrinology: {
		"Monitor blood glucose if a meter is available",
		"Maintain regular meals and hydration until reviewed",
	},
	Urology: {
		"Increase fluid intake unless advised otherwise",
		"Collect a urine sample before your appointment if possible",
	},
	Nephrology: {
		"Avoid anti-inflammatory painkillers until reviewed",
		"Track fluid intake and urine output if practical",
	},
	ENT: {
		"Avoid inserting anything into the affected ear or nose",
		"Use saline rinses for nasal symptoms if tolerated",
	},
	Ophthalmology: {
		"Avoid rubbing the affected eye",
		"Rest your eyes and avoid bright screens until assessed",
	},
	Gynecology: {
		"Track symptom timing relative to your cycle",
		"Seek urgent care for heavy bleeding or severe pain",
	},
	Psychiatry: {
		"Reach out to someone you trust; avoid being alone if distress is severe",
		"Contact a crisis line immediately if you have thoughts of self-harm",
	},
	Dermatology: {
		"Avoid scratching and keep the affected area clean and dry",
		"Photograph the area to track changes before your appointment",
	},
	GeneralMedicine: {
		"Rest, stay hydrated, and track your temperature",
	},
}

// UrgencyAdvice returns the generic recommendation for a risk tier.
func UrgencyAdvice(s Severity) string {
	return urgencyAdvice[s]
}

// DepartmentAdvice returns department-specific guidance lines. The returned
// slice is a copy.
func DepartmentAdvice(d Department) []string {
	lines := departmentAdvice[d]
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

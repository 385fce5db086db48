package catalog

// VitalKind identifies which measurement a rule reads.
type VitalKind string

const (
	VitalHeartRate        VitalKind = "heart_rate"
	VitalTemperature      VitalKind = "temperature"
	VitalOxygenSaturation VitalKind = "oxygen_saturation"
	VitalSystolicBP       VitalKind = "systolic_bp"
	VitalDiastolicBP      VitalKind = "diastolic_bp"
)

// VitalBand is one out-of-range band for a vital sign. Exactly one of Below
// or Above is set (zero means unused): the band fires when value < Below or
// value > Above. Description is a fmt template receiving the measured value.
type VitalBand struct {
	Below       float64
	Above       float64
	Severity    Severity
	Factor      string
	Description string
}

// Fires reports whether the band matches the given value.
func (b VitalBand) Fires(v float64) bool {
	if b.Below != 0 {
		return v < b.Below
	}
	if b.Above != 0 {
		return v > b.Above
	}
	return false
}

// VitalRule is the full band set for one vital sign. Bands are evaluated in
// order and the first match wins, so narrower (more severe) bands come first.
// A value matching no band is in the normal range and emits no factor.
type VitalRule struct {
	Kind  VitalKind
	Label string
	Bands []VitalBand
}

// vitalRuleTable holds the threshold bands per vital, in evaluation order
// (heart rate, temperature, oxygen saturation, blood pressure). The bounds
// are tuning constants, not clinical guidelines.
var vitalRuleTable = []VitalRule{
	{
		Kind:  VitalHeartRate,
		Label: "Heart Rate",
		Bands: []VitalBand{
			{Below: 40, Severity: SeverityHigh, Factor: "Severe bradycardia", Description: "Heart rate of %.0f bpm is critically below the normal range of 60-100"},
			{Below: 60, Severity: SeverityMedium, Factor: "Bradycardia", Description: "Heart rate of %.0f bpm is below the normal range of 60-100"},
			{Above: 130, Severity: SeverityHigh, Factor: "Severe tachycardia", Description: "Heart rate of %.0f bpm is critically above the normal range of 60-100"},
			{Above: 100, Severity: SeverityMedium, Factor: "Tachycardia", Description: "Heart rate of %.0f bpm is above the normal range of 60-100"},
		},
	},
	{
		Kind:  VitalTemperature,
		Label: "Temperature",
		Bands: []VitalBand{
			{Below: 35, Severity: SeverityHigh, Factor: "Hypothermia", Description: "Body temperature of %.1f °C is dangerously low"},
			{Below: 36.1, Severity: SeverityLow, Factor: "Low body temperature", Description: "Body temperature of %.1f °C is below the normal range of 36.1-37.5"},
			{Above: 39, Severity: SeverityHigh, Factor: "High fever", Description: "Body temperature of %.1f °C indicates a high fever"},
			{Above: 37.5, Severity: SeverityMedium, Factor: "Fever", Description: "Body temperature of %.1f °C is above the normal range of 36.1-37.5"},
		},
	},
	{
		Kind:  VitalOxygenSaturation,
		Label: "Oxygen Saturation",
		Bands: []VitalBand{
			{Below: 90, Severity: SeverityHigh, Factor: "Severe hypoxia", Description: "Oxygen saturation of %.0f%% is critically below the normal minimum of 95%%"},
			{Below: 95, Severity: SeverityMedium, Factor: "Mild hypoxia", Description: "Oxygen saturation of %.0f%% is below the normal minimum of 95%%"},
		},
	},
	{
		Kind:  VitalSystolicBP,
		Label: "Systolic Blood Pressure",
		Bands: []VitalBand{
			{Below: 90, Severity: SeverityHigh, Factor: "Hypotension", Description: "Systolic pressure of %.0f mmHg is below the normal range of 90-140 and carries shock risk"},
			{Above: 180, Severity: SeverityHigh, Factor: "Hypertensive crisis", Description: "Systolic pressure of %.0f mmHg is critically above the normal range of 90-140"},
			{Above: 140, Severity: SeverityMedium, Factor: "Elevated systolic pressure", Description: "Systolic pressure of %.0f mmHg is above the normal range of 90-140"},
		},
	},
	{
		Kind:  VitalDiastolicBP,
		Label: "Diastolic Blood Pressure",
		Bands: []VitalBand{
			{Below: 60, Severity: SeverityHigh, Factor: "Low diastolic pressure", Description: "Diastolic pressure of %.0f mmHg is below the normal range of 60-90 and carries shock risk"},
			{Above: 120, Severity: SeverityHigh, Factor: "Diastolic crisis", Description: "Diastolic pressure of %.0f mmHg is critically above the normal range of 60-90"},
			{Above: 90, Severity: SeverityMedium, Factor: "Elevated diastolic pressure", Description: "Diastolic pressure of %.0f mmHg is above the normal range of 60-90"},
		},
	},
}

// VitalRules returns the band tables in evaluation order.
func VitalRules() []VitalRule {
	return vitalRuleTable
}

// CompoundVitalRule fires when several vitals exceed their floors together.
// It exists for combinations that are more concerning than either reading
// alone; thresholds of 0 mean the vital does not participate in the rule.
// Description is a fmt template receiving the heart rate then the
// temperature.
type CompoundVitalRule struct {
	HeartRateAbove   float64
	TemperatureAbove float64
	Severity         Severity
	Factor           string
	Description      string
}

var compoundVitalRuleTable = []CompoundVitalRule{
	{
		HeartRateAbove:   100,
		TemperatureAbove: 38,
		Severity:         SeverityHigh,
		Factor:           "Febrile tachycardia",
		Description:      "Heart rate of %.0f bpm combined with a temperature of %.1f °C suggests a systemic response and needs urgent review",
	},
}

// CompoundVitalRules returns the combination rules.
func CompoundVitalRules() []CompoundVitalRule {
	return compoundVitalRuleTable
}

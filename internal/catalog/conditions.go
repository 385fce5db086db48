package catalog

// Condition is a pre-existing condition from the intake vocabulary. Boosts
// are added to the department weight vector after symptom weights; a
// condition therefore steers department selection without firing on its own.
type Condition struct {
	Name        string
	Description string
	Boosts      map[Department]float64
}

// conditionTable is the catalog in declaration order.
var conditionTable = []Condition{
	{
		Name:        "Hypertension",
		Description: "Known hypertension raises cardiovascular risk",
		Boosts:      map[Department]float64{Cardiology: 3, Nephrology: 1},
	},
	{
		Name:        "Diabetes",
		Description: "Diabetes raises metabolic and cardiovascular risk",
		Boosts:      map[Department]float64{Endocrinology: 3, Cardiology: 1},
	},
	{
		Name:        "Heart Disease",
		Description: "Known heart disease raises the weight of cardiac symptoms",
		Boosts:      map[Department]float64{Cardiology: 4, Emergency: 1},
	},
	{
		Name:        "Asthma",
		Description: "Asthma raises the weight of respiratory symptoms",
		Boosts:      map[Department]float64{Pulmonology: 3},
	},
	{
		Name:        "COPD",
		Description: "Chronic obstructive pulmonary disease raises respiratory risk",
		Boosts:      map[Department]float64{Pulmonology: 3},
	},
	{
		Name:        "Chronic Kidney Disease",
		Description: "Reduced kidney function narrows safe treatment options",
		Boosts:      map[Department]float64{Nephrology: 4, Urology: 1},
	},
	{
		Name:        "Epilepsy",
		Description: "An epilepsy history raises the weight of neurological symptoms",
		Boosts:      map[Department]float64{Neurology: 3},
	},
	{
		Name:        "Thyroid Disorder",
		Description: "Thyroid dysfunction can drive metabolic symptoms",
		Boosts:      map[Department]float64{Endocrinology: 3},
	},
	{
		Name:        "Arthritis",
		Description: "Arthritis raises the weight of joint symptoms",
		Boosts:      map[Department]float64{Orthopedics: 3},
	},
	{
		Name:        "Depression",
		Description: "A depression history raises the weight of mood symptoms",
		Boosts:      map[Department]float64{Psychiatry: 3},
	},
	{
		Name:        "Obesity",
		Description: "Obesity raises metabolic and cardiovascular risk",
		Boosts:      map[Department]float64{Endocrinology: 2, Cardiology: 1},
	},
	{
		Name:        "Pregnancy",
		Description: "Pregnancy changes which department should assess symptoms",
		Boosts:      map[Department]float64{Gynecology: 4},
	},
}

var conditionsByName = func() map[string]Condition {
	m := make(map[string]Condition, len(conditionTable))
	for _, c := range conditionTable {
		m[c.Name] = c
	}
	return m
}()

// AllConditions returns the condition vocabulary in catalog declaration
// order. The returned slice is a copy.
func AllConditions() []string {
	out := make([]string, len(conditionTable))
	for i, c := range conditionTable {
		out[i] = c.Name
	}
	return out
}

// ConditionByName looks up a condition by its exact catalog name. The
// returned value shares the catalog's boost table and must be treated as
// read-only.
func ConditionByName(name string) (Condition, bool) {
	c, ok := conditionsByName[name]
	return c, ok
}

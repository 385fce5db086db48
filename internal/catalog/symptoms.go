package catalog

// Symptom is one entry in the intake vocabulary. Weights is the department
// weight vector summed during classification; Severity feeds risk
// aggregation; Description is the contributing-factor text shown to the
// patient when the symptom influences the result.
type Symptom struct {
	Name        string
	Severity    Severity
	Description string
	Weights     map[Department]float64
}

// symptomTable is the catalog in declaration order. Declaration order is
// load-bearing: it is the secondary tie-break for department scoring and the
// order the UI presents options in.
var symptomTable = []Symptom{
	{
		Name:        "Chest Pain",
		Severity:    SeverityHigh,
		Description: "Chest pain can indicate cardiac or pulmonary involvement and needs urgent evaluation",
		Weights:     map[Department]float64{Cardiology: 8, Emergency: 6, Pulmonology: 3},
	},
	{
		Name:        "Shortness of Breath",
		Severity:    SeverityHigh,
		Description: "Breathing difficulty may reflect respiratory or cardiac compromise",
		Weights:     map[Department]float64{Pulmonology: 7, Cardiology: 5, Emergency: 5},
	},
	{
		Name:        "Loss of Consciousness",
		Severity:    SeverityHigh,
		Description: "Loss of consciousness is a red-flag event requiring immediate assessment",
		Weights:     map[Department]float64{Emergency: 10, Neurology: 4},
	},
	{
		Name:        "Severe Bleeding",
		Severity:    SeverityHigh,
		Description: "Uncontrolled bleeding risks hypovolemic shock",
		Weights:     map[Department]float64{Emergency: 10},
	},
	{
		Name:        "Seizures",
		Severity:    SeverityHigh,
		Description: "Seizure activity requires urgent neurological work-up",
		Weights:     map[Department]float64{Neurology: 8, Emergency: 6},
	},
	{
		Name:        "Paralysis",
		Severity:    SeverityHigh,
		Description: "Sudden paralysis or one-sided weakness is a possible stroke sign",
		Weights:     map[Department]float64{Neurology: 9, Emergency: 5},
	},
	{
		Name:        "Slurred Speech",
		Severity:    SeverityHigh,
		Description: "Slurred speech of sudden onset is a possible stroke sign",
		Weights:     map[Department]float64{Neurology: 8, Emergency: 5},
	},
	{
		Name:        "Fainting",
		Severity:    SeverityHigh,
		Description: "Syncope can have cardiac or neurological causes",
		Weights:     map[Department]float64{Cardiology: 5, Neurology: 5, Emergency: 4},
	},
	{
		Name:        "Vomiting Blood",
		Severity:    SeverityHigh,
		Description: "Hematemesis suggests upper gastrointestinal bleeding",
		Weights:     map[Department]float64{Gastroenterology: 8, Emergency: 6},
	},
	{
		Name:        "Coughing Blood",
		Severity:    SeverityHigh,
		Description: "Hemoptysis needs urgent respiratory evaluation",
		Weights:     map[Department]float64{Pulmonology: 8, Emergency: 5},
	},
	{
		Name:        "Vision Loss",
		Severity:    SeverityHigh,
		Description: "Sudden vision loss can indicate ocular or neurological emergency",
		Weights:     map[Department]float64{Ophthalmology: 8, Neurology: 5, Emergency: 3},
	},
	{
		Name:        "Hallucinations",
		Severity:    SeverityHigh,
		Description: "New hallucinations need psychiatric and neurological assessment",
		Weights:     map[Department]float64{Psychiatry: 8, Neurology: 3},
	},
	{
		Name:        "Palpitations",
		Severity:    SeverityMedium,
		Description: "Palpitations may reflect a rhythm disturbance",
		Weights:     map[Department]float64{Cardiology: 7},
	},
	{
		Name:        "Irregular Heartbeat",
		Severity:    SeverityMedium,
		Description: "An irregular heartbeat warrants cardiac rhythm evaluation",
		Weights:     map[Department]float64{Cardiology: 8},
	},
	{
		Name:        "Severe Headache",
		Severity:    SeverityMedium,
		Description: "A severe or worst-ever headache needs neurological review",
		Weights:     map[Department]float64{Neurology: 8, Emergency: 2},
	},
	{
		Name:        "Dizziness",
		Severity:    SeverityMedium,
		Description: "Dizziness can have neurological, cardiac, or inner-ear causes",
		Weights:     map[Department]float64{Neurology: 6, Cardiology: 2, ENT: 2},
	},
	{
		Name:        "Confusion",
		Severity:    SeverityMedium,
		Description: "Acute confusion may reflect neurological or metabolic disturbance",
		Weights:     map[Department]float64{Neurology: 7, Psychiatry: 3},
	},
	{
		Name:        "Numbness",
		Severity:    SeverityMedium,
		Description: "Persistent numbness or tingling suggests nerve involvement",
		Weights:     map[Department]float64{Neurology: 7},
	},
	{
		Name:        "Blurred Vision",
		Severity:    SeverityMedium,
		Description: "Blurred vision can be ocular, neurological, or metabolic",
		Weights:     map[Department]float64{Ophthalmology: 7, Neurology: 4, Endocrinology: 2},
	},
	{
		Name:        "Wheezing",
		Severity:    SeverityMedium,
		Description: "Wheezing indicates airway narrowing",
		Weights:     map[Department]float64{Pulmonology: 7},
	},
	{
		Name:        "Fever",
		Severity:    SeverityMedium,
		Description: "Fever points to an infectious or inflammatory process",
		Weights:     map[Department]float64{GeneralMedicine: 6},
	},
	{
		Name:        "Abdominal Pain",
		Severity:    SeverityMedium,
		Description: "Abdominal pain needs digestive-system evaluation",
		Weights:     map[Department]float64{Gastroenterology: 7, GeneralMedicine: 2},
	},
	{
		Name:        "Vomiting",
		Severity:    SeverityMedium,
		Description: "Persistent vomiting risks dehydration and needs evaluation",
		Weights:     map[Department]float64{Gastroenterology: 6, GeneralMedicine: 2},
	},
	{
		Name:        "Blood in Stool",
		Severity:    SeverityMedium,
		Description: "Rectal bleeding warrants gastrointestinal investigation",
		Weights:     map[Department]float64{Gastroenterology: 8},
	},
	{
		Name:        "Blood in Urine",
		Severity:    SeverityMedium,
		Description: "Hematuria suggests urinary tract or kidney involvement",
		Weights:     map[Department]float64{Urology: 7, Nephrology: 4},
	},
	{
		Name:        "Painful Urination",
		Severity:    SeverityMedium,
		Description: "Dysuria commonly reflects a urinary tract infection",
		Weights:     map[Department]float64{Urology: 7},
	},
	{
		Name:        "Frequent Urination",
		Severity:    SeverityMedium,
		Description: "Urinary frequency can be urological or an early diabetes sign",
		Weights:     map[Department]float64{Urology: 6, Endocrinology: 4},
	},
	{
		Name:        "Excessive Thirst",
		Severity:    SeverityMedium,
		Description: "Polydipsia is a classic sign of poor glucose control",
		Weights:     map[Department]float64{Endocrinology: 7},
	},
	{
		Name:        "Unexplained Weight Loss",
		Severity:    SeverityMedium,
		Description: "Unintentional weight loss warrants systemic work-up",
		Weights:     map[Department]float64{Endocrinology: 5, Gastroenterology: 3, GeneralMedicine: 3},
	},
	{
		Name:        "Muscle Weakness",
		Severity:    SeverityMedium,
		Description: "Progressive weakness can be neurological or metabolic",
		Weights:     map[Department]float64{Neurology: 5, Orthopedics: 3, Endocrinology: 2},
	},
	{
		Name:        "Joint Swelling",
		Severity:    SeverityMedium,
		Description: "A swollen joint suggests inflammation or injury",
		Weights:     map[Department]float64{Orthopedics: 6},
	},
	{
		Name:        "Hearing Loss",
		Severity:    SeverityMedium,
		Description: "New hearing loss needs ear, nose and throat assessment",
		Weights:     map[Department]float64{ENT: 7},
	},
	{
		Name:        "Pelvic Pain",
		Severity:    SeverityMedium,
		Description: "Pelvic pain can have gynecological, urinary, or digestive causes",
		Weights:     map[Department]float64{Gynecology: 6, Urology: 2, Gastroenterology: 2},
	},
	{
		Name:        "Anxiety",
		Severity:    SeverityMedium,
		Description: "Marked anxiety benefits from mental-health support",
		Weights:     map[Department]float64{Psychiatry: 7},
	},
	{
		Name:        "Depressed Mood",
		Severity:    SeverityMedium,
		Description: "A persistently low mood benefits from mental-health support",
		Weights:     map[Department]float64{Psychiatry: 8},
	},
	{
		Name:        "Headache",
		Severity:    SeverityLow,
		Description: "Recurrent headaches may have a neurological component",
		Weights:     map[Department]float64{Neurology: 5, GeneralMedicine: 2},
	},
	{
		Name:        "Cough",
		Severity:    SeverityLow,
		Description: "A persistent cough suggests airway irritation or infection",
		Weights:     map[Department]float64{Pulmonology: 6, GeneralMedicine: 3},
	},
	{
		Name:        "Sore Throat",
		Severity:    SeverityLow,
		Description: "Throat pain usually reflects upper-airway infection",
		Weights:     map[Department]float64{ENT: 6, GeneralMedicine: 2},
	},
	{
		Name:        "Ear Pain",
		Severity:    SeverityLow,
		Description: "Ear pain commonly reflects infection or pressure imbalance",
		Weights:     map[Department]float64{ENT: 7},
	},
	{
		Name:        "Runny Nose",
		Severity:    SeverityLow,
		Description: "Nasal discharge suggests an upper respiratory infection or allergy",
		Weights:     map[Department]float64{ENT: 4, GeneralMedicine: 3},
	},
	{
		Name:        "Nausea",
		Severity:    SeverityLow,
		Description: "Nausea often accompanies digestive upset",
		Weights:     map[Department]float64{Gastroenterology: 5, GeneralMedicine: 2},
	},
	{
		Name:        "Diarrhea",
		Severity:    SeverityLow,
		Description: "Diarrhea suggests digestive infection or irritation",
		Weights:     map[Department]float64{Gastroenterology: 6},
	},
	{
		Name:        "Constipation",
		Severity:    SeverityLow,
		Description: "Constipation usually reflects a benign digestive cause",
		Weights:     map[Department]float64{Gastroenterology: 5},
	},
	{
		Name:        "Joint Pain",
		Severity:    SeverityLow,
		Description: "Joint pain suggests musculoskeletal strain or arthritis",
		Weights:     map[Department]float64{Orthopedics: 7},
	},
	{
		Name:        "Back Pain",
		Severity:    SeverityLow,
		Description: "Back pain is most often musculoskeletal",
		Weights:     map[Department]float64{Orthopedics: 6},
	},
	{
		Name:        "Fatigue",
		Severity:    SeverityLow,
		Description: "Fatigue is non-specific but can reflect metabolic causes",
		Weights:     map[Department]float64{GeneralMedicine: 4, Endocrinology: 3},
	},
	{
		Name:        "Skin Rash",
		Severity:    SeverityLow,
		Description: "A rash usually indicates a dermatological or allergic cause",
		Weights:     map[Department]float64{Dermatology: 7},
	},
	{
		Name:        "Itching",
		Severity:    SeverityLow,
		Description: "Persistent itching suggests a skin or allergic condition",
		Weights:     map[Department]float64{Dermatology: 6},
	},
	{
		Name:        "Insomnia",
		Severity:    SeverityLow,
		Description: "Chronic sleep disturbance benefits from mental-health review",
		Weights:     map[Department]float64{Psychiatry: 5, GeneralMedicine: 2},
	},
	{
		Name:        "Irregular Periods",
		Severity:    SeverityLow,
		Description: "Menstrual irregularity warrants gynecological review",
		Weights:     map[Department]float64{Gynecology: 7, Endocrinology: 2},
	},
}

var symptomsByName = func() map[string]Symptom {
	m := make(map[string]Symptom, len(symptomTable))
	for _, s := range symptomTable {
		m[s.Name] = s
	}
	return m
}()

// AllSymptoms returns the symptom vocabulary in catalog declaration order.
// The returned slice is a copy; the catalog itself is never mutated.
func AllSymptoms() []string {
	out := make([]string, len(symptomTable))
	for i, s := range symptomTable {
		out[i] = s.Name
	}
	return out
}

// SymptomByName looks up a symptom by its exact catalog name. The returned
// value shares the catalog's weight table and must be treated as read-only.
func SymptomByName(name string) (Symptom, bool) {
	s, ok := symptomsByName[name]
	return s, ok
}

package scoring

// Category keys of the cardiac report
const (
	CategoryHistoryAndSymptoms   = "historyAndSymptoms"
	CategoryBloodPressure        = "bloodPressure"
	CategoryLabMetrics           = "labMetrics"
	CategoryLifestyle            = "lifestyle"
	CategoryFitness              = "fitness"
	CategoryMedsAndCare          = "medsAndCare"
	CategoryFamilyAndEnvironment = "familyAndEnvironment"
	CategoryPsychosocial         = "psychosocial"
	CategoryBiometrics           = "biometrics"
)

var cardiacCategories = []category{
	{CategoryHistoryAndSymptoms, "Symptoms & History"},
	{CategoryBloodPressure, "Blood Pressure"},
	{CategoryLabMetrics, "Key Lab Metrics"},
	{CategoryLifestyle, "Lifestyle Factors"},
	{CategoryFitness, "Fitness & Activity"},
	{CategoryMedsAndCare, "Medication & Care"},
	{CategoryFamilyAndEnvironment, "Family & Environment"},
	{CategoryPsychosocial, "Psychosocial Health"},
	{CategoryBiometrics, "Core Biometrics"},
}

const (
	sleepApneaRiskID      = "sleep-apnea-risk"
	sleepApneaTreatmentID = "sleep-apnea-treatment"
	sleepApneaDiagnosed   = "Diagnosed sleep apnea"
)

// cardiacPenalties maps question id -> answer option -> penalty. Negative is protective.
var cardiacPenalties = map[string]map[string]float64{
	"dx-cardiac-history": {
		"High blood pressure":            5,
		"High cholesterol":               4,
		"Coronary artery disease":        15,
		"Prior heart attack":             20,
		"Angina (chest pain from heart)": 12,
		"Atrial fibrillation":            10,
		"Heart failure":                  20,
		"Stroke or TIA (mini-stroke)":    15,
		"Chronic kidney disease":         8,
		"Diabetes or prediabetes":        8,
		"None of the above":              0,
	},
	"symptoms-chest-pain":         {"No": 0, "Once or twice": 5, "Weekly": 10, "Most days": 15},
	"symptoms-exertional-eases":   {"No": 0, "Once or twice": 6, "Weekly": 12, "Most days": 18},
	"symptoms-dyspnea":            {"Never": 0, "Sometimes": 3, "Often": 7, "Always": 12},
	"symptoms-functional-decline": {"No": 0, "Slight decline": 4, "Clear decline": 8},
	"symptoms-orthopnea":          {"No": 0, "Sometimes": 5, "Often": 10},
	"symptoms-palpitations":       {"Never": 0, "Once or twice": 2, "Weekly": 5, "Most days": 8},
	"symptoms-syncope":            {"No": 0, "Yes, once": 8, "Yes, more than once": 15},
	"symptoms-edema":              {"Never": 0, "Occasionally": 3, "Most days": 7},

	"bp-home-average": {
		"I don’t know":    5,
		"< 110 / < 70":    -2,
		"110-119 / 70-79": 0,
		"120-129 / 70-79": 3,
		"130-139 / 80-89": 8,
		"140-159 / 90-99": 15,
		"≥ 160 / ≥ 100":   25,
	},
	"bp-monitor-frequency": {"Daily": -1, "Few times/week": 0, "Weekly": 2, "Rarely": 4, "Never": 5},
	"bp-orthostatic":       {"Never": 0, "Sometimes": 2, "Often": 4},
	"bp-salt-sensitivity":  {"No / not sure": 0, "Occasionally": 2, "Often": 4},

	"labs-ldl-band": {
		"I don’t know":  3,
		"< 70 mg/dL":    -2,
		"70-99 mg/dL":   0,
		"100-129 mg/dL": 4,
		"130-159 mg/dL": 8,
		"160-189 mg/dL": 12,
		"≥ 190 mg/dL":   18,
	},
	"labs-hdl-band": {"I don’t know": 2, "< 40 mg/dL": 8, "40-59 mg/dL": 2, "≥ 60 mg/dL": -3},
	"labs-trig-band": {
		"I don’t know":  2,
		"< 100 mg/dL":   -1,
		"100-149 mg/dL": 0,
		"150-199 mg/dL": 4,
		"200-499 mg/dL": 7,
		"≥ 500 mg/dL":   12,
	},
	"labs-a1c-band":        {"I don’t know": 3, "< 5.7%": 0, "5.7-6.4% (prediabetes)": 5, "≥ 6.5% (diabetes)": 10},
	"labs-general-lipids":  {"Yes": 5, "No": 0, "Not sure": 2},
	"labs-general-glucose": {"No": 0, "Prediabetes": 5, "Diabetes": 10, "Not sure": 2},

	"diet-sodium":          {"Rarely": 0, "1-3 times per week": 2, "4-6 times per week": 4, "Daily": 6},
	"diet-processed-meat":  {"0": 0, "1-2": 3, "3-4": 5, "5+": 8},
	"diet-fried-fast":      {"Rarely": 0, "1-3 times per week": 2, "4-6 times per week": 5, "Daily": 8},
	"diet-plant-diversity": {"< 10": 5, "10-20": 2, "21-30": -1, "> 30": -3},
	"diet-pattern":         {"Yes, consistently": -4, "Sometimes": 1, "Not really": 4, "Not sure": 2},
	sleepApneaRiskID:       {"No": 0, "Possible (one or more apply)": 5, sleepApneaDiagnosed: 8},
	sleepApneaTreatmentID:  {"Not diagnosed": 0, "Yes, consistent use": 0, "Inconsistent use": 4, "Not using": 8},
	"sleep-short-duration": {"0--1": 0, "2--3": 2, "4--5": 5, "6--7": 8},
	"sleep-maintenance":    {"0--1": 0, "2--3": 2, "4--5": 4, "6--7": 6},

	"rhr-band":           {"I don’t know": 2, "< 55": -3, "55-64": -1, "65-74": 2, "75-84": 5, "≥ 85": 8},
	"hrr-self":           {"Unsure": 2, "≥ 25 bpm drop": -3, "15-24 bpm drop": 0, "5-14 bpm drop": 4, "< 5 bpm drop": 8},
	"cardio-minutes":     {"< 60 min": 10, "1-2 hours": 5, "3-4 hours": -2, "≥ 5 hours": -5},
	"sedentary-hours":    {"< 4 hours": -2, "4-7 hours": 0, "8-10 hours": 4, "> 10 hours": 7},
	"fitness-self-rated": {"Below average": 5, "Average": 0, "Above average": -3},

	"meds-adherence":  {"Never": 0, "Rarely": 2, "Sometimes": 5, "Often": 8, "Not on prescriptions": 0},
	"care-engagement": {"Always": -1, "Most of the time": 0, "Some of the time": 3, "Not at all": 5},

	"family-premature-ascvd": {"Yes": 10, "No": 0, "Not sure": 3},
	"secondhand-smoke":       {"No": 0, "Occasionally": 2, "Frequently": 5},
	"occupational-exposure":  {"No": 0, "Occasionally": 1, "Frequently": 3},
	"wearable-use": {
		"No":                            1,
		"Yes -- no alerts":              0,
		"Yes -- irregular rhythm alert": 5,
		"Yes -- high resting HR alert":  3,
	},

	"stress-control":          {"Never": 0, "Some days": 2, "Most days": 4, "Nearly every day": 7},
	"stress-recovery-time":    {"Within hours": 0, "Within a day": 3, "More than a day": 6},
	"social-support":          {"Strongly agree": -2, "Agree": 0, "Disagree": 4, "Strongly disagree": 7},
	"perceived-health-change": {"Much worse": 15, "Worse": 8, "Same": 0, "Better": -2, "Much better": -4},
}

var cardiacCategoryOf = map[string]string{
	"dx-cardiac-history":          CategoryHistoryAndSymptoms,
	"symptoms-chest-pain":         CategoryHistoryAndSymptoms,
	"symptoms-exertional-eases":   CategoryHistoryAndSymptoms,
	"symptoms-dyspnea":            CategoryHistoryAndSymptoms,
	"symptoms-functional-decline": CategoryHistoryAndSymptoms,
	"symptoms-orthopnea":          CategoryHistoryAndSymptoms,
	"symptoms-palpitations":       CategoryHistoryAndSymptoms,
	"symptoms-syncope":            CategoryHistoryAndSymptoms,
	"symptoms-edema":              CategoryHistoryAndSymptoms,
	"bp-home-average":             CategoryBloodPressure,
	"bp-monitor-frequency":        CategoryBloodPressure,
	"bp-orthostatic":              CategoryBloodPressure,
	"bp-salt-sensitivity":         CategoryBloodPressure,
	"labs-ldl-band":               CategoryLabMetrics,
	"labs-hdl-band":               CategoryLabMetrics,
	"labs-trig-band":              CategoryLabMetrics,
	"labs-a1c-band":               CategoryLabMetrics,
	"labs-general-lipids":         CategoryLabMetrics,
	"labs-general-glucose":        CategoryLabMetrics,
	"diet-sodium":                 CategoryLifestyle,
	"diet-processed-meat":         CategoryLifestyle,
	"diet-fried-fast":             CategoryLifestyle,
	"diet-plant-diversity":        CategoryLifestyle,
	"diet-pattern":                CategoryLifestyle,
	sleepApneaRiskID:              CategoryLifestyle,
	sleepApneaTreatmentID:         CategoryLifestyle,
	"sleep-short-duration":        CategoryLifestyle,
	"sleep-maintenance":           CategoryLifestyle,
	"rhr-band":                    CategoryFitness,
	"hrr-self":                    CategoryFitness,
	"cardio-minutes":              CategoryFitness,
	"sedentary-hours":             CategoryFitness,
	"fitness-self-rated":          CategoryFitness,
	"meds-adherence":              CategoryMedsAndCare,
	"care-engagement":             CategoryMedsAndCare,
	"family-premature-ascvd":      CategoryFamilyAndEnvironment,
	"secondhand-smoke":            CategoryFamilyAndEnvironment,
	"occupational-exposure":       CategoryFamilyAndEnvironment,
	"wearable-use":                CategoryFamilyAndEnvironment,
	"stress-control":              CategoryPsychosocial,
	"stress-recovery-time":        CategoryPsychosocial,
	"social-support":              CategoryPsychosocial,
	"perceived-health-change":     CategoryPsychosocial,
}

// longevityAdapter rescores one longevity-quiz answer on the cardiac scale.
type longevityAdapter struct {
	id        string
	category  string
	penalties map[string]float64
}

// longevityAdapters are applied in this order after the cardiac questions.
var longevityAdapters = []longevityAdapter{
	{
		id:        "smoking",
		category:  CategoryLifestyle,
		penalties: map[string]float64{"Daily": 20, "Weekly": 10, "Occasionally": 4, "Never": 0},
	},
	{
		id:        "alcoholConsumption",
		category:  CategoryLifestyle,
		penalties: map[string]float64{"0": 0, "1-3": 0, "4-7": 2, "8-14": 5, "15+": 10},
	},
	{
		id:        "familyHistory",
		category:  CategoryFamilyAndEnvironment,
		penalties: map[string]float64{"Yes": 5, "No": -2, "I'm not sure": 0},
	},
	{
		id:       "overallDiet",
		category: CategoryLifestyle,
		penalties: map[string]float64{
			"Very healthy & balanced": -2,
			"Mostly healthy":          -1,
			"Average / Inconsistent":  2,
			"Somewhat unhealthy":      4,
			"Very unhealthy":          6,
		},
	},
}

func cardiacBMIPenalty(bmi float64) float64 {
	switch {
	case bmi <= 0:
		return 0
	case bmi < 18.5:
		return 3
	case bmi >= 35:
		return 12
	case bmi >= 30:
		return 8
	case bmi >= 25:
		return 4
	}
	return 0
}

// agePenalty grows after 40; an unknown age is charged as if 50.
func agePenalty(age float64, known bool) float64 {
	if !known {
		return 5
	}
	p := (age - 40) * 0.5
	if p < 0 {
		return 0
	}
	return p
}

func cardiacCategoryDescriptor(penalty float64) string {
	switch {
	case penalty <= 0:
		return "Excellent"
	case penalty <= 5:
		return "Good"
	case penalty <= 10:
		return "Fair"
	case penalty <= 20:
		return "Needs Improvement"
	}
	return "High Priority"
}

func riskDescriptor(risk int) string {
	switch {
	case risk < 20:
		return "Low Risk"
	case risk < 40:
		return "Borderline Risk"
	case risk < 60:
		return "Moderate Risk"
	case risk < 80:
		return "High Risk"
	}
	return "Very High Risk"
}

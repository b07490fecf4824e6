package scoring

// Category keys of the longevity report
const (
	CategoryDemographicsAndBody     = "demographicsAndBody"
	CategoryHealthAndPreventiveCare = "healthAndPreventiveCare"
	CategoryNutritionAndGutHealth   = "nutritionAndGutHealth"
	CategoryMovementAndActivity     = "movementAndActivity"
	CategorySleepAndRecovery        = "sleepAndRecovery"
	CategoryMindsetAndSocial        = "mindsetAndSocial"
	CategoryEnvironmentAndLifestyle = "environmentAndLifestyle"
)

type category struct {
	key   string
	title string
}

// longevityCategories lists the report categories in presentation order.
var longevityCategories = []category{
	{CategoryDemographicsAndBody, "Body Composition"},
	{CategoryHealthAndPreventiveCare, "Health & Preventive Care"},
	{CategoryNutritionAndGutHealth, "Nutrition & Gut Health"},
	{CategoryMovementAndActivity, "Movement & Activity"},
	{CategorySleepAndRecovery, "Sleep & Recovery"},
	{CategoryMindsetAndSocial, "Mindset & Social Well-being"},
	{CategoryEnvironmentAndLifestyle, "Environment & Lifestyle"},
}

const stressLevelsID = "stressLevels"

// stressBandScores scores the 1-5 stress band derived from the 0-40 slider.
var stressBandScores = map[string]int{
	"1": -5,
	"2": -2,
	"3": 2,
	"4": 5,
	"5": 10,
}

// longevityScores maps question id -> answer option -> score. Positive is a penalty.
var longevityScores = map[string]map[string]int{
	"education": {
		"Doctoral or professional degree":  -2,
		"Master's degree":                  -1,
		"Bachelor's degree":                -1,
		"Associate's or vocational degree": 0,
		"Secondary school / High school":   1,
		"Primary school":                   2,
	},
	"familyLongevity": {
		"Yes": -3,
		"No":  1,
		"I'm not sure / They haven't reached that age yet": 0,
	},
	"familyHistory":  {"Yes": 5, "No": -2, "I'm not sure": 0},
	"healthCheckups": {"Annually": -5, "Every 2-3 years": 0, "Only when sick": 5, "Rarely or never": 10},
	"oralHygiene": {
		"Every 6 months":                 -3,
		"Annually":                       -1,
		"Within the last 2 years":        2,
		"More than 2 years ago or never": 5,
	},
	"smoking":            {"Daily": 40, "Weekly": 15, "Occasionally": 5, "Never": 0},
	"alcoholConsumption": {"0": 0, "1-3": -2, "4-7": 3, "8-14": 10, "15+": 20},
	"overallDiet": {
		"Very healthy & balanced": -8,
		"Mostly healthy":          -4,
		"Average / Inconsistent":  5,
		"Somewhat unhealthy":      10,
		"Very unhealthy":          15,
	},
	"plantVariety":          {"<10": 8, "10-19": 3, "20-29": -2, "30-39": -5, "40+": -8, "20-40": -2},
	"processedFoodServings": {"0": -10, "1": 5, "2": 15, "3": 25, "4+": 35},
	"waterIntakeCups":       {"<4": 4, "4-6": 1, "7-9": -1, "10+": -3},
	"mealWindowConsistency": {
		"Most days (5+ days/week)":  -5,
		"Some days (2-4 days/week)": -2,
		"Occasionally (1 day/week)": 0,
		"Rarely or never":           3,
	},
	"digestiveSymptoms": {"Rarely or never": -3, "A few times a month": 0, "A few times a week": 3, "Most days": 8},
	"exerciseFrequency": {"5+ days": -10, "3-4 days": -6, "1-2 days": 5, "0 days": 15},
	"exerciseIntensity": {
		"A mix of moderate & vigorous": -5,
		"Mostly vigorous":              -3,
		"Mostly moderate":              -1,
		"Mostly light":                 3,
		"I don't exercise":             0,
	},
	"strengthTraining": {"2+ times per week": -8, "Once per week": -3, "1-2 times per month": 3, "Rarely or never": 10},
	"sittingHours":     {"< 4 hours": -5, "4-6 hours": -2, "7-9 hours": 5, "10+ hours": 10},
	"sitToStand": {
		"Yes, easily":                             -8,
		"Yes, with some effort":                   -2,
		"No, I need to use at least one hand/knee": 8,
		"I cannot do this":                        15,
	},
	"gripStrengthSelf": {"Easy": -5, "Manageable": -1, "Difficult": 5, "I usually need help": 10},
	"sleepHours":       {"7-8 hours": -10, "9+ hours": -2, "5-6 hours": 10, "< 5 hours": 20},
	"sleepQuality":     {"Most mornings": -8, "About half the time": 3, "Rarely": 8, "Never": 15},
	"sleepConsistency": {
		"Very consistent (within a 30-min window)":     -5,
		"Somewhat consistent (within a 60-min window)": -2,
		"Inconsistent":   3,
		"Very irregular": 8,
	},
	"nightAwakenings": {"Never or rarely": -5, "1-2 nights per week": 0, "3-4 nights per week": 5, "Almost every night": 10},
	stressLevelsID:    stressBandScores,
	"stressCoping": {
		"Very effective":       -5,
		"Somewhat effective":   -2,
		"Neutral":              2,
		"Somewhat ineffective": 5,
		"Very ineffective":     10,
	},
	"lifeOutlook": {
		"Optimistic":          -5,
		"Mostly optimistic":   -3,
		"Neutral / Realistic": 0,
		"Mostly pessimistic":  3,
		"Pessimistic":         8,
	},
	"closeRelationships": {"0": 12, "1-2": 5, "3-5": -5, "6+": -8},
	"communityInvolvement": {
		"Weekly or more":      -5,
		"A few times a month": -2,
		"A few times a year":  2,
		"Rarely or never":     5,
	},
	"mindfulnessFrequency": {"Daily": -5, "A few times per week": -3, "Occasionally": 0, "Rarely or never": 3},
	"sunlightExposure": {
		"< 15 minutes":  1,
		"15-30 minutes": -3,
		"30-60 minutes": -2,
		"1-2 hours":     0,
		"2+ hours":      1,
	},
	"natureTime":        {"Daily": -3, "Weekly": -2, "Monthly": 0, "Rarely or never": 2},
	"screenTimeNonWork": {"< 1 hour": -3, "1-2 hours": -1, "3-4 hours": 3, "5+ hours": 5},
}

// longevityCategoryOf maps every scored longevity question to its category.
var longevityCategoryOf = map[string]string{
	"education":             CategoryDemographicsAndBody,
	"familyLongevity":       CategoryHealthAndPreventiveCare,
	"familyHistory":         CategoryHealthAndPreventiveCare,
	"healthCheckups":        CategoryHealthAndPreventiveCare,
	"oralHygiene":           CategoryHealthAndPreventiveCare,
	"smoking":               CategoryHealthAndPreventiveCare,
	"alcoholConsumption":    CategoryHealthAndPreventiveCare,
	"overallDiet":           CategoryNutritionAndGutHealth,
	"plantVariety":          CategoryNutritionAndGutHealth,
	"processedFoodServings": CategoryNutritionAndGutHealth,
	"waterIntakeCups":       CategoryNutritionAndGutHealth,
	"mealWindowConsistency": CategoryNutritionAndGutHealth,
	"digestiveSymptoms":     CategoryNutritionAndGutHealth,
	"exerciseFrequency":     CategoryMovementAndActivity,
	"exerciseIntensity":     CategoryMovementAndActivity,
	"strengthTraining":      CategoryMovementAndActivity,
	"sittingHours":          CategoryMovementAndActivity,
	"sitToStand":            CategoryMovementAndActivity,
	"gripStrengthSelf":      CategoryMovementAndActivity,
	"sleepHours":            CategorySleepAndRecovery,
	"sleepQuality":          CategorySleepAndRecovery,
	"sleepConsistency":      CategorySleepAndRecovery,
	"nightAwakenings":       CategorySleepAndRecovery,
	stressLevelsID:          CategoryMindsetAndSocial,
	"stressCoping":          CategoryMindsetAndSocial,
	"lifeOutlook":           CategoryMindsetAndSocial,
	"closeRelationships":    CategoryMindsetAndSocial,
	"communityInvolvement":  CategoryMindsetAndSocial,
	"mindfulnessFrequency":  CategoryMindsetAndSocial,
	"sunlightExposure":      CategoryEnvironmentAndLifestyle,
	"natureTime":            CategoryEnvironmentAndLifestyle,
	"screenTimeNonWork":     CategoryEnvironmentAndLifestyle,
}

// bmiScore scores BMI on the longevity scale. Unknown BMI scores like underweight.
func bmiScore(bmi float64) int {
	switch {
	case bmi <= 0:
		return 5
	case bmi < 18.5:
		return 5
	case bmi <= 22.9:
		return -10
	case bmi <= 24.9:
		return -5
	case bmi <= 29.9:
		return 10
	case bmi <= 34.9:
		return 20
	}
	return 30
}

func longevityCategoryDescriptor(score int) string {
	switch {
	case score <= -5:
		return "Excellent"
	case score <= 0:
		return "Good"
	case score <= 5:
		return "Average"
	case score <= 15:
		return "Needs Improvement"
	}
	return "High Priority"
}

func overallDescriptor(diff float64) string {
	switch {
	case diff < -8:
		return "Exceptional"
	case diff < -4:
		return "Excellent"
	case diff < 0:
		return "Good"
	case diff <= 4:
		return "Average"
	case diff <= 8:
		return "Needs Improvement"
	}
	return "High Priority"
}

package scoring

import (
	"math"
	"sort"
)

const (
	longevityFactorMultiplier = 0.0015
	stressSliderBandWidth     = 8.0

	bmiQuestion = "Calculated Body Mass Index"
	bmiID       = "bmi"
)

// CoreMetrics are the headline numbers of a longevity report
type CoreMetrics struct {
	ChronologicalAge        float64 `json:"chronologicalAge" bson:"chronologicalAge"`
	BiologicalAge           float64 `json:"biologicalAge" bson:"biologicalAge"`
	LongevityFactor         float64 `json:"longevityFactor" bson:"longevityFactor"`
	BiologicalAgeDifference float64 `json:"biologicalAgeDifference" bson:"biologicalAgeDifference"`
	OverallDescriptor       string  `json:"overallDescriptor" bson:"overallDescriptor"`
}

// AugmentedData holds values derived from the answers
type AugmentedData struct {
	BMI           float64 `json:"bmi" bson:"bmi"`
	TotalRawScore int     `json:"totalRawScore" bson:"totalRawScore"`
}

// CategoryScore is the aggregate of one report category
type CategoryScore struct {
	Score      float64 `json:"score" bson:"score"`
	Title      string  `json:"title" bson:"title"`
	Descriptor string  `json:"descriptor" bson:"descriptor"`
}

// ScoredAnswer is one line of the longevity report
type ScoredAnswer struct {
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
	Score    int    `json:"score" bson:"score"`
}

// AssessmentOutput is the longevity report
type AssessmentOutput struct {
	UserID              string                   `json:"userId,omitempty" bson:"userId,omitempty"`
	QuizID              string                   `json:"quizId,omitempty" bson:"quizId,omitempty"`
	SubmissionID        string                   `json:"submissionId,omitempty" bson:"submissionId,omitempty"`
	CoreMetrics         CoreMetrics              `json:"coreMetrics" bson:"coreMetrics"`
	AugmentedData       AugmentedData            `json:"augmentedData" bson:"augmentedData"`
	CategoryScores      map[string]CategoryScore `json:"categoryScores" bson:"categoryScores"`
	ScoredAnswers       []ScoredAnswer           `json:"scoredAnswers" bson:"scoredAnswers"`
	TopImprovementAreas []ScoredAnswer           `json:"topImprovementAreas" bson:"topImprovementAreas"`
	ValidationResult    *ValidationResult        `json:"validation_result,omitempty" bson:"validation_result,omitempty"`
}

// scoredItem is an individually scored question, kept in insertion order for ranking.
type scoredItem struct {
	id    string
	score float64
}

// RunScoring computes the longevity report. It never fails: missing or malformed
// answers score as neutral and an absent birthdate yields age 0.
func RunScoring(in AssessmentInput) *AssessmentOutput {
	set := Normalize(in.SubmittedAnswers)

	age := 0.0
	if dob, ok := set.Value("birthdate"); ok {
		if years, ok := ChronologicalAge(dob.String(), in.referenceTime()); ok {
			age = float64(years)
		}
	}
	bmi := CalculateBMI(set)
	bmiSc := bmiScore(bmi)

	total := bmiSc
	items := []scoredItem{{id: bmiID, score: float64(bmiSc)}}
	scores := map[string]int{bmiID: bmiSc}

	categories := make(map[string]int, len(longevityCategories))
	categories[CategoryDemographicsAndBody] = bmiSc

	for _, id := range set.IDs() {
		table, ok := longevityScores[id]
		if !ok {
			continue
		}
		val, _ := set.Value(id)
		key := val.String()
		if id == stressLevelsID {
			key = stressBand(val)
		}
		score := table[key]
		scores[id] = score
		items = append(items, scoredItem{id: id, score: float64(score)})
		if cat, ok := longevityCategoryOf[id]; ok {
			categories[cat] += score
			total += score
		}
	}

	categoryScores := make(map[string]CategoryScore, len(longevityCategories))
	for _, c := range longevityCategories {
		sc := categories[c.key]
		categoryScores[c.key] = CategoryScore{
			Score:      float64(sc),
			Title:      c.title,
			Descriptor: longevityCategoryDescriptor(sc),
		}
	}

	factor := longevityFactor(total)
	bioAge := age * factor
	diff := bioAge - age

	scored := make([]ScoredAnswer, 0, set.Len()+1)
	bmiInserted := false
	for _, id := range set.IDs() {
		if id == "height" && !bmiInserted {
			scored = append(scored, ScoredAnswer{
				Question: bmiQuestion,
				Answer:   formatBMI(bmi) + " (Calculated)",
				Score:    bmiSc,
			})
			bmiInserted = true
		}
		val, _ := set.Value(id)
		scored = append(scored, ScoredAnswer{
			Question: set.Text(id),
			Answer:   answerText(id, val),
			Score:    scores[id],
		})
	}

	top := topItems(items)
	improvements := make([]ScoredAnswer, 0, len(top))
	for _, it := range top {
		if it.id == bmiID {
			improvements = append(improvements, ScoredAnswer{Question: bmiQuestion, Answer: formatBMI(bmi), Score: int(it.score)})
			continue
		}
		val, _ := set.Value(it.id)
		improvements = append(improvements, ScoredAnswer{
			Question: set.Text(it.id),
			Answer:   answerText(it.id, val),
			Score:    int(it.score),
		})
	}

	return &AssessmentOutput{
		UserID:       in.UserID,
		QuizID:       in.QuizID,
		SubmissionID: in.SubmissionID,
		CoreMetrics: CoreMetrics{
			ChronologicalAge:        roundTo(age, 1),
			BiologicalAge:           roundTo(bioAge, 1),
			LongevityFactor:         roundTo(factor, 3),
			BiologicalAgeDifference: roundTo(diff, 1),
			OverallDescriptor:       overallDescriptor(diff),
		},
		AugmentedData: AugmentedData{
			BMI:           roundTo(bmi, 1),
			TotalRawScore: total,
		},
		CategoryScores:      categoryScores,
		ScoredAnswers:       scored,
		TopImprovementAreas: improvements,
	}
}

// longevityFactor scales chronological age by the total raw score.
func longevityFactor(total int) float64 {
	return 1 + float64(total)*longevityFactorMultiplier
}

// stressBand maps the 0-40 stress slider onto a 1-5 band key.
func stressBand(v Value) string {
	n, ok := leadingFloat(v)
	if !ok {
		n = 0
	}
	band := math.Ceil(n / stressSliderBandWidth)
	band = math.Max(1, math.Min(5, band))
	return formatNumber(band)
}

// answerText renders an answer for the report, with units for height and weight.
func answerText(id string, v Value) string {
	switch {
	case id == "height" && v.Kind == KindRecord:
		return orZero(v.Field("ft")) + " ft " + orZero(v.Field("in")) + " in"
	case id == "weight":
		return v.String() + " lbs"
	}
	return v.String()
}

func orZero(v Value) string {
	if v.IsNull() {
		return "0"
	}
	return v.String()
}

// topItems returns the five highest positive items; ties keep insertion order.
func topItems(items []scoredItem) []scoredItem {
	positive := make([]scoredItem, 0, len(items))
	for _, it := range items {
		if it.score > 0 {
			positive = append(positive, it)
		}
	}
	sort.SliceStable(positive, func(i, j int) bool {
		return positive[i].score > positive[j].score
	})
	if len(positive) > 5 {
		positive = positive[:5]
	}
	return positive
}

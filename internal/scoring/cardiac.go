package scoring

import (
	"math"
	"strconv"
)

const (
	riskSteepness = 0.04
	riskMidpoint  = 55.0

	ageID = "age"
)

// LongevityContext is what cardiac scoring borrows from the user's latest longevity
// report. A zero ChronologicalAge or BMI means unknown.
type LongevityContext struct {
	ChronologicalAge float64           `json:"chronologicalAge" bson:"chronologicalAge"`
	BMI              float64           `json:"bmi" bson:"bmi"`
	SubmittedAnswers []SubmittedAnswer `json:"submittedAnswers" bson:"submittedAnswers"`
}

// NewLongevityContext extracts the cardiac context from a longevity report and the
// answers it was computed from.
func NewLongevityContext(out *AssessmentOutput, answers []SubmittedAnswer) *LongevityContext {
	ctx := &LongevityContext{SubmittedAnswers: answers}
	if out != nil {
		ctx.ChronologicalAge = out.CoreMetrics.ChronologicalAge
		ctx.BMI = out.AugmentedData.BMI
	}
	return ctx
}

// CardiacCoreMetrics are the headline numbers of a cardiac report
type CardiacCoreMetrics struct {
	CardiacRiskScore int    `json:"cardiacRiskScore" bson:"cardiacRiskScore"`
	RiskDescriptor   string `json:"riskDescriptor" bson:"riskDescriptor"`
}

// CardiacAugmentedData holds derived cardiac values. ChronologicalAge is nil when unknown.
type CardiacAugmentedData struct {
	BMI               float64  `json:"bmi" bson:"bmi"`
	ChronologicalAge  *float64 `json:"chronologicalAge" bson:"chronologicalAge"`
	TotalPenaltyScore int      `json:"totalPenaltyScore" bson:"totalPenaltyScore"`
}

// PenalizedAnswer is one line of the cardiac report
type PenalizedAnswer struct {
	Question string  `json:"question" bson:"question"`
	Answer   string  `json:"answer" bson:"answer"`
	Penalty  float64 `json:"penalty" bson:"penalty"`
}

// CardiacAssessmentOutput is the cardiac report
type CardiacAssessmentOutput struct {
	UserID              string                   `json:"userId,omitempty" bson:"userId,omitempty"`
	QuizID              string                   `json:"quizId,omitempty" bson:"quizId,omitempty"`
	SubmissionID        string                   `json:"submissionId,omitempty" bson:"submissionId,omitempty"`
	CoreMetrics         CardiacCoreMetrics       `json:"coreMetrics" bson:"coreMetrics"`
	AugmentedData       CardiacAugmentedData     `json:"augmentedData" bson:"augmentedData"`
	CategoryScores      map[string]CategoryScore `json:"categoryScores" bson:"categoryScores"`
	ScoredAnswers       []PenalizedAnswer        `json:"scoredAnswers" bson:"scoredAnswers"`
	TopImprovementAreas []PenalizedAnswer        `json:"topImprovementAreas" bson:"topImprovementAreas"`
}

// RunCardiacScoring computes the cardiac report. prior may be nil when the user has
// no longevity submission; age and BMI then come from the merged answers if present.
func RunCardiacScoring(in AssessmentInput, prior *LongevityContext) *CardiacAssessmentOutput {
	if prior == nil {
		prior = &LongevityContext{}
	}
	merged := Normalize(prior.SubmittedAnswers, in.SubmittedAnswers)
	cardiac := Normalize(in.SubmittedAnswers)

	var (
		total      float64
		items      []scoredItem
		categories = make(map[string]float64, len(cardiacCategories))
	)
	add := func(id, cat string, penalty float64) {
		items = append(items, scoredItem{id: id, score: penalty})
		categories[cat] += penalty
		total += penalty
	}

	for _, id := range cardiac.IDs() {
		table, ok := cardiacPenalties[id]
		if !ok {
			continue
		}
		val, _ := merged.Value(id)
		penalty := lookupPenalty(table, val)
		if id == sleepApneaTreatmentID && !sleepApneaDiagnosedIn(merged) {
			penalty = 0
		}
		add(id, cardiacCategoryOf[id], penalty)
	}

	for _, a := range longevityAdapters {
		val, _ := merged.Value(a.id)
		add(a.id, a.category, a.penalties[val.String()])
	}

	bmi := prior.BMI
	if bmi <= 0 {
		bmi = CalculateBMI(merged)
	}
	add(bmiID, CategoryBiometrics, cardiacBMIPenalty(bmi))

	age, ageKnown := prior.ChronologicalAge, prior.ChronologicalAge > 0
	if !ageKnown {
		if dob, ok := merged.Value("birthdate"); ok {
			if years, ok := ChronologicalAge(dob.String(), in.referenceTime()); ok {
				age, ageKnown = float64(years), true
			}
		}
	}
	add(ageID, CategoryBiometrics, agePenalty(age, ageKnown))

	categoryScores := make(map[string]CategoryScore, len(cardiacCategories))
	for _, c := range cardiacCategories {
		p := categories[c.key]
		categoryScores[c.key] = CategoryScore{
			Score:      p,
			Title:      c.title,
			Descriptor: cardiacCategoryDescriptor(p),
		}
	}

	risk := RiskScore(total)

	describe := func(it scoredItem) PenalizedAnswer {
		return PenalizedAnswer{
			Question: merged.Text(it.id),
			Answer:   cardiacAnswerText(it.id, merged, bmi, age, ageKnown),
			Penalty:  it.score,
		}
	}
	scored := make([]PenalizedAnswer, 0, len(items))
	for _, it := range items {
		scored = append(scored, describe(it))
	}
	top := topItems(items)
	improvements := make([]PenalizedAnswer, 0, len(top))
	for _, it := range top {
		improvements = append(improvements, describe(it))
	}

	var agePtr *float64
	if ageKnown {
		a := roundTo(age, 1)
		agePtr = &a
	}

	return &CardiacAssessmentOutput{
		UserID:       in.UserID,
		QuizID:       in.QuizID,
		SubmissionID: in.SubmissionID,
		CoreMetrics: CardiacCoreMetrics{
			CardiacRiskScore: risk,
			RiskDescriptor:   riskDescriptor(risk),
		},
		AugmentedData: CardiacAugmentedData{
			BMI:               roundTo(bmi, 1),
			ChronologicalAge:  agePtr,
			TotalPenaltyScore: int(roundTo(total, 0)),
		},
		CategoryScores:      categoryScores,
		ScoredAnswers:       scored,
		TopImprovementAreas: improvements,
	}
}

// RiskScore maps a total penalty onto a 0-100 risk percentage with a logistic curve
// centred on riskMidpoint.
func RiskScore(totalPenalty float64) int {
	r := 100 / (1 + math.Exp(-riskSteepness*(totalPenalty-riskMidpoint)))
	return int(roundTo(r, 0))
}

// lookupPenalty sums every selected option of a multi-select answer.
func lookupPenalty(table map[string]float64, v Value) float64 {
	if v.Kind == KindList {
		sum := 0.0
		for _, opt := range v.List {
			sum += table[opt.String()]
		}
		return sum
	}
	return table[v.String()]
}

func sleepApneaDiagnosedIn(set AnswerSet) bool {
	v, ok := set.Value(sleepApneaRiskID)
	return ok && v.Kind == KindText && v.Text == sleepApneaDiagnosed
}

func cardiacAnswerText(id string, set AnswerSet, bmi, age float64, ageKnown bool) string {
	switch id {
	case bmiID:
		return formatBMI(bmi)
	case ageID:
		if !ageKnown {
			return "Unknown"
		}
		return strconv.Itoa(int(roundTo(age, 0)))
	}
	v, ok := set.Value(id)
	if !ok || v.IsBlank() || (v.Kind == KindNumber && v.Number == 0) {
		return "N/A"
	}
	return v.String()
}

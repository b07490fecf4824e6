package scoring

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
)

func ans(id string, v Value) SubmittedAnswer {
	return SubmittedAnswer{QuestionID: id, QuestionText: id + "?", Value: v}
}

// neutralLongevityAnswers is a realistic submission with mostly middle-of-the-road
// options, used as a regression baseline.
func neutralLongevityAnswers() []SubmittedAnswer {
	return []SubmittedAnswer{
		ans("birthdate", Text("1990-01-01")),
		ans("education", Text("Associate's or vocational degree")),
		ans("height", feetInches(Number(5), Number(10))),
		ans("weight", Number(180)),
		ans("familyLongevity", Text("I'm not sure / They haven't reached that age yet")),
		ans("familyHistory", Text("I'm not sure")),
		ans("healthCheckups", Text("Every 2-3 years")),
		ans("smoking", Text("Never")),
		ans("alcoholConsumption", Text("0")),
		ans("overallDiet", Text("Average / Inconsistent")),
		ans("mealWindowConsistency", Text("Occasionally (1 day/week)")),
		ans("digestiveSymptoms", Text("A few times a month")),
		ans("exerciseIntensity", Text("Mostly moderate")),
		ans("sleepQuality", Text("About half the time")),
		ans("nightAwakenings", Text("1-2 nights per week")),
		ans("stressLevels", Number(20)),
		ans("lifeOutlook", Text("Neutral / Realistic")),
		ans("mindfulnessFrequency", Text("Occasionally")),
		ans("natureTime", Text("Monthly")),
	}
}

func TestRunScoringGoldenNeutralProfile(t *testing.T) {
	out := RunScoring(AssessmentInput{
		UserID:           "u1",
		QuizID:           "longevity",
		SubmittedAnswers: neutralLongevityAnswers(),
		CreatedAt:        "2024-01-01T09:30:00Z",
	})

	// bmi 25.8 (+10), diet +5, sleep quality +3, stress band 3 (+2), intensity -1
	if out.AugmentedData.TotalRawScore != 19 {
		t.Fatalf("TotalRawScore = %d, want 19", out.AugmentedData.TotalRawScore)
	}
	want := CoreMetrics{
		ChronologicalAge:        34,
		BiologicalAge:           35,
		LongevityFactor:         1.029,
		BiologicalAgeDifference: 1,
		OverallDescriptor:       "Average",
	}
	if out.CoreMetrics != want {
		t.Fatalf("CoreMetrics = %+v, want %+v", out.CoreMetrics, want)
	}
	if out.AugmentedData.BMI != 25.8 {
		t.Fatalf("BMI = %v, want 25.8", out.AugmentedData.BMI)
	}

	wantCategories := map[string]struct {
		score      float64
		descriptor string
	}{
		CategoryDemographicsAndBody:     {10, "Needs Improvement"},
		CategoryHealthAndPreventiveCare: {0, "Good"},
		CategoryNutritionAndGutHealth:   {5, "Average"},
		CategoryMovementAndActivity:     {-1, "Good"},
		CategorySleepAndRecovery:        {3, "Average"},
		CategoryMindsetAndSocial:        {2, "Average"},
		CategoryEnvironmentAndLifestyle: {0, "Good"},
	}
	if len(out.CategoryScores) != len(wantCategories) {
		t.Fatalf("got %d categories, want %d", len(out.CategoryScores), len(wantCategories))
	}
	for key, w := range wantCategories {
		got := out.CategoryScores[key]
		if got.Score != w.score || got.Descriptor != w.descriptor {
			t.Errorf("%s = %v/%s, want %v/%s", key, got.Score, got.Descriptor, w.score, w.descriptor)
		}
	}

	wantTop := []ScoredAnswer{
		{Question: "Calculated Body Mass Index", Answer: "25.8", Score: 10},
		{Question: "overallDiet?", Answer: "Average / Inconsistent", Score: 5},
		{Question: "sleepQuality?", Answer: "About half the time", Score: 3},
		{Question: "stressLevels?", Answer: "20", Score: 2},
	}
	if !reflect.DeepEqual(out.TopImprovementAreas, wantTop) {
		t.Fatalf("TopImprovementAreas = %+v", out.TopImprovementAreas)
	}
}

func TestRunScoringScoredAnswersInsertBMIBeforeHeight(t *testing.T) {
	out := RunScoring(AssessmentInput{SubmittedAnswers: neutralLongevityAnswers(), CreatedAt: "2024-01-01"})

	if len(out.ScoredAnswers) != len(neutralLongevityAnswers())+1 {
		t.Fatalf("got %d scored answers", len(out.ScoredAnswers))
	}
	if out.ScoredAnswers[0].Question != "birthdate?" || out.ScoredAnswers[0].Score != 0 {
		t.Fatalf("first entry = %+v", out.ScoredAnswers[0])
	}
	bmi := out.ScoredAnswers[2]
	if bmi.Question != "Calculated Body Mass Index" || bmi.Answer != "25.8 (Calculated)" || bmi.Score != 10 {
		t.Fatalf("bmi entry = %+v", bmi)
	}
	if h := out.ScoredAnswers[3]; h.Answer != "5 ft 10 in" {
		t.Fatalf("height entry = %+v", h)
	}
	if w := out.ScoredAnswers[4]; w.Answer != "180 lbs" {
		t.Fatalf("weight entry = %+v", w)
	}
}

func TestRunScoringWithoutHeightHasNoBMIEntry(t *testing.T) {
	out := RunScoring(AssessmentInput{SubmittedAnswers: []SubmittedAnswer{
		ans("smoking", Text("Daily")),
	}})
	for _, sa := range out.ScoredAnswers {
		if sa.Question == "Calculated Body Mass Index" {
			t.Fatal("bmi entry inserted without a height answer")
		}
	}
	// unknown BMI still scores +5
	if out.AugmentedData.TotalRawScore != 45 {
		t.Fatalf("TotalRawScore = %d, want 45", out.AugmentedData.TotalRawScore)
	}
	if out.CoreMetrics.ChronologicalAge != 0 || out.CoreMetrics.BiologicalAge != 0 {
		t.Fatalf("age without birthdate = %+v", out.CoreMetrics)
	}
}

func TestRunScoringDuplicateAnswers(t *testing.T) {
	out := RunScoring(AssessmentInput{SubmittedAnswers: []SubmittedAnswer{
		ans("smoking", Text("Daily")),
		ans("height", feetInches(Number(5), Number(10))),
		ans("weight", Number(180)),
		ans("height", feetInches(Number(6), Number(0))),
		ans("smoking", Text("Never")),
	}})

	// last value wins, first position wins
	if len(out.ScoredAnswers) != 4 {
		t.Fatalf("got %d scored answers: %+v", len(out.ScoredAnswers), out.ScoredAnswers)
	}
	if s := out.ScoredAnswers[0]; s.Answer != "Never" || s.Score != 0 {
		t.Fatalf("smoking entry = %+v", s)
	}
	if s := out.ScoredAnswers[1]; s.Question != "Calculated Body Mass Index" {
		t.Fatalf("expected a single bmi entry before the first height position, got %+v", s)
	}
	if s := out.ScoredAnswers[2]; s.Answer != "6 ft 0 in" {
		t.Fatalf("height entry = %+v", s)
	}
	// 6'0" at 180 lbs is BMI 24.4
	if out.AugmentedData.BMI != 24.4 {
		t.Fatalf("BMI = %v, want 24.4", out.AugmentedData.BMI)
	}
	if out.AugmentedData.TotalRawScore != -5 {
		t.Fatalf("TotalRawScore = %d, want -5", out.AugmentedData.TotalRawScore)
	}
}

func TestStressBand(t *testing.T) {
	tests := []struct {
		in   Value
		want string
	}{
		{Number(0), "1"},
		{Number(1), "1"},
		{Number(8), "1"},
		{Number(9), "2"},
		{Number(24), "3"},
		{Number(33), "5"},
		{Number(40), "5"},
		{Number(400), "5"},
		{Text("17"), "3"},
		{Text("calm"), "1"},
		{Value{}, "1"},
	}
	for _, tt := range tests {
		if got := stressBand(tt.in); got != tt.want {
			t.Errorf("stressBand(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestBMIScoreBreakpoints(t *testing.T) {
	tests := []struct {
		bmi  float64
		want int
	}{
		{0, 5}, {-1, 5}, {18.4, 5}, {18.5, -10}, {22.9, -10}, {23, -5}, {24.9, -5},
		{25, 10}, {29.9, 10}, {30, 20}, {34.9, 20}, {35, 30}, {50, 30},
	}
	for _, tt := range tests {
		if got := bmiScore(tt.bmi); got != tt.want {
			t.Errorf("bmiScore(%v) = %d, want %d", tt.bmi, got, tt.want)
		}
	}
}

func TestDescriptors(t *testing.T) {
	category := map[int]string{-6: "Excellent", -5: "Excellent", -4: "Good", 0: "Good", 1: "Average", 5: "Average", 6: "Needs Improvement", 15: "Needs Improvement", 16: "High Priority"}
	for score, want := range category {
		if got := longevityCategoryDescriptor(score); got != want {
			t.Errorf("longevityCategoryDescriptor(%d) = %s, want %s", score, got, want)
		}
	}
	overall := map[float64]string{-9: "Exceptional", -8: "Excellent", -4.5: "Excellent", -4: "Good", -0.1: "Good", 0: "Average", 4: "Average", 4.1: "Needs Improvement", 8: "Needs Improvement", 8.1: "High Priority"}
	for diff, want := range overall {
		if got := overallDescriptor(diff); got != want {
			t.Errorf("overallDescriptor(%v) = %s, want %s", diff, got, want)
		}
	}
}

func TestLongevityFactorIdentity(t *testing.T) {
	for _, total := range []int{-120, -19, -1, 0, 1, 19, 77, 300} {
		want := 1 + 0.0015*float64(total)
		if got := longevityFactor(total); got != want {
			t.Errorf("longevityFactor(%d) = %v, want %v", total, got, want)
		}
	}
}

func TestBiologicalAgeDifferenceMatchesMetrics(t *testing.T) {
	answers := append(neutralLongevityAnswers(), ans("smoking", Text("Daily")), ans("sleepHours", Text("< 5 hours")))
	out := RunScoring(AssessmentInput{SubmittedAnswers: answers, CreatedAt: "2024-01-01"})
	m := out.CoreMetrics
	if math.Abs((m.BiologicalAge-m.ChronologicalAge)-m.BiologicalAgeDifference) > 0.1+1e-9 {
		t.Fatalf("difference %v does not match %v - %v", m.BiologicalAgeDifference, m.BiologicalAge, m.ChronologicalAge)
	}
	if out.AugmentedData.TotalRawScore != 79 {
		t.Fatalf("TotalRawScore = %d, want 79", out.AugmentedData.TotalRawScore)
	}
}

func TestTopImprovementAreasStableTies(t *testing.T) {
	// three items tie at 10 and three at 5; the sixth-ranked 5 drops off
	out := RunScoring(AssessmentInput{SubmittedAnswers: []SubmittedAnswer{
		ans("height", feetInches(Number(5), Number(10))),
		ans("weight", Number(180)),
		ans("sittingHours", Text("10+ hours")),
		ans("healthCheckups", Text("Rarely or never")),
		ans("stressCoping", Text("Somewhat ineffective")),
		ans("oralHygiene", Text("More than 2 years ago or never")),
		ans("screenTimeNonWork", Text("5+ hours")),
		ans("waterIntakeCups", Text("<4")),
	}})
	got := make([]string, len(out.TopImprovementAreas))
	for i, it := range out.TopImprovementAreas {
		got[i] = it.Question
	}
	want := []string{"Calculated Body Mass Index", "sittingHours?", "healthCheckups?", "stressCoping?", "oralHygiene?"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("top = %v, want %v", got, want)
	}
}

func TestRunScoringIsDeterministic(t *testing.T) {
	in := AssessmentInput{SubmittedAnswers: neutralLongevityAnswers(), CreatedAt: "2024-01-01"}
	first, _ := json.Marshal(RunScoring(in))
	for i := 0; i < 5; i++ {
		again, _ := json.Marshal(RunScoring(in))
		if string(again) != string(first) {
			t.Fatalf("run %d differs:\n%s\n%s", i, first, again)
		}
	}
}

func TestRunScoringEmptyInput(t *testing.T) {
	out := RunScoring(AssessmentInput{})
	if out == nil || len(out.CategoryScores) != 7 {
		t.Fatalf("empty input should still produce a full report: %+v", out)
	}
	if out.AugmentedData.TotalRawScore != 5 {
		t.Fatalf("TotalRawScore = %d, want 5 from unknown bmi", out.AugmentedData.TotalRawScore)
	}
}

func TestLongevityTablesAreCategorised(t *testing.T) {
	for id := range longevityScores {
		if _, ok := longevityCategoryOf[id]; !ok {
			t.Errorf("scored question %q has no category", id)
		}
	}
}

package scoring

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestSubmittedAnswerDecodesByShape(t *testing.T) {
	body := `[
		{"questionId":"smoking","questionText":"Do you smoke?","value":"Never"},
		{"questionId":"stressLevels","questionText":"Stress","value":17},
		{"questionId":"height","questionText":"Height","value":{"ft":"5","in":10}},
		{"questionId":"dx-cardiac-history","questionText":"History","value":["Heart failure","High cholesterol"]},
		{"questionId":"skipped","questionText":"Skipped","value":null},
		"not an object",
		{"questionText":"no id","value":"x"}
	]`
	var answers []SubmittedAnswer
	if err := json.Unmarshal([]byte(body), &answers); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(answers) != 7 {
		t.Fatalf("len = %d, want 7", len(answers))
	}

	wantKinds := []ValueKind{KindText, KindNumber, KindRecord, KindList, KindNull, KindNull, KindText}
	for i, k := range wantKinds {
		if answers[i].Value.Kind != k {
			t.Errorf("answers[%d].Value.Kind = %v, want %v", i, answers[i].Value.Kind, k)
		}
	}
	if answers[5].QuestionID != "" || answers[6].QuestionID != "" {
		t.Fatal("malformed entries should decode without a question id")
	}
	if got := answers[3].Value.String(); got != "Heart failure, High cholesterol" {
		t.Fatalf("list String() = %q", got)
	}
	if got := answers[1].Value.String(); got != "17" {
		t.Fatalf("number String() = %q", got)
	}

	set := Normalize(answers)
	if set.Len() != 5 {
		t.Fatalf("normalized %d ids, want 5", set.Len())
	}
}

func TestValueBSONRoundTrip(t *testing.T) {
	in := SubmittedAnswer{
		QuestionID: "height",
		Value:      Record(map[string]Value{"ft": Number(5), "in": Text("10")}),
	}
	data, err := bson.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out SubmittedAnswer
	if err := bson.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Value.Kind != KindRecord {
		t.Fatalf("kind = %v, want record", out.Value.Kind)
	}
	if got := answerText("height", out.Value); got != "5 ft 10 in" {
		t.Fatalf("height text = %q", got)
	}
}

func TestNormalizeLaterListWins(t *testing.T) {
	longevity := []SubmittedAnswer{
		{QuestionID: "weight", QuestionText: "Weight (longevity)", Value: Number(200)},
		{QuestionID: "smoking", QuestionText: "Smoking", Value: Text("Daily")},
	}
	cardiac := []SubmittedAnswer{
		{QuestionID: "weight", QuestionText: "Weight (cardiac)", Value: Number(150)},
	}
	set := Normalize(longevity, cardiac)

	v, _ := set.Value("weight")
	if v.Number != 150 {
		t.Fatalf("weight = %v, want cardiac value 150", v.Number)
	}
	if set.Text("weight") != "Weight (cardiac)" {
		t.Fatalf("text = %q", set.Text("weight"))
	}
	if src, _ := set.Source("weight"); src != 1 {
		t.Fatalf("source = %d, want 1", src)
	}
	if src, _ := set.Source("smoking"); src != 0 {
		t.Fatalf("source = %d, want 0", src)
	}
	if ids := set.IDs(); len(ids) != 2 || ids[0] != "weight" {
		t.Fatalf("ids = %v", ids)
	}
}

package scoring

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValueKind tags the shape of an answer value
type ValueKind int

const (
	KindNull ValueKind = iota
	KindText
	KindNumber
	KindBool
	KindRecord
	KindList
)

// Value is the answer payload of one question. Single-choice questions carry text,
// sliders and numeric inputs carry a number, height carries a {ft, in} record and
// multi-select questions carry a list.
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
	Bool   bool
	Record map[string]Value
	List   []Value
}

// Text returns a text value
func Text(s string) Value { return Value{Kind: KindText, Text: s} }

// Number returns a numeric value
func Number(f float64) Value { return Value{Kind: KindNumber, Number: f} }

// List returns a list value of text options
func List(items ...string) Value {
	out := make([]Value, len(items))
	for i, s := range items {
		out[i] = Text(s)
	}
	return Value{Kind: KindList, List: out}
}

// Record returns a keyed record value
func Record(fields map[string]Value) Value { return Value{Kind: KindRecord, Record: fields} }

// IsNull reports whether no value was given
func (v Value) IsNull() bool { return v.Kind == KindNull }

// String renders the value the way it is shown to users and used as a table key.
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return formatNumber(v.Number)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindList:
		parts := make([]string, len(v.List))
		for i, it := range v.List {
			parts[i] = it.String()
		}
		return strings.Join(parts, ", ")
	case KindRecord:
		keys := make([]string, 0, len(v.Record))
		for k := range v.Record {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + v.Record[k].String()
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

// IsBlank reports whether the value counts as unanswered.
func (v Value) IsBlank() bool {
	switch v.Kind {
	case KindNull:
		return true
	case KindText:
		return strings.TrimSpace(v.Text) == ""
	case KindList:
		return len(v.List) == 0
	case KindRecord:
		for _, f := range v.Record {
			if f.Kind == KindNull {
				continue
			}
			if f.Kind == KindText && strings.TrimSpace(f.Text) == "" {
				continue
			}
			return false
		}
		return true
	}
	return false
}

// Field returns a record field, or a null value
func (v Value) Field(name string) Value {
	if v.Kind != KindRecord {
		return Value{}
	}
	return v.Record[name]
}

// Interface converts the value back to plain Go data for encoders.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return v.Number
	case KindBool:
		return v.Bool
	case KindList:
		out := make([]interface{}, len(v.List))
		for i, it := range v.List {
			out[i] = it.Interface()
		}
		return out
	case KindRecord:
		out := make(map[string]interface{}, len(v.Record))
		for k, f := range v.Record {
			out[k] = f.Interface()
		}
		return out
	}
	return nil
}

// ValueOf builds a value from decoded JSON or BSON data.
func ValueOf(x interface{}) Value {
	switch t := x.(type) {
	case nil:
		return Value{}
	case Value:
		return t
	case string:
		return Text(t)
	case bool:
		return Value{Kind: KindBool, Bool: t}
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Text(t.String())
		}
		return Number(f)
	case []interface{}:
		out := make([]Value, len(t))
		for i, it := range t {
			out[i] = ValueOf(it)
		}
		return Value{Kind: KindList, List: out}
	case primitive.A:
		return ValueOf([]interface{}(t))
	case []string:
		return List(t...)
	case map[string]interface{}:
		out := make(map[string]Value, len(t))
		for k, f := range t {
			out[k] = ValueOf(f)
		}
		return Record(out)
	case primitive.M:
		return ValueOf(map[string]interface{}(t))
	case primitive.D:
		out := make(map[string]Value, len(t))
		for _, e := range t {
			out[e.Key] = ValueOf(e.Value)
		}
		return Record(out)
	case primitive.DateTime:
		return Text(t.Time().UTC().Format(time.RFC3339))
	}
	return Text(fmt.Sprint(x))
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var x interface{}
	if err := json.Unmarshal(data, &x); err != nil {
		return err
	}
	*v = ValueOf(x)
	return nil
}

func (v Value) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if v.Kind == KindNull {
		return bsontype.Null, nil, nil
	}
	return bson.MarshalValue(v.Interface())
}

func (v *Value) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bsontype.Null || t == bsontype.Undefined {
		*v = Value{}
		return nil
	}
	var x interface{}
	if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&x); err != nil {
		return err
	}
	*v = ValueOf(x)
	return nil
}

// SubmittedAnswer is one answered question as sent by the quiz UI
type SubmittedAnswer struct {
	QuestionID   string `json:"questionId" bson:"questionId"`
	QuestionText string `json:"questionText" bson:"questionText"`
	Value        Value  `json:"value" bson:"value"`
}

// UnmarshalJSON tolerates malformed entries: anything that is not an object decodes to
// an answer with an empty question id, which the normalizer skips.
func (a *SubmittedAnswer) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*a = SubmittedAnswer{}
		return nil
	}
	*a = SubmittedAnswer{}
	if id, ok := raw["questionId"]; ok {
		var s interface{}
		if json.Unmarshal(id, &s) == nil && s != nil {
			if str, ok := s.(string); ok {
				a.QuestionID = str
			} else {
				a.QuestionID = ValueOf(s).String()
			}
		}
	}
	if txt, ok := raw["questionText"]; ok {
		_ = json.Unmarshal(txt, &a.QuestionText)
	}
	if val, ok := raw["value"]; ok {
		_ = a.Value.UnmarshalJSON(val)
	}
	return nil
}

// AssessmentInput is one completed questionnaire
type AssessmentInput struct {
	UserID           string            `json:"userId,omitempty"`
	QuizID           string            `json:"quizId,omitempty"`
	SubmissionID     string            `json:"submissionId,omitempty"`
	SubmittedAnswers []SubmittedAnswer `json:"submittedAnswers"`
	CreatedAt        string            `json:"createdAt,omitempty"`
}

// referenceTime resolves createdAt, falling back to the current time.
func (in AssessmentInput) referenceTime() time.Time {
	if t, ok := parseDateOnly(in.CreatedAt); ok {
		return t
	}
	return time.Now().UTC()
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

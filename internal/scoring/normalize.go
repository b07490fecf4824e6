package scoring

// AnswerSet is the lookup view of one or more answer lists keyed by question id.
type AnswerSet struct {
	values map[string]Value
	texts  map[string]string
	source map[string]int
	order  []string
}

// Normalize merges answer lists in order. On id collision the later entry's value and
// text win while the id keeps the position of its first occurrence. Entries without a
// question id are skipped.
func Normalize(lists ...[]SubmittedAnswer) AnswerSet {
	set := AnswerSet{
		values: make(map[string]Value),
		texts:  make(map[string]string),
		source: make(map[string]int),
	}
	for i, list := range lists {
		for _, a := range list {
			if a.QuestionID == "" {
				continue
			}
			if _, seen := set.values[a.QuestionID]; !seen {
				set.order = append(set.order, a.QuestionID)
			}
			set.values[a.QuestionID] = a.Value
			text := a.QuestionText
			if text == "" {
				text = a.QuestionID
			}
			set.texts[a.QuestionID] = text
			set.source[a.QuestionID] = i
		}
	}
	return set
}

// Value returns the answer for id and whether it was submitted
func (s AnswerSet) Value(id string) (Value, bool) {
	v, ok := s.values[id]
	return v, ok
}

// Text returns the question text for id, or the id itself
func (s AnswerSet) Text(id string) string {
	if t, ok := s.texts[id]; ok {
		return t
	}
	return id
}

// Source returns the index of the input list that supplied id's answer
func (s AnswerSet) Source(id string) (int, bool) {
	i, ok := s.source[id]
	return i, ok
}

// IDs returns question ids in first-occurrence order
func (s AnswerSet) IDs() []string {
	return s.order
}

// Len returns the number of distinct question ids
func (s AnswerSet) Len() int {
	return len(s.order)
}

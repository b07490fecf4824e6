package scoring

// ValidationResult is the completeness verdict for a submission
type ValidationResult struct {
	IsValid        bool `json:"is_valid" bson:"is_valid"`
	AnsweredCount  int  `json:"answered_count" bson:"answered_count"`
	TotalQuestions int  `json:"total_questions" bson:"total_questions"`
}

// ValidateSubmission accepts a submission when at least two thirds of its entries carry
// an answer. Malformed entries count toward the total but never as answered.
func ValidateSubmission(in AssessmentInput) ValidationResult {
	total := len(in.SubmittedAnswers)
	answered := 0
	for _, a := range in.SubmittedAnswers {
		if a.QuestionID == "" {
			continue
		}
		if !a.Value.IsBlank() {
			answered++
		}
	}
	return ValidationResult{
		IsValid:        total > 0 && 3*answered >= 2*total,
		AnsweredCount:  answered,
		TotalQuestions: total,
	}
}

package model

import (
	"time"

	"healthquiz/internal/scoring"
)

// Quiz ids with a scoring engine behind them
const (
	QuizLongevity     = "longevity"
	QuizCardiacHealth = "cardiac_health"
)

// Contact is optional contact info sent with an anonymous submission
type Contact struct {
	Email     string `json:"email" bson:"email"`
	FirstName string `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty" bson:"lastName,omitempty"`
}

// SubmissionData is the stored payload of a submission: the raw answers plus the report
// for quizzes that are scored.
type SubmissionData struct {
	SubmittedAnswers []scoring.SubmittedAnswer        `json:"submittedAnswers" bson:"submittedAnswers"`
	Contact          *Contact                         `json:"contact,omitempty" bson:"contact,omitempty"`
	Longevity        *scoring.AssessmentOutput        `json:"longevity,omitempty" bson:"longevity,omitempty"`
	Cardiac          *scoring.CardiacAssessmentOutput `json:"cardiac,omitempty" bson:"cardiac,omitempty"`
}

// Submission is one completed questionnaire
type Submission struct {
	ID             string         `json:"id" bson:"_id"`
	UserID         string         `json:"userId,omitempty" bson:"userId,omitempty"`
	QuizID         string         `json:"quizId" bson:"quizId"`
	SubmittedAt    time.Time      `json:"submittedAt" bson:"submittedAt"`
	SubmissionData SubmissionData `json:"submissionData" bson:"submissionData"`
}

// Report returns the scored report, or nil for unscored quizzes
func (s *Submission) Report() interface{} {
	switch {
	case s.SubmissionData.Longevity != nil:
		return s.SubmissionData.Longevity
	case s.SubmissionData.Cardiac != nil:
		return s.SubmissionData.Cardiac
	}
	return nil
}

// SubmissionWithResult is a submission joined with its stored result
type SubmissionWithResult struct {
	Submission `bson:",inline"`
	Results    []Result `json:"-" bson:"results,omitempty"`
	Result     *Result  `json:"result,omitempty" bson:"-"`
}

// SubmitRequest is the request body for POST /v1/submissions
type SubmitRequest struct {
	UserID           string                    `json:"userId"`
	QuizID           string                    `json:"quizId"`
	SubmittedAnswers []scoring.SubmittedAnswer `json:"submittedAnswers"`
	Contact          *Contact                  `json:"contact"`
}

// SubmitResponse is returned after a submission is stored
type SubmitResponse struct {
	SubmissionID string `json:"submissionId"`
}

// SubmissionScoredEvent is pushed to the user's sockets after scoring
type SubmissionScoredEvent struct {
	SubmissionID string      `json:"submissionId"`
	QuizID       string      `json:"quizId"`
	Report       interface{} `json:"report"`
}

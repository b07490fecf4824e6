package service

import (
	"errors"
	"fmt"

	"healthquiz/internal/scoring"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrUserExists          = errors.New("user with this email already exists")
	ErrMissingFields       = errors.New("email and password are required")
	ErrInsufficientAnswers = errors.New("not enough questions answered")
	ErrMissingQuizID       = errors.New("quizId and submittedAnswers are required")
	ErrInvalidResult       = errors.New("submissionId and an object content are required")
	ErrInvalidProgress     = errors.New("progress data is missing or malformed")
	ErrNotFound            = errors.New("not found")
)

// ValidationError reports a longevity submission that answered too few questions
type ValidationError struct {
	Result scoring.ValidationResult
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d of %d", ErrInsufficientAnswers, e.Result.AnsweredCount, e.Result.TotalQuestions)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInsufficientAnswers
}

package service

import (
	"context"
	"fmt"

	"healthquiz/internal/model"
	"healthquiz/internal/repository"
)

// ResultService stores report content saved by the client
type ResultService struct {
	results repository.ResultRepo
}

// NewResultService creates a new result service
func NewResultService(results repository.ResultRepo) *ResultService {
	return &ResultService{results: results}
}

// Save upserts the result for a submission on behalf of userID
func (s *ResultService) Save(ctx context.Context, userID string, result *model.Result) error {
	if result.SubmissionID == "" || !result.Content.IsObject() {
		return ErrInvalidResult
	}
	result.UserID = userID
	if err := s.results.Upsert(ctx, result); err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

// Get returns the user's saved result for a submission
func (s *ResultService) Get(ctx context.Context, userID, submissionID string) (*model.Result, error) {
	result, err := s.results.GetBySubmissionID(ctx, submissionID)
	if err != nil {
		return nil, fmt.Errorf("load result: %w", err)
	}
	if result == nil || (result.UserID != "" && result.UserID != userID) {
		return nil, ErrNotFound
	}
	return result, nil
}

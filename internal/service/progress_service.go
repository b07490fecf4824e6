package service

import (
	"context"
	"fmt"

	"healthquiz/internal/model"
	"healthquiz/internal/repository"
)

// ProgressService reads and writes course progress
type ProgressService struct {
	progress repository.ProgressRepo
}

// NewProgressService creates a new progress service
func NewProgressService(progress repository.ProgressRepo) *ProgressService {
	return &ProgressService{progress: progress}
}

func (s *ProgressService) Get(ctx context.Context, userID string) (*model.Progress, error) {
	p, err := s.progress.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *ProgressService) Save(ctx context.Context, userID string, p *model.Progress) error {
	if p == nil || p.LastKnownLocation == nil {
		return ErrInvalidProgress
	}
	p.UserID = userID
	if p.CompletedLessons == nil {
		p.CompletedLessons = []string{}
	}
	if err := s.progress.Upsert(ctx, p); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"fmt"

	"healthquiz/internal/model"
	"healthquiz/internal/repository"
)

// UserService reads user accounts
type UserService struct {
	users repository.UserRepo
}

// NewUserService creates a new user service
func NewUserService(users repository.UserRepo) *UserService {
	return &UserService{users: users}
}

// Me returns the signed-in user
func (s *UserService) Me(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

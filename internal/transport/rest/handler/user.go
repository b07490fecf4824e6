package handler

import (
	"context"
	"errors"
	"net/http"

	"healthquiz/internal/model"
	"healthquiz/internal/service"
)

// Users reads user accounts
type Users interface {
	Me(ctx context.Context, userID string) (*model.User, error)
}

// UserHandler handles user endpoints
type UserHandler struct {
	userSvc Users
}

// NewUserHandler creates a new user handler
func NewUserHandler(userSvc Users) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Me handles GET /v1/users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	user, err := h.userSvc.Me(r.Context(), userID)
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "user_not_found")
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"healthquiz/internal/model"
	"healthquiz/internal/service"
)

// ProgressStore reads and writes course progress
type ProgressStore interface {
	Get(ctx context.Context, userID string) (*model.Progress, error)
	Save(ctx context.Context, userID string, p *model.Progress) error
}

// ProgressHandler handles course progress endpoints
type ProgressHandler struct {
	progressSvc ProgressStore
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressSvc ProgressStore) *ProgressHandler {
	return &ProgressHandler{progressSvc: progressSvc}
}

// Get handles GET /v1/progress
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	p, err := h.progressSvc.Get(r.Context(), userID)
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "progress_not_found")
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// Save handles POST /v1/progress
func (h *ProgressHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var p model.Progress
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, service.ErrInvalidProgress.Error())
		return
	}

	if err := h.progressSvc.Save(r.Context(), userID, &p); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

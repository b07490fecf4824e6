package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"healthquiz/internal/model"
	"healthquiz/internal/service"
)

// Results stores client-saved result content
type Results interface {
	Save(ctx context.Context, userID string, result *model.Result) error
	Get(ctx context.Context, userID, submissionID string) (*model.Result, error)
}

// ResultHandler handles result endpoints
type ResultHandler struct {
	resultSvc Results
}

// NewResultHandler creates a new result handler
func NewResultHandler(resultSvc Results) *ResultHandler {
	return &ResultHandler{resultSvc: resultSvc}
}

// Save handles POST /v1/results
func (h *ResultHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var result model.Result
	if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.resultSvc.Save(r.Context(), userID, &result); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "saved", "submissionId": result.SubmissionID})
}

// Get handles GET /v1/results/{submissionId}
func (h *ResultHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	result, err := h.resultSvc.Get(r.Context(), userID, mux.Vars(r)["submissionId"])
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "result_not_found")
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

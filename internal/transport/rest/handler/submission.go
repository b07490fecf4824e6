package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"healthquiz/internal/model"
	"healthquiz/internal/service"
	"healthquiz/internal/transport/rest/middleware"
)

// Submissions stores and reads questionnaire submissions
type Submissions interface {
	Submit(ctx context.Context, userID string, req *model.SubmitRequest) (*model.SubmitResponse, error)
	Report(ctx context.Context, userID, submissionID string) (interface{}, error)
	ListMine(ctx context.Context, userID string) ([]*model.SubmissionWithResult, error)
}

// SubmissionHandler handles submission endpoints
type SubmissionHandler struct {
	submissionSvc Submissions
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionSvc Submissions) *SubmissionHandler {
	return &SubmissionHandler{submissionSvc: submissionSvc}
}

// Create handles POST /v1/submissions
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.submissionSvc.Submit(r.Context(), middleware.GetUserID(r.Context()), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// ListMine handles GET /v1/submissions/me
func (h *SubmissionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	subs, err := h.submissionSvc.ListMine(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, subs)
}

// Report handles GET /v1/submissions/{submissionId}/report
func (h *SubmissionHandler) Report(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	report, err := h.submissionSvc.Report(r.Context(), userID, mux.Vars(r)["submissionId"])
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "report_not_found")
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

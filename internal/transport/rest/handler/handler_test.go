package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"healthquiz/internal/model"
	"healthquiz/internal/scoring"
	"healthquiz/internal/service"
	"healthquiz/internal/transport/rest/middleware"
)

type fakeAuth struct{}

func (fakeAuth) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	if req.Email == "taken@example.com" {
		return nil, service.ErrUserExists
	}
	return &model.AuthResponse{Token: "tok", UserID: "u1"}, nil
}

func (fakeAuth) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	if req.Password != "right" {
		return nil, service.ErrInvalidCredentials
	}
	return &model.AuthResponse{Token: "tok", UserID: "u1"}, nil
}

func (fakeAuth) ValidateToken(token string) (*model.UserClaims, error) {
	if token != "tok" {
		return nil, service.ErrInvalidToken
	}
	return &model.UserClaims{UserID: "u1"}, nil
}

type fakeSubmissions struct {
	lastUserID string
}

func (f *fakeSubmissions) Submit(ctx context.Context, userID string, req *model.SubmitRequest) (*model.SubmitResponse, error) {
	f.lastUserID = userID
	switch {
	case req.QuizID == "":
		return nil, service.ErrMissingQuizID
	case len(req.SubmittedAnswers) < 2:
		return nil, &service.ValidationError{Result: scoring.ValidationResult{AnsweredCount: 1, TotalQuestions: 3}}
	case req.QuizID == "explode":
		return nil, errors.New("mongo is down")
	}
	return &model.SubmitResponse{SubmissionID: "s1"}, nil
}

func (f *fakeSubmissions) Report(ctx context.Context, userID, id string) (interface{}, error) {
	if id != "s1" {
		return nil, service.ErrNotFound
	}
	return json.RawMessage(`{"coreMetrics":{"biologicalAge":35}}`), nil
}

func (f *fakeSubmissions) ListMine(ctx context.Context, userID string) ([]*model.SubmissionWithResult, error) {
	return []*model.SubmissionWithResult{}, nil
}

type fakeResults struct{}

func (fakeResults) Save(ctx context.Context, userID string, r *model.Result) error {
	if r.SubmissionID == "" {
		return service.ErrInvalidResult
	}
	return nil
}

func (fakeResults) Get(ctx context.Context, userID, id string) (*model.Result, error) {
	return nil, service.ErrNotFound
}

type fakeProgress struct{}

func (fakeProgress) Get(ctx context.Context, userID string) (*model.Progress, error) {
	return nil, service.ErrNotFound
}

func (fakeProgress) Save(ctx context.Context, userID string, p *model.Progress) error {
	if p.LastKnownLocation == nil {
		return service.ErrInvalidProgress
	}
	return nil
}

func newTestRouter(subs *fakeSubmissions) *mux.Router {
	r := mux.NewRouter()
	authMW := middleware.NewAuthMiddleware(fakeAuth{})
	auth := NewAuthHandler(fakeAuth{})
	submissions := NewSubmissionHandler(subs)
	results := NewResultHandler(fakeResults{})
	progress := NewProgressHandler(fakeProgress{})

	r.HandleFunc("/v1/auth/register", auth.Register).Methods("POST")
	r.HandleFunc("/v1/auth/login", auth.Login).Methods("POST")

	optional := r.NewRoute().Subrouter()
	optional.Use(authMW.OptionalUser)
	optional.HandleFunc("/v1/submissions", submissions.Create).Methods("POST")

	user := r.NewRoute().Subrouter()
	user.Use(authMW.RequireUser)
	user.HandleFunc("/v1/submissions/{submissionId}/report", submissions.Report).Methods("GET")
	user.HandleFunc("/v1/results", results.Save).Methods("POST")
	user.HandleFunc("/v1/results/{submissionId}", results.Get).Methods("GET")
	user.HandleFunc("/v1/progress", progress.Get).Methods("GET")
	user.HandleFunc("/v1/progress", progress.Save).Methods("POST")
	return r
}

func do(t *testing.T, h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandlerStatusCodes(t *testing.T) {
	router := newTestRouter(&fakeSubmissions{})
	answers := `[{"questionId":"a","value":"x"},{"questionId":"b","value":"y"}]`

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
		want   int
	}{
		{"register", "POST", "/v1/auth/register", "", `{"email":"new@example.com","password":"p"}`, 201},
		{"register duplicate", "POST", "/v1/auth/register", "", `{"email":"taken@example.com","password":"p"}`, 409},
		{"register bad json", "POST", "/v1/auth/register", "", `{`, 400},
		{"login", "POST", "/v1/auth/login", "", `{"email":"a@b.c","password":"right"}`, 200},
		{"login wrong password", "POST", "/v1/auth/login", "", `{"email":"a@b.c","password":"nope"}`, 401},
		{"anonymous submission", "POST", "/v1/submissions", "", `{"quizId":"longevity","submittedAnswers":` + answers + `}`, 201},
		{"submission bad token", "POST", "/v1/submissions", "forged", `{"quizId":"longevity","submittedAnswers":` + answers + `}`, 401},
		{"submission missing quiz", "POST", "/v1/submissions", "", `{"submittedAnswers":[]}`, 400},
		{"submission too sparse", "POST", "/v1/submissions", "tok", `{"quizId":"longevity","submittedAnswers":[{"questionId":"a","value":"x"}]}`, 422},
		{"submission store failure", "POST", "/v1/submissions", "tok", `{"quizId":"explode","submittedAnswers":` + answers + `}`, 500},
		{"report requires auth", "GET", "/v1/submissions/s1/report", "", "", 401},
		{"report", "GET", "/v1/submissions/s1/report", "tok", "", 200},
		{"report missing", "GET", "/v1/submissions/s2/report", "tok", "", 404},
		{"result save invalid", "POST", "/v1/results", "tok", `{"content":{}}`, 400},
		{"result save", "POST", "/v1/results", "tok", `{"submissionId":"s1","content":{"a":1}}`, 201},
		{"result missing", "GET", "/v1/results/s1", "tok", "", 404},
		{"progress missing", "GET", "/v1/progress", "tok", "", 404},
		{"progress without location", "POST", "/v1/progress", "tok", `{"completedLessons":["a"]}`, 400},
		{"progress save", "POST", "/v1/progress", "tok", `{"lastKnownLocation":{"courseSlug":"c","slideIndex":2}}`, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, tt.method, tt.path, tt.token, tt.body)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestSubmissionValidationBody(t *testing.T) {
	router := newTestRouter(&fakeSubmissions{})
	rec := do(t, router, "POST", "/v1/submissions", "", `{"quizId":"longevity","submittedAnswers":[]}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Error      string                   `json:"error"`
		Validation scoring.ValidationResult `json:"validation"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Error == "" || body.Validation.TotalQuestions != 3 || body.Validation.AnsweredCount != 1 {
		t.Fatalf("body = %+v", body)
	}
}

func TestSubmissionPassesUserFromToken(t *testing.T) {
	subs := &fakeSubmissions{}
	router := newTestRouter(subs)
	answers := `[{"questionId":"a","value":"x"},{"questionId":"b","value":"y"}]`

	do(t, router, "POST", "/v1/submissions", "tok", `{"quizId":"longevity","submittedAnswers":`+answers+`}`)
	if subs.lastUserID != "u1" {
		t.Fatalf("userID = %q, want u1", subs.lastUserID)
	}
	do(t, router, "POST", "/v1/submissions", "", `{"quizId":"longevity","submittedAnswers":`+answers+`}`)
	if subs.lastUserID != "" {
		t.Fatalf("anonymous userID = %q", subs.lastUserID)
	}
}

func TestServerErrorsAreHidden(t *testing.T) {
	router := newTestRouter(&fakeSubmissions{})
	answers := `[{"questionId":"a","value":"x"},{"questionId":"b","value":"y"}]`
	rec := do(t, router, "POST", "/v1/submissions", "", `{"quizId":"explode","submittedAnswers":`+answers+`}`)
	if strings.Contains(rec.Body.String(), "mongo") {
		t.Fatalf("internal error leaked: %s", rec.Body.String())
	}
}

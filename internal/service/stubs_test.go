package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"healthquiz/internal/cache"
	"healthquiz/internal/model"
	"healthquiz/internal/repository"
	"healthquiz/internal/scoring"
)

type stubUserRepo struct {
	byID map[string]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: map[string]*model.User{}}
}

func (s *stubUserRepo) Create(ctx context.Context, u *model.User) error {
	for _, existing := range s.byID {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	cp := *u
	s.byID[u.ID] = &cp
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if u, ok := s.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range s.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) UpsertContact(ctx context.Context, c *model.Contact) (string, error) {
	if u, _ := s.GetByEmail(ctx, c.Email); u != nil {
		return u.ID, nil
	}
	u := &model.User{Email: c.Email, FirstName: c.FirstName, LastName: c.LastName}
	if err := s.Create(ctx, u); err != nil {
		return "", err
	}
	return u.ID, nil
}

type stubSubmissionRepo struct {
	subs      []*model.Submission
	createErr error
}

func (s *stubSubmissionRepo) Create(ctx context.Context, sub *model.Submission) error {
	if s.createErr != nil {
		return s.createErr
	}
	cp := *sub
	s.subs = append(s.subs, &cp)
	return nil
}

func (s *stubSubmissionRepo) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	for _, sub := range s.subs {
		if sub.ID == id {
			return sub, nil
		}
	}
	return nil, nil
}

func (s *stubSubmissionRepo) LatestByQuiz(ctx context.Context, userID, quizID string) (*model.Submission, error) {
	var latest *model.Submission
	for _, sub := range s.subs {
		if sub.UserID != userID || sub.QuizID != quizID {
			continue
		}
		if latest == nil || sub.SubmittedAt.After(latest.SubmittedAt) {
			latest = sub
		}
	}
	return latest, nil
}

func (s *stubSubmissionRepo) ListByUser(ctx context.Context, userID string) ([]*model.SubmissionWithResult, error) {
	out := []*model.SubmissionWithResult{}
	for _, sub := range s.subs {
		if sub.UserID == userID {
			out = append(out, &model.SubmissionWithResult{Submission: *sub})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out, nil
}

type stubResultRepo struct {
	results map[string]*model.Result
}

func (s *stubResultRepo) Upsert(ctx context.Context, r *model.Result) error {
	cp := *r
	s.results[r.SubmissionID] = &cp
	return nil
}

func (s *stubResultRepo) GetBySubmissionID(ctx context.Context, id string) (*model.Result, error) {
	return s.results[id], nil
}

type stubProgressRepo struct {
	progress map[string]*model.Progress
}

func (s *stubProgressRepo) Get(ctx context.Context, userID string) (*model.Progress, error) {
	return s.progress[userID], nil
}

func (s *stubProgressRepo) Upsert(ctx context.Context, p *model.Progress) error {
	cp := *p
	s.progress[p.UserID] = &cp
	return nil
}

type stubReportCache struct {
	reports map[string]*cache.CachedReport
	getErr  error
}

func newStubReportCache() *stubReportCache {
	return &stubReportCache{reports: map[string]*cache.CachedReport{}}
}

func (s *stubReportCache) Get(ctx context.Context, id string) (*cache.CachedReport, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.reports[id], nil
}

func (s *stubReportCache) Set(ctx context.Context, id, userID, quizID string, report interface{}) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}
	s.reports[id] = &cache.CachedReport{UserID: userID, QuizID: quizID, Report: raw}
	return nil
}

type stubContextCache struct {
	contexts map[string]*scoring.LongevityContext
}

func newStubContextCache() *stubContextCache {
	return &stubContextCache{contexts: map[string]*scoring.LongevityContext{}}
}

func (s *stubContextCache) Get(ctx context.Context, userID string) (*scoring.LongevityContext, error) {
	return s.contexts[userID], nil
}

func (s *stubContextCache) Set(ctx context.Context, userID string, lc *scoring.LongevityContext) error {
	if userID == "" {
		return errors.New("empty user id")
	}
	s.contexts[userID] = lc
	return nil
}

type sentMessage struct {
	userID  string
	msgType string
	payload interface{}
}

type stubBroadcaster struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (b *stubBroadcaster) SendToUser(userID, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, sentMessage{userID, msgType, payload})
}

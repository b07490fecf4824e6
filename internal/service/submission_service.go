package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"healthquiz/internal/cache"
	"healthquiz/internal/logger"
	"healthquiz/internal/model"
	"healthquiz/internal/repository"
	"healthquiz/internal/scoring"
)

// SubmissionService validates, scores and stores questionnaire submissions
type SubmissionService struct {
	submissions repository.SubmissionRepo
	users       repository.UserRepo
	reports     cache.ReportCache
	contexts    cache.LongevityContextCache
	broadcaster Broadcaster
	now         func() time.Time
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	submissions repository.SubmissionRepo,
	users repository.UserRepo,
	reports cache.ReportCache,
	contexts cache.LongevityContextCache,
) *SubmissionService {
	return &SubmissionService{
		submissions: submissions,
		users:       users,
		reports:     reports,
		contexts:    contexts,
		now:         time.Now,
	}
}

// SetBroadcaster sets the WebSocket broadcaster
func (s *SubmissionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Submit stores a submission. Longevity and cardiac submissions are scored first; any
// other quiz is stored as-is. userID is empty for anonymous submissions, in which case
// contact details, when present, link the submission to a user.
func (s *SubmissionService) Submit(ctx context.Context, userID string, req *model.SubmitRequest) (*model.SubmitResponse, error) {
	if req.QuizID == "" || req.SubmittedAnswers == nil {
		return nil, ErrMissingQuizID
	}

	if userID == "" && req.Contact != nil && req.Contact.Email != "" {
		contact := *req.Contact
		contact.Email = normalizeEmail(contact.Email)
		id, err := s.users.UpsertContact(ctx, &contact)
		if err != nil {
			return nil, fmt.Errorf("upsert contact: %w", err)
		}
		userID = id
	}

	now := s.now().UTC()
	sub := &model.Submission{
		ID:          uuid.New().String(),
		UserID:      userID,
		QuizID:      req.QuizID,
		SubmittedAt: now,
		SubmissionData: model.SubmissionData{
			SubmittedAnswers: req.SubmittedAnswers,
			Contact:          req.Contact,
		},
	}
	input := scoring.AssessmentInput{
		UserID:           userID,
		QuizID:           req.QuizID,
		SubmissionID:     sub.ID,
		SubmittedAnswers: req.SubmittedAnswers,
		CreatedAt:        now.Format(time.RFC3339),
	}

	switch req.QuizID {
	case model.QuizLongevity:
		validation := scoring.ValidateSubmission(input)
		if !validation.IsValid {
			return nil, &ValidationError{Result: validation}
		}
		out := scoring.RunScoring(input)
		out.ValidationResult = &validation
		sub.SubmissionData.Longevity = out
	case model.QuizCardiacHealth:
		prior := s.longevityContext(ctx, userID)
		sub.SubmissionData.Cardiac = scoring.RunCardiacScoring(input, prior)
	}

	if err := s.submissions.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("store submission: %w", err)
	}

	log := logger.WithFields(logger.Fields{
		"submission_id": sub.ID,
		"quiz_id":       sub.QuizID,
		"user_id":       userID,
	})
	log.Info("submission stored")

	report := sub.Report()
	if report != nil {
		if err := s.reports.Set(ctx, sub.ID, userID, sub.QuizID, report); err != nil {
			log.Warnf("cache report: %v", err)
		}
	}
	if sub.SubmissionData.Longevity != nil && userID != "" {
		lc := scoring.NewLongevityContext(sub.SubmissionData.Longevity, req.SubmittedAnswers)
		if err := s.contexts.Set(ctx, userID, lc); err != nil {
			log.Warnf("cache longevity context: %v", err)
		}
	}
	if report != nil && userID != "" && s.broadcaster != nil {
		s.broadcaster.SendToUser(userID, MsgSubmissionScored, &model.SubmissionScoredEvent{
			SubmissionID: sub.ID,
			QuizID:       sub.QuizID,
			Report:       report,
		})
	}

	return &model.SubmitResponse{SubmissionID: sub.ID}, nil
}

// longevityContext loads the user's latest longevity context from the cache, falling
// back to the latest stored longevity submission. Lookup failures degrade to no context.
func (s *SubmissionService) longevityContext(ctx context.Context, userID string) *scoring.LongevityContext {
	if userID == "" {
		return nil
	}
	lc, err := s.contexts.Get(ctx, userID)
	if err != nil {
		logger.WithField("user_id", userID).Warnf("read longevity context cache: %v", err)
	}
	if lc != nil {
		return lc
	}

	latest, err := s.submissions.LatestByQuiz(ctx, userID, model.QuizLongevity)
	if err != nil {
		logger.WithField("user_id", userID).Errorf("load longevity context: %v", err)
		return nil
	}
	if latest == nil {
		return nil
	}
	lc = scoring.NewLongevityContext(latest.SubmissionData.Longevity, latest.SubmissionData.SubmittedAnswers)
	if err := s.contexts.Set(ctx, userID, lc); err != nil {
		logger.WithField("user_id", userID).Warnf("cache longevity context: %v", err)
	}
	return lc
}

// Report returns the scored report of one of the user's submissions
func (s *SubmissionService) Report(ctx context.Context, userID, submissionID string) (interface{}, error) {
	cached, err := s.reports.Get(ctx, submissionID)
	if err != nil {
		logger.WithField("submission_id", submissionID).Warnf("read report cache: %v", err)
	}
	if cached != nil {
		if cached.UserID != userID {
			return nil, ErrNotFound
		}
		return cached.Report, nil
	}

	sub, err := s.submissions.GetByID(ctx, submissionID)
	if err != nil {
		return nil, fmt.Errorf("load submission: %w", err)
	}
	if sub == nil || sub.UserID != userID {
		return nil, ErrNotFound
	}
	report := sub.Report()
	if report == nil {
		return nil, ErrNotFound
	}
	if err := s.reports.Set(ctx, sub.ID, sub.UserID, sub.QuizID, report); err != nil {
		logger.WithField("submission_id", submissionID).Warnf("cache report: %v", err)
	}
	return report, nil
}

// ListMine returns the user's submissions newest first, joined with saved results
func (s *SubmissionService) ListMine(ctx context.Context, userID string) ([]*model.SubmissionWithResult, error) {
	subs, err := s.submissions.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return subs, nil
}

package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"healthquiz/internal/model"
)

const submissionsCollection = "submissions"

// SubmissionRepo handles MongoDB operations for submissions
type SubmissionRepo interface {
	Create(ctx context.Context, sub *model.Submission) error
	GetByID(ctx context.Context, id string) (*model.Submission, error)
	LatestByQuiz(ctx context.Context, userID, quizID string) (*model.Submission, error)
	ListByUser(ctx context.Context, userID string) ([]*model.SubmissionWithResult, error)
}

type submissionRepo struct {
	collection *mongo.Collection
}

// NewSubmissionRepo creates a new submission repository
func NewSubmissionRepo(db *mongo.Database) SubmissionRepo {
	return &submissionRepo{
		collection: db.Collection(submissionsCollection),
	}
}

func (r *submissionRepo) Create(ctx context.Context, sub *model.Submission) error {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, sub)
	return err
}

func (r *submissionRepo) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	var sub model.Submission
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *submissionRepo) LatestByQuiz(ctx context.Context, userID, quizID string) (*model.Submission, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "submittedAt", Value: -1}})

	var sub model.Submission
	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "quizId": quizID}, opts).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *submissionRepo) ListByUser(ctx context.Context, userID string) ([]*model.SubmissionWithResult, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$sort", Value: bson.D{{Key: "submittedAt", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         resultsCollection,
			"localField":   "_id",
			"foreignField": "submissionId",
			"as":           "results",
		}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := []*model.SubmissionWithResult{}
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	for _, s := range subs {
		if len(s.Results) > 0 {
			s.Result = &s.Results[0]
		}
		s.Results = nil
	}
	return subs, nil
}

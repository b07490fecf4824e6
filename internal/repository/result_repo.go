package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"healthquiz/internal/model"
)

const resultsCollection = "results"

// ResultRepo handles MongoDB operations for saved results
type ResultRepo interface {
	Upsert(ctx context.Context, result *model.Result) error
	GetBySubmissionID(ctx context.Context, submissionID string) (*model.Result, error)
}

type resultRepo struct {
	collection *mongo.Collection
}

// NewResultRepo creates a new result repository
func NewResultRepo(db *mongo.Database) ResultRepo {
	return &resultRepo{
		collection: db.Collection(resultsCollection),
	}
}

func (r *resultRepo) Upsert(ctx context.Context, result *model.Result) error {
	result.UpdatedAt = time.Now().UTC()
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"submissionId": result.SubmissionID}, result, opts)
	return err
}

func (r *resultRepo) GetBySubmissionID(ctx context.Context, submissionID string) (*model.Result, error) {
	var result model.Result
	err := r.collection.FindOne(ctx, bson.M{"submissionId": submissionID}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

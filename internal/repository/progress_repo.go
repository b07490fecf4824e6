package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"healthquiz/internal/model"
)

const progressCollection = "userProgress"

// ProgressRepo handles MongoDB operations for course progress
type ProgressRepo interface {
	Get(ctx context.Context, userID string) (*model.Progress, error)
	Upsert(ctx context.Context, progress *model.Progress) error
}

type progressRepo struct {
	collection *mongo.Collection
}

// NewProgressRepo creates a new progress repository
func NewProgressRepo(db *mongo.Database) ProgressRepo {
	return &progressRepo{
		collection: db.Collection(progressCollection),
	}
}

func (r *progressRepo) Get(ctx context.Context, userID string) (*model.Progress, error) {
	var progress model.Progress
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&progress)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// Upsert overwrites the stored location and lesson list and stamps lastActiveAt
func (r *progressRepo) Upsert(ctx context.Context, progress *model.Progress) error {
	progress.LastActiveAt = time.Now().UTC()
	opts := options.Update().SetUpsert(true)
	update := bson.M{"$set": progress}
	_, err := r.collection.UpdateOne(ctx, bson.M{"userId": progress.UserID}, update, opts)
	return err
}

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"healthquiz/internal/logger"
)

// EnsureIndexes creates the indexes the repositories rely on. Failures are logged and
// do not stop startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) {
	createIndex(ctx, db.Collection(usersCollection), bson.D{{Key: "email", Value: 1}}, true)

	createIndex(ctx, db.Collection(submissionsCollection), bson.D{
		{Key: "userId", Value: 1},
		{Key: "quizId", Value: 1},
		{Key: "submittedAt", Value: -1},
	}, false)

	createIndex(ctx, db.Collection(resultsCollection), bson.D{{Key: "submissionId", Value: 1}}, true)
	createIndex(ctx, db.Collection(progressCollection), bson.D{{Key: "userId", Value: 1}}, true)

	logger.Info("mongo indexes ensured")
}

func createIndex(ctx context.Context, coll *mongo.Collection, keys bson.D, unique bool) {
	opts := options.Index().SetUnique(unique)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys, Options: opts})
	if err != nil {
		logger.Warnf("failed to create index on %s: %v", coll.Name(), err)
	}
}

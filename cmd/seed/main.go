package main

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"healthquiz/internal/app"
	"healthquiz/internal/config"
	"healthquiz/internal/logger"
	"healthquiz/internal/model"
	"healthquiz/internal/repository"
	"healthquiz/internal/scoring"
	"healthquiz/internal/service"
)

const (
	demoEmail    = "demo@healthquiz.local"
	demoPassword = "demo-password"
)

func main() {
	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	repository.EnsureIndexes(ctx, db)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr()})
	defer rdb.Close()

	a := app.New(cfg, db, rdb)
	authSvc, submissionSvc := a.Auth, a.Submissions

	var userID string
	auth, err := authSvc.Register(ctx, &model.RegisterRequest{
		Email:     demoEmail,
		Password:  demoPassword,
		FirstName: "Demo",
		LastName:  "User",
	})
	switch {
	case err == nil:
		userID = auth.UserID
	case errors.Is(err, service.ErrUserExists):
		auth, err = authSvc.Login(ctx, &model.LoginRequest{Email: demoEmail, Password: demoPassword})
		if err != nil {
			logger.Fatalf("demo user exists but login failed: %v", err)
		}
		userID = auth.UserID
	default:
		logger.Fatalf("failed to register demo user: %v", err)
	}

	longevity, err := submissionSvc.Submit(ctx, userID, &model.SubmitRequest{
		QuizID: model.QuizLongevity,
		SubmittedAnswers: []scoring.SubmittedAnswer{
			seedAnswer("birthdate", "What is your date of birth?", scoring.Text("1975-03-14")),
			seedAnswer("height", "How tall are you?", scoring.Record(map[string]scoring.Value{
				"ft": scoring.Number(5),
				"in": scoring.Number(9),
			})),
			seedAnswer("weight", "How much do you weigh (lbs)?", scoring.Number(172)),
			seedAnswer("smoking", "How often do you smoke?", scoring.Text("Never")),
			seedAnswer("exerciseFrequency", "How many days a week do you exercise?", scoring.Text("3-4 days")),
			seedAnswer("sleepHours", "How many hours do you sleep?", scoring.Text("7-8 hours")),
			seedAnswer("stressLevels", "How stressed do you feel day to day?", scoring.Number(30)),
			seedAnswer("familyHistory", "Has a close relative had heart disease?", scoring.Text("No")),
		},
	})
	if err != nil {
		logger.Fatalf("failed to seed longevity submission: %v", err)
	}

	cardiac, err := submissionSvc.Submit(ctx, userID, &model.SubmitRequest{
		QuizID: model.QuizCardiacHealth,
		SubmittedAnswers: []scoring.SubmittedAnswer{
			seedAnswer("dx-cardiac-history", "Which conditions have you been diagnosed with?", scoring.List("High cholesterol")),
			seedAnswer("symptoms-chest-pain", "Do you get chest pain on exertion?", scoring.Text("No")),
			seedAnswer("cardio-minutes", "How much cardio do you do each week?", scoring.Text("1-2 hours")),
			seedAnswer("stress-control", "How often does stress feel out of control?", scoring.Text("Some days")),
		},
	})
	if err != nil {
		logger.Fatalf("failed to seed cardiac submission: %v", err)
	}

	logger.WithFields(logger.Fields{
		"user_id":   userID,
		"email":     demoEmail,
		"longevity": longevity.SubmissionID,
		"cardiac":   cardiac.SubmissionID,
	}).Info("seed data created")
}

func seedAnswer(id, text string, v scoring.Value) scoring.SubmittedAnswer {
	return scoring.SubmittedAnswer{QuestionID: id, QuestionText: text, Value: v}
}

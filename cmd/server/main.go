package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"healthquiz/internal/app"
	"healthquiz/internal/config"
	"healthquiz/internal/logger"
	"healthquiz/internal/repository"
	"healthquiz/internal/transport/rest"
	"healthquiz/internal/transport/ws"
)

// @title Health Quiz API
// @version 1.0
// @description Longevity and cardiac health questionnaires with scored reports
// @host localhost:8080
// @BasePath /v1
func main() {
	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)
	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logger.Fatalf("failed to ping MongoDB: %v", err)
	}
	logger.WithField("db", cfg.MongoDB).Info("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)
	repository.EnsureIndexes(ctx, db)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr(),
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Fatalf("failed to ping Redis: %v", err)
	}
	logger.Info("connected to Redis")

	wsHub := ws.NewHub()

	a := app.New(cfg, db, rdb)

	// wsHub implements service.Broadcaster
	a.Submissions.SetBroadcaster(wsHub)

	router := rest.NewRouter(&rest.Container{
		AuthService:       a.Auth,
		UserService:       a.Users,
		SubmissionService: a.Submissions,
		ResultService:     a.Results,
		ProgressService:   a.Progress,
		WSHub:             wsHub,
		AllowedOrigins:    cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("ListenAndServe: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}

	logger.Info("server exited")
}

package app

import (
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"healthquiz/internal/cache"
	"healthquiz/internal/config"
	"healthquiz/internal/repository"
	"healthquiz/internal/service"
)

// App wires repositories, caches and services over one Mongo database and Redis client
type App struct {
	UserRepo       repository.UserRepo
	SubmissionRepo repository.SubmissionRepo
	ResultRepo     repository.ResultRepo
	ProgressRepo   repository.ProgressRepo

	ReportCache  cache.ReportCache
	ContextCache cache.LongevityContextCache

	Auth        *service.AuthService
	Users       *service.UserService
	Submissions *service.SubmissionService
	Results     *service.ResultService
	Progress    *service.ProgressService
}

func New(cfg *config.Config, db *mongo.Database, rdb *redis.Client) *App {
	a := &App{
		UserRepo:       repository.NewUserRepo(db),
		SubmissionRepo: repository.NewSubmissionRepo(db),
		ResultRepo:     repository.NewResultRepo(db),
		ProgressRepo:   repository.NewProgressRepo(db),
		ReportCache:    cache.NewReportCache(rdb, cfg.ReportCacheTTL),
		ContextCache:   cache.NewLongevityContextCache(rdb),
	}

	a.Auth = service.NewAuthService(a.UserRepo, cfg.JWTSecret, cfg.JWTTTL)
	a.Users = service.NewUserService(a.UserRepo)
	a.Submissions = service.NewSubmissionService(a.SubmissionRepo, a.UserRepo, a.ReportCache, a.ContextCache)
	a.Results = service.NewResultService(a.ResultRepo)
	a.Progress = service.NewProgressService(a.ProgressRepo)
	return a
}

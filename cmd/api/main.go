package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "chorechart/docs"
	"chorechart/internal/adapters/cache"
	adapterHTTP "chorechart/internal/adapters/handler/http"
	"chorechart/internal/adapters/repository"
	"chorechart/internal/config"
	"chorechart/internal/core/domain"
	"chorechart/internal/core/services"
	"chorechart/internal/core/workers"
)

// @title ChoreChart API
// @version 1.0
// @description Household chore chart: children, recurring tasks, daily check-offs and weekly reviews.
// @BasePath /api/v1
func main() {
	startTime := time.Now()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg := config.LoadConfig()

	logger.Info("Connecting to database",
		zap.String("host", cfg.DbHost), zap.String("db", cfg.DbName))

	db, err := sqlx.Connect("pgx", cfg.DSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := repository.RunMigrations(context.Background(), db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	childRepo := repository.NewPostgresChildRepository(db)
	completionRepo := repository.NewPostgresCompletionRepository(db)

	var taskRepo domain.TaskRepository = repository.NewPostgresTaskRepository(db)

	// Redis is optional: without it the app runs uncached and unthrottled.
	var rdb *redis.Client
	if cfg.RedisHost != "" {
		rdb, err = cache.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Warn("Redis unavailable, running without cache and rate limiting", zap.Error(err))
			rdb = nil
		} else {
			taskRepo = repository.NewCachedTaskRepository(taskRepo, rdb)
			defer rdb.Close()
		}
	}

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	positionWorker := workers.NewPositionWorker(taskRepo)
	positionWorker.Start(workerCtx)

	sessionService := services.NewSessionService(cfg.SessionSecret, "chorechart", cfg.SessionDuration, childRepo)
	childService := services.NewChildService(childRepo)
	taskService := services.NewTaskService(taskRepo, childRepo, completionRepo, positionWorker)
	completionService := services.NewCompletionService(completionRepo, taskRepo)
	reviewService := services.NewReviewService(childRepo, taskRepo, completionRepo)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		ChildHandler:      adapterHTTP.NewChildHandler(childService, sessionService, cfg.SessionDuration),
		TaskHandler:       adapterHTTP.NewTaskHandler(taskService, cfg.DefaultTimezone),
		CompletionHandler: adapterHTTP.NewCompletionHandler(completionService, taskService, cfg.DefaultTimezone),
		ReviewHandler:     adapterHTTP.NewReviewHandler(reviewService, cfg.WeekStartDay, cfg.DefaultTimezone),
		SessionService:    sessionService,
		DB:                db,
		Redis:             rdb,
		Logger:            logger,
		StartTime:         startTime,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("ChoreChart running", zap.String("addr", "http://localhost:"+cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Stop signal received, shutting down")

	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Forced shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

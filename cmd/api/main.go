package main

import (
	"context"
	"errors"
	"fmt"
	"hirewise-backend/config"
	_ "hirewise-backend/docs" // Important for Swagger
	v1 "hirewise-backend/internal/delivery/http/v1"
	"hirewise-backend/internal/domain"
	"hirewise-backend/internal/persistence"
	"hirewise-backend/internal/repository/file"
	"hirewise-backend/internal/repository/memory"
	"hirewise-backend/internal/repository/postgres"
	redisrepo "hirewise-backend/internal/repository/redis"
	"hirewise-backend/internal/store"
	"hirewise-backend/internal/usecase"
	"hirewise-backend/pkg/database"
	"hirewise-backend/pkg/logger"
	"hirewise-backend/pkg/redis"
	"hirewise-backend/pkg/validation"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// @title           Hirewise Recruitment API
// @version         1.0
// @description     Job board and applicant tracking backed by a single mirrored state snapshot.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	if err := run(); err != nil {
		logger.Log.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

// run wires the application and blocks until shutdown. Returning instead of
// exiting lets every deferred Close run on the failure paths too.
func run() error {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting hirewise backend", "port", cfg.Port, "storage", cfg.StorageDriver)

	ctx := context.Background()
	checks := map[string]usecase.HealthCheck{}

	// 3. Setup Redis (snapshot storage and/or shared rate limit counters)
	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			if cfg.StorageDriver == config.StorageRedis {
				return fmt.Errorf("connect to redis: %w", err)
			}
			logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			checks["redis"] = func(ctx context.Context) error { return redis.HealthCheck(ctx, redisClient) }
		}
	}

	// 4. Setup Snapshot Repository
	var repo domain.SnapshotRepository
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer dbPool.Close()
		if err := postgres.EnsureSchema(ctx, dbPool); err != nil {
			return fmt.Errorf("prepare schema: %w", err)
		}
		repo = postgres.NewSnapshotRepository(dbPool)
		checks["database"] = dbPool.Ping
	case config.StorageRedis:
		if redisClient == nil {
			return errors.New("STORAGE_DRIVER=redis requires REDIS_URL")
		}
		repo = redisrepo.NewSnapshotRepository(redisClient)
	case config.StorageMemory:
		logger.Log.Warn("Using in-memory storage, state is lost on restart")
		repo = memory.NewSnapshotRepository()
	default:
		repo, err = file.NewSnapshotRepository(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("prepare data directory %s: %w", cfg.DataDir, err)
		}
	}

	// 5. Setup Persistence Gateway and Store
	gateway := persistence.NewGateway(repo, domain.SnapshotKey, time.Duration(cfg.PersistTimeoutSeconds)*time.Second)

	st := store.New(store.Deps{
		Saver:    gateway,
		Validate: validation.New(),
		Scorer:   store.NewRandomScorer(cfg.MatchScoreMin, cfg.MatchScoreMax),
	})
	st.Restore(ctx, gateway.Load(ctx))

	// 6. Setup UseCases
	analyticsUC := usecase.NewAnalyticsUsecase(st)
	healthUC := usecase.NewHealthUsecase(checks)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		SessionUC:     st,
		JobUC:         st,
		ApplicationUC: st,
		CandidateUC:   st,
		RecruiterUC:   st,
		AnalyticsUC:   analyticsUC,
		HealthUC:      healthUC,
		Config:        cfg,
		Redis:         redisClient,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	serveErr := serve(srv, quit)
	logger.Log.Info("Shutting down server...")

	// Graceful Shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	// Last mutations may still be waiting for the writer
	if err := gateway.Close(shutdownCtx); err != nil {
		logger.Log.Error("Final state flush failed", "error", err)
	}

	logger.Log.Info("Server exiting")
	return serveErr
}

// serve runs srv until a signal arrives on quit or the listener fails.
func serve(srv *http.Server, quit <-chan os.Signal) error {
	listenErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	case sig := <-quit:
		logger.Log.Info("Signal received", "signal", sig.String())
		return nil
	}
}

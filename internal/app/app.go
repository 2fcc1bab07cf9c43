package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rakhadjo/feedsight/internal/auth"
	"github.com/rakhadjo/feedsight/internal/config"
	"github.com/rakhadjo/feedsight/internal/repository"
	"github.com/rakhadjo/feedsight/internal/server"
	"github.com/rakhadjo/feedsight/internal/service"
	"github.com/rakhadjo/feedsight/pkg/cache"
	dbbuilder "github.com/rakhadjo/feedsight/pkg/database"
	"github.com/rakhadjo/feedsight/pkg/httpserver"
)

type App struct {
	logger     *zap.Logger
	dbPool     *sql.DB
	cache      server.Cacher
	httpServer *httpserver.Server
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	var (
		dbPool       *sql.DB
		feedbackRepo service.FeedbackRepository
		topicStore   server.TopicStore
		userRepo     auth.UserRepository
	)

	if cfg.StoreConfigured() {
		pool, err := dbbuilder.New(
			dbbuilder.WithDriver(cfg.DBDriver),
			dbbuilder.WithDataSource(cfg.DBPath),
		)
		if err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
		logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

		feedbacks := repository.NewFeedbackRepository(pool)
		topics := repository.NewTopicRepository(pool)
		users := repository.NewUserRepository(pool)
		if err := feedbacks.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("feedback schema init failed: %w", err)
		}
		if err := topics.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("topic schema init failed: %w", err)
		}
		if err := users.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("user schema init failed: %w", err)
		}

		dbPool = pool
		feedbackRepo = feedbacks
		topicStore = topics
		userRepo = users
	} else {
		logger.Warn("database path not configured, serving sample data only")
	}

	var cacheClient server.Cacher
	if c, err := cache.New(ctx, cache.WithAddress(cfg.RedisAddr)); err != nil {
		logger.Warn("cache unavailable, continuing without it",
			zap.String("addr", cfg.RedisAddr), zap.Error(err))
		cacheClient = cache.Noop{}
	} else {
		logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))
		cacheClient = c
	}

	feedbackService := service.NewFeedbackService(feedbackRepo, logger)

	handlers := server.NewHandlers(feedbackService, topicStore, cacheClient, logger, cfg.CacheTTL)

	authService := auth.NewService(userRepo, cfg.JWTSecret, 24*time.Hour, logger)
	authHandlers := server.NewAuthHandlers(authService, logger)

	httpServer, err := httpserver.New(
		httpserver.WithPort(cfg.HTTPPort),
		httpserver.WithLogger(logger),
		httpserver.WithReleaseMode(cfg.AppEnv == "production"),
		httpserver.WithLogging(true),
		httpserver.WithCORSOrigins(cfg.CORSOrigins...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server: %w", err)
	}

	server.Register(httpServer.Engine(), handlers, authHandlers)

	return &App{
		logger:     logger,
		dbPool:     dbPool,
		cache:      cacheClient,
		httpServer: httpServer,
	}, nil
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting", zap.String("addr", a.httpServer.Addr().String()))

	a.httpServer.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("http shutdown error", zap.Error(err))
	}

	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}
	if a.dbPool != nil {
		if err := a.dbPool.Close(); err != nil {
			a.logger.Error("database shutdown error", zap.Error(err))
		}
	}

	select {
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			a.logger.Warn("shutdown completed but deadline exceeded")
		}
	default:
		a.logger.Info("graceful shutdown completed successfully")
	}

	_ = a.logger.Sync()
	return nil
}

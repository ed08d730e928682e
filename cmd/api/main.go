package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-scaler/internal/adapter/handler"
	"github.com/marcos-nsantos/image-scaler/internal/adapter/queue"
	"github.com/marcos-nsantos/image-scaler/internal/adapter/repository"
	"github.com/marcos-nsantos/image-scaler/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/auth"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/cache"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/config"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/database"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/observability"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/server"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/storage"
	"github.com/marcos-nsantos/image-scaler/internal/usecase/scale"
)

//go:generate swag init -g main.go -d ./,../../internal/adapter/handler,../../internal/pkg/httputil -o ../../docs

//	@title						Image Scaler API
//	@version					1.0
//	@description				Derives resized and squared variants of images stored in S3.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log, "image-scaler")
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Storage
	s3Storage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		logger.Fatal("failed to create s3 storage", zap.Error(err))
	}
	imageProcessor := storage.NewImageProcessor(cfg.Scaler.JPEGQuality)

	// Variant catalog
	var catalog repository.VariantRepository
	if cfg.Database.Enabled {
		pool, err := database.NewPostgresPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		applied, err := database.RunMigrations(ctx, pool, cfg.Database.MigrationsPath)
		if err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
		logger.Info("migrations applied", zap.Int("count", applied))

		catalog = postgres.NewVariantRepo(pool)
	}

	// Use cases
	scaleSvc := scale.NewService(s3Storage, imageProcessor, catalog, logger, scale.Config{
		Prefix:  cfg.Scaler.Prefix,
		Targets: cfg.Scaler.Targets,
		Workers: cfg.Scaler.WorkerCount(),
	})

	// Stream trigger and rate limiting
	var (
		jobQueue    handler.JobQueue
		rateLimiter *middleware.RateLimiter
	)
	workerDone := make(chan struct{})
	if cfg.Redis.Enabled {
		rc, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer rc.Close()

		worker := queue.NewWorker(rc, cfg.Stream, scaleSvc, logger)
		go func() {
			defer close(workerDone)
			if err := worker.Start(ctx); err != nil {
				logger.Error("stream worker stopped", zap.Error(err))
			}
		}()

		if cfg.Stream.AsyncEvents {
			jobQueue = queue.NewProducer(rc, cfg.Stream.Name, cfg.Stream.MaxLen)
		}
		if cfg.RateLimit.Enabled {
			rateLimiter = middleware.NewRateLimiter(rc, cfg.RateLimit)
		}
	} else {
		close(workerDone)
	}

	// Middleware
	var authMiddleware *middleware.AuthMiddleware
	if cfg.JWT.SecretKey != "" {
		jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.TokenTTL)
		authMiddleware = middleware.NewAuthMiddleware(jwtSvc)
	} else {
		logger.Warn("JWT_SECRET_KEY is not set, trigger routes accept anonymous requests")
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		EventHandler:   handler.NewEventHandler(scaleSvc, jobQueue),
		VariantHandler: handler.NewVariantHandler(scaleSvc),
		AuthMiddleware: authMiddleware,
		RateLimiter:    rateLimiter,
		Logger:         logger,
		Environment:    cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:              cfg.Server.Port,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		Handler:           router.Engine(),
		Logger:            logger,
	})

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		logger.Warn("stream worker did not stop before the shutdown timeout")
	}

	logger.Info("server stopped")
}

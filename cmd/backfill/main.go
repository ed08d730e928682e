package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-scaler/internal/adapter/queue"
	"github.com/marcos-nsantos/image-scaler/internal/adapter/repository"
	"github.com/marcos-nsantos/image-scaler/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/cache"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/config"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/database"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/observability"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/storage"
	"github.com/marcos-nsantos/image-scaler/internal/usecase/backfill"
	"github.com/marcos-nsantos/image-scaler/internal/usecase/scale"
)

func main() {
	var (
		bucket  string
		enqueue bool
		workers int
	)
	flag.StringVar(&bucket, "bucket", "", "bucket whose objects are scaled")
	flag.StringVar(&bucket, "b", "", "shorthand for -bucket")
	flag.BoolVar(&enqueue, "enqueue", false, "hand keys to the stream workers instead of scaling them here")
	flag.IntVar(&workers, "workers", 0, "keys handled concurrently (default: number of CPUs)")
	flag.Parse()

	if bucket == "" {
		fmt.Fprintln(os.Stderr, "usage: backfill -bucket <name> [-enqueue] [-workers n]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log, "image-scaler-backfill")
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s3Storage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		logger.Fatal("failed to create s3 storage", zap.Error(err))
	}

	var catalog repository.VariantRepository
	if cfg.Database.Enabled {
		pool, err := database.NewPostgresPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()
		catalog = postgres.NewVariantRepo(pool)
	}

	// Per-image fan-out stays single-threaded; keys are the unit of
	// concurrency here.
	scaleSvc := scale.NewService(s3Storage, storage.NewImageProcessor(cfg.Scaler.JPEGQuality), catalog, logger, scale.Config{
		Prefix:  cfg.Scaler.Prefix,
		Targets: cfg.Scaler.Targets,
		Workers: 1,
	})

	var enqueuer backfill.Enqueuer
	if enqueue {
		if !cfg.Redis.Enabled {
			logger.Fatal("-enqueue requires REDIS_ENABLED=true")
		}
		rc, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer rc.Close()
		enqueuer = queue.NewProducer(rc, cfg.Stream.Name, cfg.Stream.MaxLen)
	}

	if workers <= 0 {
		workers = cfg.Scaler.WorkerCount()
	}

	svc := backfill.NewService(s3Storage, scaleSvc, enqueuer, logger, backfill.Config{
		Prefix:  cfg.Scaler.Prefix,
		Workers: workers,
	})

	summary, err := svc.Run(ctx, bucket)
	if summary != nil {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(summary)
	}
	if err != nil {
		logger.Fatal("backfill failed", zap.Error(err))
	}
	if summary.Failed > 0 {
		os.Exit(1)
	}
}

package backfill

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/marcos-nsantos/image-scaler/internal/usecase/scale"
)

type KeyLister interface {
	ListKeys(ctx context.Context, bucket string) ([]string, error)
}

type Processor interface {
	Process(ctx context.Context, bucket, key string) (*scale.Result, error)
}

type Enqueuer interface {
	Enqueue(ctx context.Context, bucket, key string) (string, error)
}

type Summary struct {
	Total     int `json:"total"`
	Processed int `json:"processed"`
	Enqueued  int `json:"enqueued"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

type Config struct {
	Prefix  string
	Workers int
}

type Service struct {
	lister     KeyLister
	processor  Processor
	enqueuer   Enqueuer
	classifier scale.Classifier
	logger     *zap.Logger
	workers    int
}

// NewService scales keys inline through processor unless enqueuer is set,
// in which case keys are handed to the stream workers instead.
func NewService(lister KeyLister, processor Processor, enqueuer Enqueuer, logger *zap.Logger, cfg Config) *Service {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Service{
		lister:     lister,
		processor:  processor,
		enqueuer:   enqueuer,
		classifier: scale.NewClassifier(cfg.Prefix),
		logger:     logger,
		workers:    workers,
	}
}

// Run visits every key in bucket. A failing key is logged and counted and
// does not stop the others; only listing errors and cancellation are
// returned.
func (s *Service) Run(ctx context.Context, bucket string) (*Summary, error) {
	keys, err := s.lister.ListKeys(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("listing bucket %s: %w", bucket, err)
	}

	s.logger.Info("starting backfill",
		zap.String("bucket", bucket),
		zap.Int("keys", len(keys)),
		zap.Bool("enqueue", s.enqueuer != nil),
		zap.Int("workers", s.workers),
	)

	var (
		mu      sync.Mutex
		summary = &Summary{Total: len(keys)}
	)

	var g errgroup.Group
	g.SetLimit(s.workers)
	for _, key := range keys {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			o := s.visit(ctx, bucket, key)
			mu.Lock()
			summary.add(o)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info("backfill finished",
		zap.String("bucket", bucket),
		zap.Int("total", summary.Total),
		zap.Int("processed", summary.Processed),
		zap.Int("enqueued", summary.Enqueued),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)

	if err := ctx.Err(); err != nil {
		return summary, fmt.Errorf("backfill interrupted: %w", err)
	}
	return summary, nil
}

type outcome int

const (
	outcomeProcessed outcome = iota
	outcomeEnqueued
	outcomeSkipped
	outcomeFailed
)

func (sum *Summary) add(o outcome) {
	switch o {
	case outcomeProcessed:
		sum.Processed++
	case outcomeEnqueued:
		sum.Enqueued++
	case outcomeSkipped:
		sum.Skipped++
	case outcomeFailed:
		sum.Failed++
	}
}

func (s *Service) visit(ctx context.Context, bucket, key string) outcome {
	logger := s.logger.With(zap.String("bucket", bucket), zap.String("key", key))

	if s.enqueuer != nil {
		// Derived and non-image keys never reach the stream.
		if _, err := s.classifier.Classify(key); err != nil {
			logger.Debug("not enqueueing", zap.Error(err))
			return outcomeSkipped
		}
		if _, err := s.enqueuer.Enqueue(ctx, bucket, key); err != nil {
			logger.Error("enqueueing key", zap.Error(err))
			return outcomeFailed
		}
		return outcomeEnqueued
	}

	result, err := s.processor.Process(ctx, bucket, key)
	if err != nil {
		logger.Error("scaling key", zap.Error(err))
		return outcomeFailed
	}
	if result.Status == scale.StatusSkipped {
		return outcomeSkipped
	}
	return outcomeProcessed
}

package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/marcos-nsantos/image-scaler/internal/domain"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/config"
)

const minClaimIdle = 30 * time.Second

type Worker struct {
	rc        redis.UniversalClient
	cfg       config.StreamConfig
	processor JobProcessor
	logger    *zap.Logger
}

func NewWorker(rc redis.UniversalClient, cfg config.StreamConfig, processor JobProcessor, logger *zap.Logger) *Worker {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &Worker{
		rc:        rc,
		cfg:       cfg,
		processor: processor,
		logger:    logger.With(zap.String("stream", cfg.Name), zap.String("group", cfg.Group)),
	}
}

func (w *Worker) EnsureGroup(ctx context.Context) error {
	err := w.rc.XGroupCreateMkStream(ctx, w.cfg.Name, w.cfg.Group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("creating consumer group: %w", err)
	}
	return nil
}

// Start blocks until ctx is cancelled or a consumer loop fails.
func (w *Worker) Start(ctx context.Context) error {
	if err := w.EnsureGroup(ctx); err != nil {
		return err
	}

	w.logger.Info("starting stream workers",
		zap.String("consumer", w.cfg.Consumer),
		zap.Int("workers", w.cfg.Workers),
	)

	w.replayPending(ctx)
	w.autoClaim(ctx)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < w.cfg.Workers; i++ {
		g.Go(func() error {
			return w.loop(gctx)
		})
	}

	err := g.Wait()
	w.logger.Info("stream workers stopped")
	return err
}

// replayPending handles entries this consumer read but never acknowledged,
// such as a retry whose wait was cut short by a restart.
func (w *Worker) replayPending(ctx context.Context) {
	next := "0"
	replayed := 0

	for ctx.Err() == nil {
		streams, err := w.rc.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    w.cfg.Group,
			Consumer: w.cfg.Consumer,
			Streams:  []string{w.cfg.Name, next},
			Count:    100,
			Block:    -1,
		}).Result()
		if err != nil {
			if ctx.Err() == nil && !errors.Is(err, redis.Nil) {
				w.logger.Warn("reading pending entries", zap.Error(err))
			}
			break
		}
		if len(streams) == 0 || len(streams[0].Messages) == 0 {
			break
		}

		for _, m := range streams[0].Messages {
			w.handle(ctx, m)
			next = m.ID
			replayed++
		}
	}

	if replayed > 0 {
		w.logger.Info("replayed pending entries", zap.Int("count", replayed))
	}
}

// autoClaim takes ownership of entries another consumer read but never
// acknowledged, so they are delivered again to this consumer.
func (w *Worker) autoClaim(ctx context.Context) {
	minIdle := max(minClaimIdle, w.cfg.BlockTimeout*6)
	next := "0-0"
	claimed := 0

	for {
		msgs, start, err := w.rc.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   w.cfg.Name,
			Group:    w.cfg.Group,
			Consumer: w.cfg.Consumer,
			MinIdle:  minIdle,
			Start:    next,
			Count:    100,
		}).Result()
		if err != nil {
			w.logger.Warn("auto-claim failed", zap.Error(err))
			return
		}
		claimed += len(msgs)
		for _, m := range msgs {
			w.handle(ctx, m)
		}
		if start == "0-0" || len(msgs) == 0 {
			break
		}
		next = start
	}

	if claimed > 0 {
		w.logger.Info("adopted pending entries", zap.Int("count", claimed))
	}
}

func (w *Worker) loop(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		streams, err := w.rc.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    w.cfg.Group,
			Consumer: w.cfg.Consumer,
			Streams:  []string{w.cfg.Name, ">"},
			Count:    1,
			Block:    w.cfg.BlockTimeout,
		}).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if !errors.Is(err, redis.Nil) {
				w.logger.Warn("reading stream", zap.Error(err))
				select {
				case <-ctx.Done():
					return nil
				case <-time.After(w.cfg.BackoffBase):
				}
			}
			continue
		}

		for _, s := range streams {
			for _, m := range s.Messages {
				w.handle(ctx, m)
			}
		}
	}
}

// handle acknowledges an entry only once it is finished with: processed,
// dropped, or copied back onto the stream as a new entry carrying the next
// attempt and the time before which it must not run. An entry interrupted by
// shutdown stays pending and is replayed on the next start.
func (w *Worker) handle(ctx context.Context, m redis.XMessage) {
	raw, ok := m.Values[fieldPayload].(string)
	if !ok {
		w.logger.Error("dropping entry without payload", zap.String("id", m.ID))
		w.ack(ctx, m.ID)
		return
	}

	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		w.logger.Error("dropping malformed entry", zap.String("id", m.ID), zap.Error(err))
		w.ack(ctx, m.ID)
		return
	}
	attempt := toInt(m.Values[fieldAttempt])

	logger := w.logger.With(
		zap.String("id", m.ID),
		zap.String("bucket", job.Bucket),
		zap.String("key", job.Key),
		zap.Int("attempt", attempt),
	)

	if !waitUntil(ctx, toInt(m.Values[fieldNotBefore])) {
		logger.Info("stopped before retry was due, leaving entry pending")
		return
	}

	result, err := w.processor.Process(ctx, job.Bucket, job.Key)
	switch {
	case err == nil:
		logger.Info("processed job", zap.String("result", result.String()))
	case ctx.Err() != nil:
		logger.Warn("job interrupted, leaving entry pending", zap.Error(err))
		return
	case !retryable(err):
		logger.Error("job failed permanently", zap.Error(err))
	case attempt+1 >= w.cfg.MaxAttempts:
		logger.Error("job exhausted attempts", zap.Error(err))
	default:
		backoff := w.cfg.BackoffBase << attempt
		if rerr := w.requeue(ctx, raw, attempt+1, time.Now().Add(backoff)); rerr != nil {
			logger.Error("requeueing job, leaving entry pending", zap.Error(rerr))
			return
		}
		logger.Warn("job failed, requeued", zap.Duration("backoff", backoff), zap.Error(err))
	}

	w.ack(ctx, m.ID)
}

func (w *Worker) requeue(ctx context.Context, raw string, attempt int, notBefore time.Time) error {
	return w.rc.XAdd(context.WithoutCancel(ctx), &redis.XAddArgs{
		Stream: w.cfg.Name,
		MaxLen: w.cfg.MaxLen,
		Approx: true,
		Values: map[string]any{
			fieldPayload:   raw,
			fieldAttempt:   attempt,
			fieldNotBefore: notBefore.UnixMilli(),
		},
	}).Err()
}

func (w *Worker) ack(ctx context.Context, id string) {
	if err := w.rc.XAck(context.WithoutCancel(ctx), w.cfg.Name, w.cfg.Group, id).Err(); err != nil {
		w.logger.Error("acknowledging entry", zap.String("id", id), zap.Error(err))
	}
}

// waitUntil blocks until notBefore, given in Unix milliseconds. It reports
// false when ctx ends first.
func waitUntil(ctx context.Context, notBefore int) bool {
	d := time.Until(time.UnixMilli(int64(notBefore)))
	if notBefore <= 0 || d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// retryable reports whether running the job again could succeed. A source
// that does not decode will not decode on the next attempt either.
func retryable(err error) bool {
	return !errors.Is(err, domain.ErrDecodeImage) && !errors.Is(err, domain.ErrInvalidImage)
}

func toInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case string:
		n, _ := strconv.Atoi(t)
		return n
	default:
		return 0
	}
}

package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type Producer struct {
	rc     redis.UniversalClient
	stream string
	maxLen int64
}

func NewProducer(rc redis.UniversalClient, stream string, maxLen int64) *Producer {
	return &Producer{rc: rc, stream: stream, maxLen: maxLen}
}

// Enqueue appends a job to the stream and returns the entry ID.
func (p *Producer) Enqueue(ctx context.Context, bucket, key string) (string, error) {
	raw, err := json.Marshal(Job{Bucket: bucket, Key: key})
	if err != nil {
		return "", fmt.Errorf("encoding job: %w", err)
	}

	id, err := p.rc.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: map[string]any{
			fieldPayload: string(raw),
			fieldAttempt: 0,
		},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("enqueuing %s/%s: %w", bucket, key, err)
	}

	return id, nil
}

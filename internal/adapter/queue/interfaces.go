package queue

import (
	"context"

	"github.com/marcos-nsantos/image-scaler/internal/usecase/scale"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/queue_mocks.go -package=mocks

type JobProcessor interface {
	Process(ctx context.Context, bucket, key string) (*scale.Result, error)
}

package handler

import (
	"context"

	"github.com/marcos-nsantos/image-scaler/internal/domain/entity"
	"github.com/marcos-nsantos/image-scaler/internal/pkg/pagination"
	"github.com/marcos-nsantos/image-scaler/internal/usecase/scale"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type ScaleService interface {
	Process(ctx context.Context, bucket, key string) (*scale.Result, error)
}

type VariantService interface {
	ListVariants(ctx context.Context, bucket, sourceKey string) ([]entity.Variant, error)
	ListBucketVariants(ctx context.Context, bucket string, page, perPage int) ([]entity.Variant, *pagination.Info, error)
}

type JobQueue interface {
	Enqueue(ctx context.Context, bucket, key string) (string, error)
}

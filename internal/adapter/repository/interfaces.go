package repository

import (
	"context"

	"github.com/marcos-nsantos/image-scaler/internal/domain/entity"
	"github.com/marcos-nsantos/image-scaler/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type VariantRepository interface {
	Upsert(ctx context.Context, variant *entity.Variant) error
	ListBySource(ctx context.Context, bucket, sourceKey string) ([]entity.Variant, error)
	ListByBucket(ctx context.Context, bucket string, params pagination.Params) ([]entity.Variant, int, error)
}

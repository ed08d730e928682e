package storage

import (
	"context"
	"image"
	"io"

	"github.com/marcos-nsantos/image-scaler/internal/domain/valueobject"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

type ObjectStore interface {
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	Put(ctx context.Context, bucket, key string, body io.Reader, contentType string, size int64) error
	ListKeys(ctx context.Context, bucket string) ([]string, error)
}

type ImageProcessor interface {
	Decode(data []byte) (image.Image, error)
	Resize(img image.Image, width, height int) image.Image
	SquareCrop(img image.Image) image.Image
	Encode(img image.Image, codec valueobject.Codec) ([]byte, error)
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type VariantKind string

const (
	VariantResized VariantKind = "resized"
	VariantSquared VariantKind = "squared"
)

type Variant struct {
	ID          uuid.UUID
	Bucket      string
	SourceKey   string
	Key         string
	Kind        VariantKind
	Dimension   int
	Width       int
	Height      int
	ContentType string
	Size        int64
	CreatedAt   time.Time
}

func NewVariant(bucket, sourceKey, key string, kind VariantKind, dimension, width, height int, contentType string, size int64) *Variant {
	return &Variant{
		ID:          uuid.New(),
		Bucket:      bucket,
		SourceKey:   sourceKey,
		Key:         key,
		Kind:        kind,
		Dimension:   dimension,
		Width:       width,
		Height:      height,
		ContentType: contentType,
		Size:        size,
		CreatedAt:   time.Now().UTC(),
	}
}

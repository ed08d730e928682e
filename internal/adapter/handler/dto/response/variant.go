package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/image-scaler/internal/domain/entity"
	"github.com/marcos-nsantos/image-scaler/internal/pkg/pagination"
)

type VariantResponse struct {
	ID          uuid.UUID `json:"id"`
	Bucket      string    `json:"bucket"`
	SourceKey   string    `json:"source_key"`
	Key         string    `json:"key"`
	Kind        string    `json:"kind"`
	Dimension   int       `json:"dimension"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

type VariantListResponse struct {
	Variants   []VariantResponse `json:"variants"`
	Pagination *pagination.Info  `json:"pagination,omitempty"`
}

func VariantFromEntity(v *entity.Variant) VariantResponse {
	return VariantResponse{
		ID:          v.ID,
		Bucket:      v.Bucket,
		SourceKey:   v.SourceKey,
		Key:         v.Key,
		Kind:        string(v.Kind),
		Dimension:   v.Dimension,
		Width:       v.Width,
		Height:      v.Height,
		ContentType: v.ContentType,
		Size:        v.Size,
		CreatedAt:   v.CreatedAt,
	}
}

func VariantsFromEntities(variants []entity.Variant) []VariantResponse {
	result := make([]VariantResponse, len(variants))
	for i := range variants {
		result[i] = VariantFromEntity(&variants[i])
	}
	return result
}

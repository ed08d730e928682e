package response

import (
	"github.com/marcos-nsantos/image-scaler/internal/usecase/scale"
)

type ScaleResponse struct {
	Bucket   string            `json:"bucket"`
	Key      string            `json:"key"`
	Status   string            `json:"status"`
	Reason   string            `json:"reason,omitempty"`
	Result   string            `json:"result"`
	Variants []VariantResponse `json:"variants"`
}

type EventResponse struct {
	Records []ScaleResponse `json:"records"`
}

type EnqueuedResponse struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	JobID  string `json:"job_id"`
}

type EnqueuedEventResponse struct {
	Jobs []EnqueuedResponse `json:"jobs"`
}

func ScaleFromResult(bucket, key string, r *scale.Result) ScaleResponse {
	return ScaleResponse{
		Bucket:   bucket,
		Key:      key,
		Status:   r.Status.String(),
		Reason:   string(r.Reason),
		Result:   r.String(),
		Variants: VariantsFromEntities(r.Variants),
	}
}

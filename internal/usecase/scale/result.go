package scale

import (
	"errors"

	"github.com/marcos-nsantos/image-scaler/internal/domain"
	"github.com/marcos-nsantos/image-scaler/internal/domain/entity"
)

type Status int

const (
	StatusOK Status = iota + 1
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

type SkipReason string

const (
	ReasonAlreadyScaled   SkipReason = "already-scaled"
	ReasonNoExtension     SkipReason = "no-extension"
	ReasonUnsupportedType SkipReason = "unsupported-type"
)

type Result struct {
	Status   Status
	Reason   SkipReason
	Variants []entity.Variant
}

func OK(variants []entity.Variant) *Result {
	return &Result{Status: StatusOK, Variants: variants}
}

func Skipped(reason SkipReason) *Result {
	return &Result{Status: StatusSkipped, Reason: reason}
}

// String reports the status line callers log: "Ok", "Nothing" for a key
// that is itself a variant, and "" for any other skip.
func (r *Result) String() string {
	switch {
	case r.Status == StatusOK:
		return "Ok"
	case r.Reason == ReasonAlreadyScaled:
		return "Nothing"
	default:
		return ""
	}
}

func skipReason(err error) (SkipReason, bool) {
	switch {
	case errors.Is(err, domain.ErrAlreadyProcessed):
		return ReasonAlreadyScaled, true
	case errors.Is(err, domain.ErrNoExtension):
		return ReasonNoExtension, true
	case errors.Is(err, domain.ErrUnsupportedType):
		return ReasonUnsupportedType, true
	default:
		return "", false
	}
}

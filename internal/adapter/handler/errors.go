package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/image-scaler/internal/domain"
	"github.com/marcos-nsantos/image-scaler/internal/pkg/apperror"
	"github.com/marcos-nsantos/image-scaler/internal/pkg/httputil"
)

// toAppError maps service errors onto responses. Only errors that a retry
// could fix come back as 5xx, so notifiers stop redelivering bad sources.
func toAppError(err error) *apperror.AppError {
	switch {
	case errors.Is(err, domain.ErrDecodeImage), errors.Is(err, domain.ErrInvalidImage):
		return apperror.Unprocessable("IMAGE_UNREADABLE", "source object is not a readable image", err)
	case errors.Is(err, domain.ErrObjectNotFound):
		return apperror.NotFound("object")
	case errors.Is(err, domain.ErrCatalogDisabled):
		return apperror.New("CATALOG_DISABLED", "variant catalog is not configured", http.StatusNotFound)
	default:
		return apperror.Internal(err)
	}
}

func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	httputil.HandleError(c, toAppError(err))
}

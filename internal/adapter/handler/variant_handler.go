package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/image-scaler/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/image-scaler/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/image-scaler/internal/pkg/httputil"
)

type VariantHandler struct {
	variantSvc VariantService
}

func NewVariantHandler(variantSvc VariantService) *VariantHandler {
	return &VariantHandler{variantSvc: variantSvc}
}

// List godoc
//
//	@Summary		List written variants
//	@Description	Returns the variants of one source when source_key is given and a page of the bucket's variants otherwise.
//	@Tags			variants
//	@Produce		json
//	@Security		BearerAuth
//	@Param			bucket		query		string	true	"Bucket name"
//	@Param			source_key	query		string	false	"Source object key"
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			per_page	query		int		false	"Items per page"	default(50)
//	@Success		200			{object}	response.VariantListResponse
//	@Failure		400			{object}	httputil.ErrorResponse
//	@Failure		401			{object}	httputil.ErrorResponse
//	@Failure		404			{object}	httputil.ErrorResponse	"Catalog disabled"
//	@Failure		500			{object}	httputil.ErrorResponse
//	@Router			/variants [get]
func (h *VariantHandler) List(c *gin.Context) {
	var req request.ListVariantsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	if req.SourceKey != "" {
		variants, err := h.variantSvc.ListVariants(c.Request.Context(), req.Bucket, req.SourceKey)
		if err != nil {
			respondError(c, err)
			return
		}
		httputil.OK(c, response.VariantListResponse{Variants: response.VariantsFromEntities(variants)})
		return
	}

	variants, info, err := h.variantSvc.ListBucketVariants(c.Request.Context(), req.Bucket, req.Page, req.PerPage)
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.VariantListResponse{
		Variants:   response.VariantsFromEntities(variants),
		Pagination: info,
	})
}

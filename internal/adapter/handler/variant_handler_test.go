package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/image-scaler/internal/adapter/handler"
	"github.com/marcos-nsantos/image-scaler/internal/domain"
	"github.com/marcos-nsantos/image-scaler/internal/domain/entity"
	"github.com/marcos-nsantos/image-scaler/internal/mocks"
	"github.com/marcos-nsantos/image-scaler/internal/pkg/pagination"
)

func TestVariantHandler_List(t *testing.T) {
	t.Run("lists variants of one source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		variantSvc := mocks.NewMockVariantService(ctrl)
		h := handler.NewVariantHandler(variantSvc)

		router := setupRouter()
		router.GET("/variants", h.List)

		variants := []entity.Variant{
			{
				ID:          uuid.New(),
				Bucket:      "images",
				SourceKey:   "photo.png",
				Key:         "scaled-200-squared-photo.png",
				Kind:        entity.VariantSquared,
				Dimension:   200,
				Width:       100,
				Height:      100,
				ContentType: "image/png",
				Size:        2048,
				CreatedAt:   time.Now(),
			},
		}
		variantSvc.EXPECT().ListVariants(gomock.Any(), "images", "photo.png").Return(variants, nil)

		req := httptest.NewRequest(http.MethodGet, "/variants?bucket=images&source_key=photo.png", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		items := resp["variants"].([]any)
		require.Len(t, items, 1)
		item := items[0].(map[string]any)
		assert.Equal(t, "squared", item["kind"])
		assert.Equal(t, float64(100), item["width"])
		assert.Nil(t, resp["pagination"])
	})

	t.Run("pages through a bucket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		variantSvc := mocks.NewMockVariantService(ctrl)
		h := handler.NewVariantHandler(variantSvc)

		router := setupRouter()
		router.GET("/variants", h.List)

		info := pagination.NewInfo(pagination.NewParams(2, 10), 35)
		variantSvc.EXPECT().ListBucketVariants(gomock.Any(), "images", 2, 10).Return([]entity.Variant{}, info, nil)

		req := httptest.NewRequest(http.MethodGet, "/variants?bucket=images&page=2&per_page=10", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		page := resp["pagination"].(map[string]any)
		assert.Equal(t, float64(4), page["total_pages"])
		assert.Equal(t, true, page["has_next"])
	})

	t.Run("requires a bucket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := handler.NewVariantHandler(mocks.NewMockVariantService(ctrl))

		router := setupRouter()
		router.GET("/variants", h.List)

		req := httptest.NewRequest(http.MethodGet, "/variants?source_key=photo.png", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reports a disabled catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		variantSvc := mocks.NewMockVariantService(ctrl)
		h := handler.NewVariantHandler(variantSvc)

		router := setupRouter()
		router.GET("/variants", h.List)

		variantSvc.EXPECT().ListVariants(gomock.Any(), "images", "photo.png").Return(nil, domain.ErrCatalogDisabled)

		req := httptest.NewRequest(http.MethodGet, "/variants?bucket=images&source_key=photo.png", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "CATALOG_DISABLED", resp["code"])
	})
}

package server_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-scaler/internal/adapter/handler"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/auth"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/server"
	"github.com/marcos-nsantos/image-scaler/internal/mocks"
	"github.com/marcos-nsantos/image-scaler/internal/usecase/scale"
)

func newRouter(t *testing.T, scaleSvc handler.ScaleService, authMw *middleware.AuthMiddleware) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	r := server.NewRouter(server.RouterConfig{
		EventHandler:   handler.NewEventHandler(scaleSvc, nil),
		VariantHandler: handler.NewVariantHandler(mocks.NewMockVariantService(ctrl)),
		AuthMiddleware: authMw,
		Logger:         zap.NewNop(),
		Environment:    "test",
	})
	return r.Engine()
}

func TestRouter_Health(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := newRouter(t, mocks.NewMockScaleService(ctrl), nil)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_TriggerAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jwtSvc := auth.NewJWTService("secret", "image-scaler", time.Hour)
	scaleSvc := mocks.NewMockScaleService(ctrl)
	engine := newRouter(t, scaleSvc, middleware.NewAuthMiddleware(jwtSvc))

	body := `{"bucket":"images","key":"photo.png"}`

	t.Run("rejects anonymous triggers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/scale", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("health stays open", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("accepts authenticated triggers", func(t *testing.T) {
		token, _, err := jwtSvc.GenerateToken("ops")
		require.NoError(t, err)

		scaleSvc.EXPECT().Process(gomock.Any(), "images", "photo.png").Return(scale.OK(nil), nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/scale", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRouter_Swagger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jwtSvc := auth.NewJWTService("secret", "image-scaler", time.Hour)
	engine := newRouter(t, mocks.NewMockScaleService(ctrl), middleware.NewAuthMiddleware(jwtSvc))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swagger-ui")
}

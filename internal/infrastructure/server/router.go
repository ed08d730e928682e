package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-scaler/internal/adapter/handler"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/middleware"
)

type Router struct {
	engine         *gin.Engine
	eventHandler   *handler.EventHandler
	variantHandler *handler.VariantHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	logger         *zap.Logger
}

// RouterConfig leaves AuthMiddleware and RateLimiter nil to serve the
// trigger routes without them.
type RouterConfig struct {
	EventHandler   *handler.EventHandler
	VariantHandler *handler.VariantHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
	Logger         *zap.Logger
	Environment    string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:         engine,
		eventHandler:   cfg.EventHandler,
		variantHandler: cfg.VariantHandler,
		authMiddleware: cfg.AuthMiddleware,
		rateLimiter:    cfg.RateLimiter,
		logger:         cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	api.Use(r.triggerMiddleware()...)
	{
		api.POST("/events/s3", r.eventHandler.HandleS3Event)
		api.POST("/scale", r.eventHandler.Scale)
		api.GET("/variants", r.variantHandler.List)
	}
}

func (r *Router) triggerMiddleware() []gin.HandlerFunc {
	var chain []gin.HandlerFunc
	if r.authMiddleware != nil {
		chain = append(chain, r.authMiddleware.RequireAuth())
	}
	if r.rateLimiter != nil {
		chain = append(chain, r.rateLimiter.Limit())
	}
	return chain
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/observability"
)

type Router struct {
	engine         *gin.Engine
	authHandler    *handler.AuthHandler
	stationHandler *handler.StationHandler
	callerHandler  *handler.CallerHandler
	fixHandler     *handler.FixHandler
	convertHandler *handler.ConvertHandler
	exportHandler  *handler.ExportHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	metrics        *observability.Metrics
	logger         *zap.Logger
	allowedOrigins []string
}

type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	StationHandler *handler.StationHandler
	CallerHandler  *handler.CallerHandler
	FixHandler     *handler.FixHandler
	ConvertHandler *handler.ConvertHandler
	// ExportHandler is optional; the exports route is omitted without it.
	ExportHandler  *handler.ExportHandler
	AuthMiddleware *middleware.AuthMiddleware
	// RateLimiter is optional.
	RateLimiter    *middleware.RateLimiter
	Metrics        *observability.Metrics
	Logger         *zap.Logger
	Environment    string
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:         engine,
		authHandler:    cfg.AuthHandler,
		stationHandler: cfg.StationHandler,
		callerHandler:  cfg.CallerHandler,
		fixHandler:     cfg.FixHandler,
		convertHandler: cfg.ConvertHandler,
		exportHandler:  cfg.ExportHandler,
		authMiddleware: cfg.AuthMiddleware,
		rateLimiter:    cfg.RateLimiter,
		metrics:        cfg.Metrics,
		logger:         cfg.Logger,
		allowedOrigins: cfg.AllowedOrigins,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	if r.metrics != nil {
		r.engine.Use(r.metrics.Middleware())
	}
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if r.metrics != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))
	}

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		api.Use(r.rateLimiter.Limit())
	}

	requireAuth := r.authMiddleware.RequireAuth()

	{
		api.POST("/auth/login", r.authHandler.Login)

		stations := api.Group("/stations")
		{
			stations.GET("", r.stationHandler.List)
			stations.GET("/nearest", r.stationHandler.Nearest)
			stations.GET("/:name", r.stationHandler.Get)
			stations.POST("", requireAuth, r.stationHandler.Create)
			stations.PUT("/:name", requireAuth, r.stationHandler.Move)
			stations.DELETE("/:name", requireAuth, r.stationHandler.Delete)
		}

		callers := api.Group("/callers")
		{
			callers.GET("", r.callerHandler.List)
			callers.GET("/:id", r.callerHandler.Get)
			callers.GET("/:id/lines", r.callerHandler.Lines)
			callers.POST("", requireAuth, r.callerHandler.Create)
			callers.PUT("/:id", requireAuth, r.callerHandler.Update)
			callers.POST("/:id/reports", requireAuth, r.callerHandler.AddReport)
			callers.DELETE("/:id", requireAuth, r.callerHandler.Delete)
		}

		api.POST("/fix", r.fixHandler.Compute)

		convert := api.Group("/convert")
		{
			convert.POST("/to-decimal", r.convertHandler.ToDecimal)
			convert.GET("/to-dms", r.convertHandler.ToDMS)
		}

		if r.exportHandler != nil {
			api.POST("/exports", requireAuth, r.exportHandler.Create)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

package handlers

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"thumbnail-backend/internal/middleware"
)

type RouterConfig struct {
	Thumbnails     *ThumbnailsHandler
	JWTSecret      string
	AllowedOrigins []string
	Logger         *zap.Logger
	EnableSwagger  bool
}

func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	corsConfig := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	// cors.New panics on a config that fails Validate.
	if err := corsConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid CORS configuration: %w", err)
	}
	if err := RegisterValidators(); err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(cfg.Logger),
		cors.New(corsConfig),
	)

	if cfg.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Health check (no auth). Also served under the API base path, where
	// the generated docs point.
	router.GET("/health", HealthHandler)
	router.GET("/api/v1/health", HealthHandler)

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	api.POST("/thumbnail/generate", cfg.Thumbnails.Generate)
	api.DELETE("/thumbnail/delete/:id", cfg.Thumbnails.Delete)

	api.GET("/user/thumbnails", cfg.Thumbnails.List)
	api.GET("/user/thumbnail/:id", cfg.Thumbnails.Get)

	return router, nil
}

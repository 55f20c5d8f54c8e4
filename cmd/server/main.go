// @title           Thumbnail Backend API
// @version         1.0.0
// @description     Backend API for generating video thumbnails with Gemini. Thumbnails are composed from a title, a style and optional details, stored in Supabase Storage and tracked per user in PostgreSQL.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"thumbnail-backend/docs"
	"thumbnail-backend/internal/config"
	"thumbnail-backend/internal/database"
	"thumbnail-backend/internal/gemini"
	"thumbnail-backend/internal/handlers"
	"thumbnail-backend/internal/logging"
	"thumbnail-backend/internal/services"
	"thumbnail-backend/internal/supabase"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to initialize database client", zap.Error(err))
	}
	defer dbClient.Close()

	if err := database.NewMigrator(dbClient.DB(), logger).Run(); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	logger.Info("migrations completed successfully")

	// Initialize Gemini client
	geminiClient, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, gemini.Options{
		Model:       cfg.GeminiModel,
		Timeout:     cfg.GenerationTimeout,
		MaxAttempts: cfg.GenerationMaxAttempts,
	}, logger)
	if err != nil {
		logger.Fatal("failed to initialize gemini client", zap.Error(err))
	}

	// Initialize Supabase clients
	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		logger.Fatal("failed to initialize supabase client", zap.Error(err))
	}

	storageClient, err := supabase.NewStorageClient(supabaseClient, cfg.SupabaseStorageBucket, cfg.UploadTimeout)
	if err != nil {
		logger.Fatal("failed to initialize storage client", zap.Error(err))
	}

	thumbnailService := services.NewThumbnailService(dbClient, geminiClient, storageClient, cfg.ScratchDir, logger)

	router, err := handlers.NewRouter(handlers.RouterConfig{
		Thumbnails:     handlers.NewThumbnailsHandler(thumbnailService, logger),
		JWTSecret:      cfg.SupabaseJWTSecret,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         logger,
		EnableSwagger:  !cfg.IsProduction(),
	})
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
}

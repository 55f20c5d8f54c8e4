package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	// Gemini
	GeminiAPIKey          string        `validate:"required"`
	GeminiModel           string        `validate:"required"`
	GenerationTimeout     time.Duration `validate:"gt=0"`
	GenerationMaxAttempts int           `validate:"gte=1,lte=5"`

	// Supabase
	SupabaseURL           string        `validate:"required,url"`
	SupabaseServiceKey    string        `validate:"required"`
	SupabaseJWTSecret     string        `validate:"required"`
	SupabaseStorageBucket string        `validate:"required"`
	UploadTimeout         time.Duration `validate:"gt=0"`

	// Local directory for generated images awaiting upload
	ScratchDir string `validate:"required"`

	// Database
	DatabaseURL string `validate:"required"`

	// Server
	Port               string
	Environment        string `validate:"oneof=development production test"`
	BaseURL            string
	CORSAllowedOrigins []string `validate:"min=1"`
	LogLevel           string `validate:"oneof=debug info warn error"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	generationTimeout, err := getDuration("GENERATION_TIMEOUT", 2*time.Minute)
	if err != nil {
		return nil, err
	}
	uploadTimeout, err := getDuration("UPLOAD_TIMEOUT", time.Minute)
	if err != nil {
		return nil, err
	}
	maxAttempts, err := getInt("GENERATION_MAX_ATTEMPTS", 1)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		GeminiAPIKey:          getEnv("GEMINI_API_KEY", ""),
		GeminiModel:           getEnv("GEMINI_MODEL", "gemini-3-pro-image-preview"),
		GenerationTimeout:     generationTimeout,
		GenerationMaxAttempts: maxAttempts,

		SupabaseURL:           getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey:    getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabaseJWTSecret:     getEnv("SUPABASE_JWT_SECRET", ""),
		SupabaseStorageBucket: getEnv("SUPABASE_STORAGE_BUCKET", "thumbnails"),
		UploadTimeout:         uploadTimeout,

		ScratchDir: getEnv("SCRATCH_DIR", "images"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		Port:               getEnv("PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:8080"),
		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration such as 90s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

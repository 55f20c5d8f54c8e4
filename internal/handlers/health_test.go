package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"thumbnail-backend/internal/handlers"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", handlers.HealthHandler)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestRouter_HealthNeedsNoAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := handlers.NewRouter(handlers.RouterConfig{
		Thumbnails:     handlers.NewThumbnailsHandler(nil, nil),
		JWTSecret:      testSecret,
		AllowedOrigins: []string{testOrigin},
	})
	require.NoError(t, err)

	for _, path := range []string{"/health", "/api/v1/health"} {
		req, _ := http.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "ok", path)
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"), path)
	}
}

func TestNewRouter_RejectsMissingOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, origins := range [][]string{nil, {"localhost:5173"}} {
		router, err := handlers.NewRouter(handlers.RouterConfig{
			Thumbnails:     handlers.NewThumbnailsHandler(nil, nil),
			JWTSecret:      testSecret,
			AllowedOrigins: origins,
		})

		assert.Error(t, err, "%v", origins)
		assert.Nil(t, router)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := handlers.NewRouter(handlers.RouterConfig{
		Thumbnails:     handlers.NewThumbnailsHandler(nil, nil),
		JWTSecret:      testSecret,
		AllowedOrigins: []string{testOrigin},
	})
	require.NoError(t, err)

	req, _ := http.NewRequest("OPTIONS", "/api/v1/thumbnail/generate", nil)
	req.Header.Set("Origin", testOrigin)
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, testOrigin, w.Header().Get("Access-Control-Allow-Origin"))
}

package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/karaoke/internal/metrics"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHealthHandler(t *testing.T) {
	router := gin.New()
	router.GET("/health", HealthHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestCustomLoggerMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(CustomLoggerMiddleware(createTestLogger()))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("disabled returns nil", func(t *testing.T) {
		assert.Nil(t, CORSMiddleware(false, "https://app.example.com", createTestLogger()))
	})

	t.Run("enabled without origins returns nil", func(t *testing.T) {
		assert.Nil(t, CORSMiddleware(true, "", createTestLogger()))
	})

	t.Run("enabled with origins applies headers", func(t *testing.T) {
		middleware := CORSMiddleware(true, "https://app.example.com, https://admin.example.com", createTestLogger())
		require.NotNil(t, middleware)

		router := gin.New()
		router.Use(middleware)
		router.GET("/songs", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/songs", nil)
		req.Header.Set("Origin", "https://app.example.com")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, parseOrigins(""))
	assert.Equal(t, []string{"https://a.example.com"}, parseOrigins("https://a.example.com"))
	assert.Equal(t,
		[]string{"https://a.example.com", "https://b.example.com"},
		parseOrigins(" https://a.example.com , https://b.example.com ,"),
	)
}

func TestMetricsServerServesPrometheusFormat(t *testing.T) {
	provider, err := metrics.NewProvider("karaoke")
	require.NoError(t, err)

	server := NewMetricsServer("localhost", 0, createTestLogger(), provider)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

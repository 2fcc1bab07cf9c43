package httpserver

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func loggedRequest(t *testing.T, path string) observer.LoggedEntry {
	t.Helper()

	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	engine := gin.New()
	engine.Use(RequestLogger(zap.New(core)))
	engine.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/boom", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
	})
	engine.GET("/tagged", func(c *gin.Context) {
		_ = c.Error(errors.New("lookup failed"))
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad input"})
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	engine.ServeHTTP(rec, req)

	require.Equal(t, 1, logs.Len())
	return logs.All()[0]
}

func TestRequestLogger(t *testing.T) {
	t.Run("successful request logs at info", func(t *testing.T) {
		entry := loggedRequest(t, "/ok")

		assert.Equal(t, zap.InfoLevel, entry.Level)
		assert.Equal(t, "http request completed", entry.Message)

		fields := entry.ContextMap()
		assert.Equal(t, "GET", fields["method"])
		assert.Equal(t, "/ok", fields["path"])
		assert.Equal(t, int64(http.StatusOK), fields["status"])
		assert.Contains(t, fields, "duration")
	})

	t.Run("server error logs at error", func(t *testing.T) {
		entry := loggedRequest(t, "/boom")

		assert.Equal(t, zap.ErrorLevel, entry.Level)
		assert.Equal(t, "http request failed", entry.Message)
		assert.Equal(t, int64(http.StatusInternalServerError), entry.ContextMap()["status"])
	})

	t.Run("handler errors log at error with the error text", func(t *testing.T) {
		entry := loggedRequest(t, "/tagged")

		assert.Equal(t, zap.ErrorLevel, entry.Level)
		assert.Equal(t, "http request failed", entry.Message)

		fields := entry.ContextMap()
		assert.Equal(t, int64(http.StatusBadRequest), fields["status"])
		assert.Contains(t, fields["errors"], "lookup failed")
	})
}

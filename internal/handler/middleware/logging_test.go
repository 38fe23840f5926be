//go:build unit

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hosteed/internal/domain/user"
	"hosteed/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	var buf bytes.Buffer
	logger := newLogger(config.LogConfig{Level: "info", TimeZone: "UTC", TimeFormat: "2006-01-02T15:04:05Z07:00"}, &buf)
	userID := uuid.New()

	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, user.RoleHost)
		c.String(http.StatusTeapot, GetRequestID(c))
	})

	t.Run("reuses incoming request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(requestIDHeader, "req-123")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get(requestIDHeader))
		assert.Equal(t, "req-123", rec.Body.String())

		var entry map[string]any
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
		assert.Equal(t, "Request completed", entry["msg"])
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "req-123", entry["request_id"])
		assert.Equal(t, userID.String(), entry["user_id"])
		assert.Equal(t, "host", entry["role"])
		assert.EqualValues(t, http.StatusTeapot, entry["status_code"])
	})

	t.Run("generates a request id when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "WARN", parseLevel("WARN").String())
	assert.Equal(t, "INFO", parseLevel("verbose").String())
}

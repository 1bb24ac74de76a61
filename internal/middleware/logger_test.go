package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusLevel(t *testing.T) {
	tests := []struct {
		status int
		want   slog.Level
	}{
		{http.StatusOK, slog.LevelInfo},
		{http.StatusFound, slog.LevelInfo},
		{http.StatusBadRequest, slog.LevelWarn},
		{http.StatusTooManyRequests, slog.LevelWarn},
		{http.StatusInternalServerError, slog.LevelError},
		{http.StatusServiceUnavailable, slog.LevelError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusLevel(tt.status), "status %d", tt.status)
	}
}

func TestRequestLogger_WritesRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(RequestLogger(logger))
	e.GET("/api/order/:id", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/order/42", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	e.ServeHTTP(httptest.NewRecorder(), req)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "request", record["msg"])
	assert.Equal(t, "http", record["type"])
	assert.Equal(t, "GET", record["method"])
	assert.Equal(t, "/api/order/42", record["path"])
	assert.Equal(t, "/api/order/:id", record["route"])
	assert.Equal(t, float64(http.StatusNotFound), record["status"])
	assert.Equal(t, true, record["authorized"])
}

package middleware_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzametrics/internal/config"
	"pizzametrics/internal/middleware"
	"pizzametrics/internal/middleware/mocks"
)

func newLoginEcho(cfg *config.RateLimitConfig, recorder middleware.AuthFailureRecorder) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	e := echo.New()
	e.PUT("/api/auth", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, middleware.LoginRateLimit(cfg, recorder, logger))
	return e
}

func login(e *echo.Echo, ip, bypass string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/auth", nil)
	req.RemoteAddr = ip + ":12345"
	if bypass != "" {
		req.Header.Set("X-Rate-Limit-Bypass", bypass)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLoginRateLimit_AllowsRequestsUnderLimit(t *testing.T) {
	recorder := mocks.NewMockAuthFailureRecorder(t)
	e := newLoginEcho(&config.RateLimitConfig{RPS: 10, Burst: 5, ExpireMinutes: 1}, recorder)

	for i := range 5 {
		rec := login(e, "192.168.1.1", "")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should succeed", i)
	}
}

func TestLoginRateLimit_DeniedAttemptCountsAsFailure(t *testing.T) {
	recorder := mocks.NewMockAuthFailureRecorder(t)
	recorder.EXPECT().RecordAuthFailure().Return().Once()

	e := newLoginEcho(&config.RateLimitConfig{RPS: 0.1, Burst: 1, ExpireMinutes: 1}, recorder)

	rec1 := login(e, "192.168.1.3", "")
	require.Equal(t, http.StatusOK, rec1.Code)

	rec2 := login(e, "192.168.1.3", "")
	require.Equal(t, http.StatusTooManyRequests, rec2.Code)
	assert.Equal(t, "1", rec2.Header().Get("Retry-After"))

	var resp struct {
		Error      string `json:"error"`
		RetryAfter int    `json:"retry_after"`
	}
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &resp))
	assert.Equal(t, "too many login attempts", resp.Error)
	assert.Equal(t, 1, resp.RetryAfter)
}

func TestLoginRateLimit_DifferentIPsHaveSeparateLimits(t *testing.T) {
	recorder := mocks.NewMockAuthFailureRecorder(t)
	e := newLoginEcho(&config.RateLimitConfig{RPS: 0.1, Burst: 1, ExpireMinutes: 1}, recorder)

	assert.Equal(t, http.StatusOK, login(e, "192.168.1.4", "").Code, "IP1 first request should succeed")
	assert.Equal(t, http.StatusOK, login(e, "192.168.1.5", "").Code, "IP2 first request should succeed")
}

func TestLoginRateLimit_Bypass(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		provided   string
		wantDenied bool
	}{
		{"correct secret", "test_secret", "test_secret", false},
		{"wrong secret", "test_secret", "wrong_secret", true},
		{"disabled when secret empty", "", "any_value", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := mocks.NewMockAuthFailureRecorder(t)
			if tt.wantDenied {
				recorder.EXPECT().RecordAuthFailure().Return()
			}

			e := newLoginEcho(&config.RateLimitConfig{
				RPS:           0.1,
				Burst:         1,
				ExpireMinutes: 1,
				BypassSecret:  tt.secret,
			}, recorder)

			var denied bool
			for range 5 {
				if login(e, "192.168.1.6", tt.provided).Code == http.StatusTooManyRequests {
					denied = true
				}
			}
			assert.Equal(t, tt.wantDenied, denied)
		})
	}
}

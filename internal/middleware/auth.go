package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	userIDKey       = "pizzametrics.user_id"
	sessionTokenKey = "pizzametrics.session_token"
	bearerPrefix    = "Bearer "
)

var errUnauthorized = map[string]string{"error": "unauthorized"}

type SessionLookup interface {
	Lookup(token string) (int64, bool)
}

// Auth resolves the bearer token to a user and stores it on the context.
// It never rejects; routes that need a user add RequireUser.
func Auth(sessions SessionLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := bearerToken(c.Request()); token != "" {
				if id, ok := sessions.Lookup(token); ok {
					WithUser(c, token, id)
				}
			}
			return next(c)
		}
	}
}

func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := UserID(c); !ok {
				return c.JSON(http.StatusUnauthorized, errUnauthorized)
			}
			return next(c)
		}
	}
}

func WithUser(c echo.Context, token string, userID int64) {
	c.Set(userIDKey, userID)
	c.Set(sessionTokenKey, token)
}

func UserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(userIDKey).(int64)
	return id, ok
}

func SessionToken(c echo.Context) string {
	token, _ := c.Get(sessionTokenKey).(string)
	return token
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get(echo.HeaderAuthorization)
	if len(h) < len(bearerPrefix) || !strings.EqualFold(h[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(h[len(bearerPrefix):])
}

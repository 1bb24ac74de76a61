package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"pizzametrics/internal/config"
)

const corsMaxAge = 86400

// CORS lets the pizza frontend call the API from another origin. Without a
// configured allow list the request origin is echoed back.
func CORS(cfg *config.CORSConfig) echo.MiddlewareFunc {
	corsCfg := middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	}
	if len(cfg.AllowOrigins) == 0 {
		corsCfg.AllowOriginFunc = func(string) (bool, error) { return true, nil }
	}
	return middleware.CORSWithConfig(corsCfg)
}

package middleware

//go:generate go tool mockery

import (
	"cmp"
	"strconv"

	"github.com/labstack/echo/v4"
	"k8s.io/utils/clock"
)

type RequestRecorder interface {
	RecordRequest()
	RecordRequestMethod(method string)
	RecordRequestDuration(ms float64)
	RecordEndpointLatency(route, method string, ms float64)
	AddActiveUser(userID string)
}

// Metrics counts every request on arrival and records its latency once the
// handler returns, keyed by the route template so /api/order/42 and
// /api/order/43 share one series. It must run after Auth to see the user.
func Metrics(recorder RequestRecorder, clk clock.PassiveClock) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := clk.Now()
			method := c.Request().Method

			recorder.RecordRequest()
			recorder.RecordRequestMethod(method)
			if id, ok := UserID(c); ok {
				recorder.AddActiveUser(strconv.FormatInt(id, 10))
			}

			err := next(c)

			durationMs := float64(clk.Since(start).Microseconds()) / 1000.0
			route := cmp.Or(c.Path(), c.Request().URL.Path, "/")

			recorder.RecordRequestDuration(durationMs)
			recorder.RecordEndpointLatency(route, method, durationMs)

			return err
		}
	}
}

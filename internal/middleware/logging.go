package middleware

import (
	"time"

	"driverStamps/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogger logs each request at a level chosen by its status code.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// let the error handler pick the status before it is logged
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status

			args := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"route", c.Path(),
				"status", status,
				"duration", time.Since(start).String(),
				"ip", c.RealIP(),
				"size", c.Response().Size,
			}
			if id := SessionID(c); id != "" {
				args = append(args, "session_id", id)
			}
			if err != nil {
				args = append(args, "error", err)
			}

			switch {
			case status >= 500:
				logger.Error("HTTP request failed", args...)
			case status >= 400:
				logger.Warn("HTTP request rejected", args...)
			default:
				logger.Info("HTTP request processed", args...)
			}

			return nil
		}
	}
}

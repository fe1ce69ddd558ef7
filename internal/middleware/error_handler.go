package middleware

import (
	"errors"
	"net/http"

	"driverStamps/pkg/logger"
	jsonres "driverStamps/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders errors no handler dealt with.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled error", "path", c.Request().URL.Path, "error", err)
	}

	var body jsonres.Envelope
	switch code {
	case http.StatusNotFound:
		body = jsonres.Error("NOT_FOUND", message, nil)
	case http.StatusMethodNotAllowed:
		body = jsonres.Error("METHOD_NOT_ALLOWED", message, nil)
	case http.StatusBadRequest:
		body = jsonres.Error("BAD_REQUEST", message, nil)
	case http.StatusServiceUnavailable:
		body = jsonres.Error("SERVICE_UNAVAILABLE", message, nil)
	default:
		if code >= http.StatusInternalServerError {
			body = jsonres.Error("INTERNAL_ERROR", message, nil)
		} else {
			body = jsonres.Error(http.StatusText(code), message, nil)
		}
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}
	if err != nil {
		logger.Error("Failed to write error response", "error", err)
	}
}

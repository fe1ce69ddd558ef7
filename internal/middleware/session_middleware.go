package middleware

import (
	"net/http"
	"time"

	"driverStamps/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	SessionCookie = "driver_session"
	sessionKey    = "session_id"
	sessionMaxAge = 12 * time.Hour
)

// DriverSession makes sure every request carries a driver session id. A
// missing or malformed cookie gets a fresh id.
func DriverSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				if parsed, err := uuid.Parse(cookie.Value); err == nil {
					id = parsed.String()
				}
			}

			if id == "" {
				id = uuid.NewString()
				logger.Debug("new driver session", "session_id", id)
			}

			// refresh expiry on every request
			c.SetCookie(&http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   int(sessionMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set(sessionKey, id)

			return next(c)
		}
	}
}

// SessionID returns the id DriverSession stored on c.
func SessionID(c echo.Context) string {
	id, _ := c.Get(sessionKey).(string)
	return id
}

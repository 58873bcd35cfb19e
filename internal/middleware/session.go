package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	SessionHeader     = "X-Session-Id"
	SessionContextKey = "session_id"
)

// SessionMiddleware reads the cart session id from the request header,
// minting a fresh one when absent, and echoes it back in the response so
// the client can hold on to it.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := c.Request().Header.Get(SessionHeader)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}
			c.Set(SessionContextKey, sessionID)
			c.Response().Header().Set(SessionHeader, sessionID)
			return next(c)
		}
	}
}

// SessionID returns the session id set by SessionMiddleware.
func SessionID(c echo.Context) string {
	sessionID, _ := c.Get(SessionContextKey).(string)
	return sessionID
}

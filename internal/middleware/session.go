package middleware

import (
	"github.com/alexedwards/scs/v2"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware wraps the SCS load-and-save middleware for echo. Every
// request runs inside a session so the preference store always has a
// session context to read from.
func SessionMiddleware(sessions *scs.SessionManager) echo.MiddlewareFunc {
	return echo.WrapMiddleware(sessions.LoadAndSave)
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sekolahvote/voting-portal/internal/core/ports"
)

// CookieName is the session cookie holding the signed token.
const CookieName = "portal_session"

// Context keys populated for gated routes.
const (
	KeySession = "session"
	KeyToken   = "session_token"
	KeyRole    = "role"
)

// Session resolves the session cookie and injects the session record into
// the echo context. Anything that fails to resolve (no cookie, bad
// signature, expired record) redirects to the login page. That is flow
// control, not an error: the voter just isn't logged in.
func Session(sessions ports.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			session, err := sessions.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			c.Set(KeySession, session)
			c.Set(KeyToken, cookie.Value)
			c.Set(KeyRole, session.Role)

			return next(c)
		}
	}
}

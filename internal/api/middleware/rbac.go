package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sekolahvote/voting-portal/internal/core/domain"
)

// RequireRole enforces role-based access on top of Session. An
// under-privileged caller is redirected to the login page, the same
// non-distinguishing pattern as an anonymous one. There is no explicit
// forbidden response.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(KeyRole).(domain.Role)
			if _, ok := allowed[role]; !ok {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			return next(c)
		}
	}
}

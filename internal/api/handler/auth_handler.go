package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sekolahvote/voting-portal/internal/api/metrics"
	"github.com/sekolahvote/voting-portal/internal/api/middleware"
	"github.com/sekolahvote/voting-portal/internal/core/domain"
	"github.com/sekolahvote/voting-portal/internal/core/ports"
)

// AuthHandler serves the login and logout routes.
type AuthHandler struct {
	authService  ports.AuthService
	cookieTTL    time.Duration
	secureCookie bool
}

func NewAuthHandler(authService ports.AuthService, cookieTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookieTTL: cookieTTL, secureCookie: secureCookie}
}

type loginRequest struct {
	Username string `form:"username" validate:"required,max=50"`
	Password string `form:"password" validate:"required"`
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"page": "login"})
}

// Login authenticates the posted credentials, sets the session cookie and
// routes admins to the dashboard, everyone else to the voting page.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.SessionsActive.Inc()

	c.SetCookie(h.sessionCookie(token, h.cookieTTL))

	target := "/"
	if user.Role == domain.RoleAdmin {
		target = "/admin"
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// Logout clears the session and the cookie, then sends the client back to
// the login page. It is not session-gated: logging out while already logged
// out still succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.CookieName); err == nil && cookie.Value != "" {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err == nil {
			metrics.SessionsActive.Dec()
		}
	}

	c.SetCookie(h.sessionCookie("", -time.Hour))
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

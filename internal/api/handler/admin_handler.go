package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sekolahvote/voting-portal/internal/api/metrics"
	"github.com/sekolahvote/voting-portal/internal/api/middleware"
	"github.com/sekolahvote/voting-portal/internal/core/domain"
	"github.com/sekolahvote/voting-portal/internal/core/ports"
)

// AdminHandler serves the admin-gated dashboard and user creation routes.
type AdminHandler struct {
	adminService ports.AdminService
	sessions     ports.SessionManager
}

func NewAdminHandler(adminService ports.AdminService, sessions ports.SessionManager) *AdminHandler {
	return &AdminHandler{adminService: adminService, sessions: sessions}
}

type createUserRequest struct {
	Username string `form:"username" validate:"required,max=50"`
	Password string `form:"password" validate:"required"`
	Role     string `form:"role"     validate:"required,oneof=student admin"`
}

type dashboardResponse struct {
	Users   []domain.User `json:"users"`
	Votes   []domain.Vote `json:"votes"`
	Flashes []string      `json:"flashes,omitempty"`
}

// Dashboard handles GET /admin: every account and every cast vote.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	out, err := h.adminService.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}

	token, _ := c.Get(middleware.KeyToken).(string)
	flashes, _ := h.sessions.PopFlashes(c.Request().Context(), token)

	return c.JSON(http.StatusOK, dashboardResponse{
		Users:   out.Users,
		Votes:   out.Votes,
		Flashes: flashes,
	})
}

// CreateUser handles POST /admin. A taken username is a user-visible flash
// message, not a failure of the request flow.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}

	token, _ := c.Get(middleware.KeyToken).(string)
	ctx := c.Request().Context()

	_, err = h.adminService.CreateUser(ctx, req.Username, req.Password, role)
	switch {
	case errors.Is(err, domain.ErrUserExists):
		_ = h.sessions.Flash(ctx, token, "Username is already taken")
	case err != nil:
		return err
	default:
		metrics.UsersCreatedTotal.WithLabelValues(string(role)).Inc()
		_ = h.sessions.Flash(ctx, token, "User added successfully!")
	}

	return c.Redirect(http.StatusSeeOther, "/admin")
}

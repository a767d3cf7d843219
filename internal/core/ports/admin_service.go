package ports

import (
	"context"

	"github.com/sekolahvote/voting-portal/internal/core/domain"
)

// DashboardOutput is the admin overview: every account and every cast vote.
type DashboardOutput struct {
	Users []domain.User `json:"users"`
	Votes []domain.Vote `json:"votes"`
}

// AdminService covers the role-gated account management operations.
// The admin-role check happens at the HTTP layer.
type AdminService interface {
	CreateUser(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
	Dashboard(ctx context.Context) (*DashboardOutput, error)
}

package ports

import (
	"context"

	"github.com/sekolahvote/voting-portal/internal/core/domain"
)

// UserRepository defines the interface for credential persistence.
// Accounts are append-only: no update or delete is exposed.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create persists a new user. Username uniqueness is enforced by the
	// store: the first concurrent writer wins, later ones get ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
}

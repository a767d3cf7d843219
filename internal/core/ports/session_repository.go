package ports

import (
	"context"
	"time"

	"github.com/sekolahvote/voting-portal/internal/core/domain"
)

// SessionRepository defines the interface for server-side session records.
// Implementations return domain.ErrNoSession for unknown or expired IDs.
type SessionRepository interface {
	Save(ctx context.Context, session *domain.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

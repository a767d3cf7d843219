package ports

import (
	"context"

	"github.com/sekolahvote/voting-portal/internal/core/domain"
)

// SessionManager issues, resolves and clears the signed tokens that bind a
// client to an authenticated identity and role.
type SessionManager interface {
	Issue(ctx context.Context, username string, role domain.Role) (string, error)
	Resolve(ctx context.Context, token string) (*domain.Session, error)
	Clear(ctx context.Context, token string) error
	// Flash queues a one-shot message on the session behind token.
	Flash(ctx context.Context, token, message string) error
	// PopFlashes returns the queued messages and clears them.
	PopFlashes(ctx context.Context, token string) ([]string, error)
}

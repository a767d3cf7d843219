package ports

import (
	"context"

	"github.com/sekolahvote/voting-portal/internal/core/domain"
)

// AuthService verifies credentials and owns the session lifecycle.
type AuthService interface {
	// Login returns a session cookie token on success. Unknown usernames and
	// wrong passwords both fail with domain.ErrInvalidCredentials; the caller
	// must not be able to tell the two apart.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout clears the session behind the token. Always succeeds for the
	// caller, even when the token no longer resolves.
	Logout(ctx context.Context, token string) error
}

package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sekolahvote/voting-portal/internal/core/domain"
	"github.com/sekolahvote/voting-portal/internal/core/ports"
)

// AuthService implements login and logout against the credential store.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionManager
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionManager) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Login verifies the credentials and establishes a session. An unknown
// username and a wrong password both return domain.ErrInvalidCredentials so
// the response shape never reveals which one it was.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(ctx, user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout clears the session unconditionally.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Clear(ctx, token)
}

package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sekolahvote/voting-portal/internal/core/domain"
	"github.com/sekolahvote/voting-portal/internal/core/ports"
)

// AdminService implements account creation and the dashboard listing.
type AdminService struct {
	users ports.UserRepository
	votes ports.VoteRepository
}

func NewAdminService(users ports.UserRepository, votes ports.VoteRepository) *AdminService {
	return &AdminService{users: users, votes: votes}
}

// CreateUser hashes the password and persists a new account. A taken
// username surfaces as domain.ErrUserExists and leaves the existing record
// untouched.
func (s *AdminService) CreateUser(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role != domain.RoleStudent && role != domain.RoleAdmin {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
}

// Dashboard returns every account and every cast vote.
func (s *AdminService) Dashboard(ctx context.Context) (*ports.DashboardOutput, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	votes, err := s.votes.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.DashboardOutput{Users: users, Votes: votes}, nil
}

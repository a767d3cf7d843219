package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sekolahvote/voting-portal/internal/core/domain"
	"github.com/sekolahvote/voting-portal/internal/core/ports"
)

const defaultSessionTTL = 12 * time.Hour

// SessionManager keeps session records server-side and hands the client a
// signed token carrying only the session ID. The token is what goes into the
// cookie; the identity and role never leave the server.
type SessionManager struct {
	repo       ports.SessionRepository
	signingKey []byte
	ttl        time.Duration
}

func NewSessionManager(repo ports.SessionRepository, signingKey string, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionManager{repo: repo, signingKey: []byte(signingKey), ttl: ttl}
}

// Issue creates a session record for the identity and returns the signed
// token to be set as the session cookie.
func (m *SessionManager) Issue(ctx context.Context, username string, role domain.Role) (string, error) {
	session := &domain.Session{
		ID:        uuid.NewString(),
		Username:  username,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if err := m.repo.Save(ctx, session, m.ttl); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sid": session.ID,
		"exp": session.CreatedAt.Add(m.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signingKey)
}

// Resolve verifies the token signature and loads the session record behind
// it. Every failure mode collapses into domain.ErrNoSession.
func (m *SessionManager) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	id, err := m.sessionID(token)
	if err != nil {
		return nil, err
	}
	return m.repo.Get(ctx, id)
}

// Clear removes the session record. A token that no longer resolves is not
// an error: logout always succeeds for the caller.
func (m *SessionManager) Clear(ctx context.Context, token string) error {
	id, err := m.sessionID(token)
	if err != nil {
		return nil
	}
	return m.repo.Delete(ctx, id)
}

// Flash appends a one-shot message to the session behind token.
func (m *SessionManager) Flash(ctx context.Context, token, message string) error {
	session, err := m.Resolve(ctx, token)
	if err != nil {
		return err
	}
	session.Flashes = append(session.Flashes, message)
	return m.repo.Save(ctx, session, m.ttl)
}

// PopFlashes returns the queued messages and clears them from the session.
func (m *SessionManager) PopFlashes(ctx context.Context, token string) ([]string, error) {
	session, err := m.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	flashes := session.Flashes
	if len(flashes) == 0 {
		return nil, nil
	}
	session.Flashes = nil
	if err := m.repo.Save(ctx, session, m.ttl); err != nil {
		return nil, err
	}
	return flashes, nil
}

func (m *SessionManager) sessionID(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.signingKey, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrNoSession
	}

	id, _ := claims["sid"].(string)
	if id == "" {
		return "", domain.ErrNoSession
	}
	return id, nil
}

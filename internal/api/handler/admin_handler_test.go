package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sekolahvote/voting-portal/internal/api/middleware"
	"github.com/sekolahvote/voting-portal/internal/core/domain"
	"github.com/sekolahvote/voting-portal/internal/core/ports"
)

type stubAdminService struct {
	createFn    func(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
	dashboardFn func(ctx context.Context) (*ports.DashboardOutput, error)
}

func (s *stubAdminService) CreateUser(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	return s.createFn(ctx, username, password, role)
}

func (s *stubAdminService) Dashboard(ctx context.Context) (*ports.DashboardOutput, error) {
	return s.dashboardFn(ctx)
}

func TestAdminHandler_Dashboard(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{
		dashboardFn: func(_ context.Context) (*ports.DashboardOutput, error) {
			return &ports.DashboardOutput{
				Users: []domain.User{{ID: 1, Username: "alice", Role: domain.RoleStudent}},
				Votes: []domain.Vote{{ID: 1, Candidate: "Bu Andi", Category: domain.CategoryFemale}},
			}, nil
		},
	}, newStubSessions())

	c, rec := newFormContext(t, http.MethodGet, "/admin", nil)
	c.Set(middleware.KeyToken, "tok-1")

	if err := h.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Users) != 1 || len(resp.Votes) != 1 {
		t.Fatalf("unexpected dashboard: %+v", resp)
	}
}

func TestAdminHandler_CreateUser_Success(t *testing.T) {
	sessions := newStubSessions()
	h := NewAdminHandler(&stubAdminService{
		createFn: func(_ context.Context, username, password string, role domain.Role) (*domain.User, error) {
			if username != "bob" || password != "pw" || role != domain.RoleStudent {
				t.Fatalf("unexpected args: %s %s %s", username, password, role)
			}
			return &domain.User{ID: 2, Username: username, Role: role}, nil
		},
	}, sessions)

	c, rec := newFormContext(t, http.MethodPost, "/admin",
		url.Values{"username": {"bob"}, "password": {"pw"}, "role": {"student"}})
	c.Set(middleware.KeyToken, "tok-1")

	if err := h.CreateUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/admin" {
		t.Fatalf("expected redirect to /admin, got %q", loc)
	}
	if flashes := sessions.flashes["tok-1"]; len(flashes) != 1 || flashes[0] != "User added successfully!" {
		t.Fatalf("unexpected flashes: %v", flashes)
	}
}

func TestAdminHandler_CreateUser_DuplicateIsFlashNotError(t *testing.T) {
	sessions := newStubSessions()
	h := NewAdminHandler(&stubAdminService{
		createFn: func(_ context.Context, _, _ string, _ domain.Role) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}, sessions)

	c, rec := newFormContext(t, http.MethodPost, "/admin",
		url.Values{"username": {"bob"}, "password": {"pw"}, "role": {"student"}})
	c.Set(middleware.KeyToken, "tok-1")

	if err := h.CreateUser(c); err != nil {
		t.Fatalf("duplicate must not surface as handler error, got %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if flashes := sessions.flashes["tok-1"]; len(flashes) != 1 || flashes[0] != "Username is already taken" {
		t.Fatalf("unexpected flashes: %v", flashes)
	}
}

func TestAdminHandler_CreateUser_BadRole(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{
		createFn: func(_ context.Context, _, _ string, _ domain.Role) (*domain.User, error) {
			t.Fatalf("service must not be called for a bad role")
			return nil, nil
		},
	}, newStubSessions())

	c, _ := newFormContext(t, http.MethodPost, "/admin",
		url.Values{"username": {"bob"}, "password": {"pw"}, "role": {"teacher"}})
	c.Set(middleware.KeyToken, "tok-1")

	err := h.CreateUser(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError from validation, got %v", err)
	}
}

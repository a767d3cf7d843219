package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sekolahvote/voting-portal/internal/api/middleware"
	"github.com/sekolahvote/voting-portal/internal/core/domain"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, username, password string) (string, *domain.User, error)
	logoutFn func(ctx context.Context, token string) error
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	if s.logoutFn == nil {
		return nil
	}
	return s.logoutFn(ctx, token)
}

func newFormContext(t *testing.T, method, path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookieFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	res := rec.Result()
	for _, cookie := range res.Cookies() {
		if cookie.Name == middleware.CookieName {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Login_StudentGoesToVoting(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, password string) (string, *domain.User, error) {
			if username != "alice" || password != "s3cret" {
				t.Fatalf("unexpected credentials: %s/%s", username, password)
			}
			return "tok-1", &domain.User{Username: username, Role: domain.RoleStudent}, nil
		},
	}
	h := NewAuthHandler(stub, time.Hour, false)

	c, rec := newFormContext(t, http.MethodPost, "/login",
		url.Values{"username": {"alice"}, "password": {"s3cret"}})

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}

	cookie := sessionCookieFrom(rec)
	if cookie == nil || cookie.Value != "tok-1" {
		t.Fatalf("session cookie not set: %+v", cookie)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
}

func TestAuthHandler_Login_AdminGoesToDashboard(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, _ string) (string, *domain.User, error) {
			return "tok-2", &domain.User{Username: username, Role: domain.RoleAdmin}, nil
		},
	}
	h := NewAuthHandler(stub, time.Hour, false)

	c, rec := newFormContext(t, http.MethodPost, "/login",
		url.Values{"username": {"root"}, "password": {"pw"}})

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/admin" {
		t.Fatalf("expected redirect to /admin, got %q", loc)
	}
}

func TestAuthHandler_Login_FailurePropagates(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, time.Hour, false)

	c, rec := newFormContext(t, http.MethodPost, "/login",
		url.Values{"username": {"ghost"}, "password": {"wrong"}})

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if cookie := sessionCookieFrom(rec); cookie != nil {
		t.Fatalf("no cookie expected on failure, got %+v", cookie)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			t.Fatalf("service must not be called on invalid form")
			return "", nil, nil
		},
	}, time.Hour, false)

	c, _ := newFormContext(t, http.MethodPost, "/login", url.Values{"username": {"alice"}})

	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	cleared := ""
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.User, error) { return "", nil, nil },
		logoutFn: func(_ context.Context, token string) error {
			cleared = token
			return nil
		},
	}, time.Hour, false)

	c, rec := newFormContext(t, http.MethodGet, "/logout", nil)
	c.Request().AddCookie(&http.Cookie{Name: middleware.CookieName, Value: "tok-3"})

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if cleared != "tok-3" {
		t.Fatalf("expected logout of tok-3, cleared %q", cleared)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}

	cookie := sessionCookieFrom(rec)
	if cookie == nil || cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("expected expired empty cookie, got %+v", cookie)
	}
}

func TestAuthHandler_Logout_WithoutSession(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.User, error) { return "", nil, nil },
	}, time.Hour, false)

	c, rec := newFormContext(t, http.MethodGet, "/logout", nil)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

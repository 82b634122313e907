package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/roadworthy/pti-system/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, _ *domain.User) error { return nil }

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateCars(_ context.Context, _ string, _ []string) error { return nil }

func signedToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, repo *stubUserRepo, authHeader string) (error, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth("secret", repo)
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	return err, called
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"u-1": {ID: "u-1", Email: "alice@example.com", Role: domain.RoleClient},
	}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "secret", "u-1", time.Now().Add(time.Hour)))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth("secret", repo)
	handler := mw(func(c echo.Context) error {
		called = true
		user, _ := c.Get("user").(*domain.User)
		if user == nil || user.ID != "u-1" {
			t.Fatalf("resolved user not injected: %+v", user)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_MissingOrMalformedHeader(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{}}

	for _, header := range []string{"", "Token abc", "Bearer not-a-token"} {
		err, called := runAuth(t, repo, header)
		if called {
			t.Fatalf("next called for header %q", header)
		}
		if !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for header %q, got %v", header, err)
		}
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"u-1": {ID: "u-1", Role: domain.RoleClient},
	}}

	// Token whose 30-day lifetime ran out a day ago.
	expired := signedToken(t, "secret", "u-1", time.Now().Add(-24*time.Hour))
	err, called := runAuth(t, repo, "Bearer "+expired)
	if called {
		t.Fatal("next called for expired token")
	}
	// The failure is expiry-specific, not the generic invalid-token error.
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
	if errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatal("expired token must not be reported as structurally invalid")
	}
}

func TestAuthMiddleware_WrongSignature(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{}}

	forged := signedToken(t, "other-secret", "u-1", time.Now().Add(time.Hour))
	err, called := runAuth(t, repo, "Bearer "+forged)
	if called {
		t.Fatal("next called for forged token")
	}
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthMiddleware_UnknownSubject(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{}}

	token := signedToken(t, "secret", "u-gone", time.Now().Add(time.Hour))
	err, called := runAuth(t, repo, "Bearer "+token)
	if called {
		t.Fatal("next called for unknown subject")
	}
	if !errors.Is(err, domain.ErrUnknownSubject) {
		t.Fatalf("expected ErrUnknownSubject, got %v", err)
	}
}

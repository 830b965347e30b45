package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/njrexim/cms-api/internal/core/domain"
)

type stubTokens struct {
	subject string
	err     error
}

func (s stubTokens) Issue(string) (string, error) { return "", nil }
func (s stubTokens) Verify(string) (string, error) {
	return s.subject, s.err
}

type stubUsers map[string]*domain.User

func (s stubUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := s[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func runAuth(t *testing.T, header string, tokens stubTokens, users stubUsers) (*httptest.ResponseRecorder, *domain.User, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got *domain.User
	called := false
	h := Auth(tokens, users)(func(c echo.Context) error {
		called = true
		got = CurrentUser(c)
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, got, called
}

func TestAuth_ValidToken(t *testing.T) {
	alice := &domain.User{ID: "u1", Name: "Alice", Role: domain.RoleAdmin}
	rec, got, called := runAuth(t, "Bearer good", stubTokens{subject: "u1"}, stubUsers{"u1": alice})

	if !called {
		t.Fatal("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got != alice {
		t.Fatalf("user not stored in context")
	}
}

func TestAuth_Rejections(t *testing.T) {
	users := stubUsers{"u1": {ID: "u1", Role: domain.RoleAdmin}}
	tests := []struct {
		name   string
		header string
		tokens stubTokens
		want   string
	}{
		{"missing header", "", stubTokens{subject: "u1"}, "not authorized, no token"},
		{"wrong scheme", "Token abc", stubTokens{subject: "u1"}, "not authorized, no token"},
		{"empty bearer", "Bearer ", stubTokens{subject: "u1"}, "not authorized, no token"},
		{"bad token", "Bearer nope", stubTokens{err: domain.ErrInvalidToken}, "not authorized, token failed"},
		{"deleted user", "Bearer ghost", stubTokens{subject: "gone"}, "not authorized, user not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _, called := runAuth(t, tt.header, tt.tokens, users)
			if called {
				t.Fatal("should not reach next")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			if body := rec.Body.String(); !strings.Contains(body, tt.want) {
				t.Fatalf("expected %q in body, got %s", tt.want, body)
			}
		})
	}
}

type failingUsers struct{}

func (failingUsers) FindByID(context.Context, string) (*domain.User, error) {
	return nil, errors.New("connection reset")
}

func TestAuth_StoreErrorIsNotUnauthorized(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	c := e.NewContext(req, httptest.NewRecorder())

	err := Auth(stubTokens{subject: "u1"}, failingUsers{})(func(echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})(c)

	var he *echo.HTTPError
	if err == nil || errors.As(err, &he) {
		t.Fatalf("expected raw store error, got %v", err)
	}
}

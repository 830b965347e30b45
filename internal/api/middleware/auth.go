package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/njrexim/cms-api/internal/api/metrics"
	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

// UserKey is the echo context key holding the authenticated *domain.User.
const UserKey = "user"

// UserLookup resolves a verified token subject. The returned user must not
// carry the password hash.
type UserLookup interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Auth resolves the bearer token to a user and stores it under UserKey.
// A token whose user no longer exists is rejected.
func Auth(tokens ports.TokenService, users UserLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("no_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("token_failed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, token failed")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					metrics.AuthRejectionsTotal.WithLabelValues("user_missing").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, user not found")
				}
				return err
			}

			c.Set(UserKey, user)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// CurrentUser returns the user stored by Auth, or nil for anonymous callers.
func CurrentUser(c echo.Context) *domain.User {
	u, _ := c.Get(UserKey).(*domain.User)
	return u
}

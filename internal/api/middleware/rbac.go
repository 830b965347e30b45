package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njrexim/cms-api/internal/api/metrics"
	"github.com/njrexim/cms-api/internal/core/domain"
)

// Require enforces a minimum capability on the caller resolved by Auth.
// Callers without an identity are treated as anonymous.
func Require(capability domain.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := domain.RoleAnonymous
			if u := CurrentUser(c); u != nil {
				role = u.Role
			}
			if !role.Allows(capability) {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "not authorized as "+article(capability)+" "+capability.String())
			}
			return next(c)
		}
	}
}

func article(c domain.Capability) string {
	if c == domain.CapabilityAdmin {
		return "an"
	}
	return "a"
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/njrexim/cms-api/internal/core/domain"
)

func TestRequire(t *testing.T) {
	tests := []struct {
		name       string
		user       *domain.User
		capability domain.Capability
		wantCode   int
	}{
		{"admin on admin route", &domain.User{Role: domain.RoleAdmin}, domain.CapabilityAdmin, http.StatusOK},
		{"super admin on admin route", &domain.User{Role: domain.RoleSuperAdmin}, domain.CapabilityAdmin, http.StatusOK},
		{"super admin on super admin route", &domain.User{Role: domain.RoleSuperAdmin}, domain.CapabilitySuperAdmin, http.StatusOK},
		{"admin on super admin route", &domain.User{Role: domain.RoleAdmin}, domain.CapabilitySuperAdmin, http.StatusForbidden},
		{"anonymous on admin route", nil, domain.CapabilityAdmin, http.StatusForbidden},
		{"unknown role", &domain.User{Role: "editor"}, domain.CapabilityAdmin, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.user != nil {
				c.Set(UserKey, tt.user)
			}

			h := Require(tt.capability)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})
			if err := h(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
		})
	}
}

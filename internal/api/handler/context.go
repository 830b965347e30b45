package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njrexim/cms-api/internal/api/middleware"
	"github.com/njrexim/cms-api/internal/core/domain"
)

// ctxUser returns the caller resolved by the Auth middleware. Routes that use
// it are always behind Auth; a missing user means the middleware did not run.
func ctxUser(c echo.Context) (*domain.User, error) {
	u := middleware.CurrentUser(c)
	if u == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return u, nil
}

type messageResponse struct {
	Message string `json:"message"`
}

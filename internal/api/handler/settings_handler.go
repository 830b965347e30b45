package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njrexim/cms-api/internal/core/ports"
)

type SettingsHandler struct {
	settings ports.SettingsService
}

func NewSettingsHandler(settings ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get returns the site settings, creating defaults on first access.
//
// @Summary      Get site settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  domain.Settings
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	s, err := h.settings.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// Update patches the site settings.
//
// @Summary      Update site settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      settingsRequest  true  "Fields to change"
// @Success      200   {object}  domain.Settings
// @Success      201   {object}  domain.Settings
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req settingsRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	s, created, err := h.settings.Update(c.Request().Context(), ports.SettingsPatch(req.patch()))
	if err != nil {
		return err
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, s)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njrexim/cms-api/internal/core/ports"
)

type PageHandler struct {
	pages ports.PageService
}

func NewPageHandler(pages ports.PageService) *PageHandler {
	return &PageHandler{pages: pages}
}

// List returns active pages.
//
// @Summary      List pages
// @Tags         pages
// @Produce      json
// @Success      200  {array}  domain.Page
// @Router       /api/pages [get]
func (h *PageHandler) List(c echo.Context) error {
	pages, err := h.pages.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pages)
}

// Get returns a page by slug.
//
// @Summary      Get a page
// @Tags         pages
// @Produce      json
// @Param        slug  path      string  true  "Page slug"
// @Success      200   {object}  domain.Page
// @Failure      404   {object}  map[string]string
// @Router       /api/pages/{slug} [get]
func (h *PageHandler) Get(c echo.Context) error {
	page, err := h.pages.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Create adds a page. Slugs are unique.
//
// @Summary      Create a page
// @Tags         pages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      pageRequest  true  "Page"
// @Success      201   {object}  domain.Page
// @Failure      400   {object}  map[string]string
// @Router       /api/pages [post]
func (h *PageHandler) Create(c echo.Context) error {
	var req pageRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	title := ""
	if req.Title != nil {
		title = *req.Title
	}
	if err := requireFields("title", title, "slug", req.Slug); err != nil {
		return err
	}

	page, err := h.pages.Create(c.Request().Context(), ports.PageInput{
		Title:    req.Title,
		Slug:     req.Slug,
		Content:  req.Content,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, page)
}

// Update edits a page in place.
//
// @Summary      Update a page
// @Tags         pages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slug  path      string       true  "Page slug"
// @Param        body  body      pageRequest  true  "Fields to change"
// @Success      200   {object}  domain.Page
// @Failure      404   {object}  map[string]string
// @Router       /api/pages/{slug} [put]
func (h *PageHandler) Update(c echo.Context) error {
	var req pageRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	page, err := h.pages.Update(c.Request().Context(), c.Param("slug"), ports.PageInput{
		Title:    req.Title,
		Content:  req.Content,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

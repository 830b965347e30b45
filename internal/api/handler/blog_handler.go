package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njrexim/cms-api/internal/core/ports"
)

type BlogHandler struct {
	blogs ports.BlogService
}

func NewBlogHandler(blogs ports.BlogService) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

// List returns all blog posts, newest first.
//
// @Summary      List blogs
// @Tags         blogs
// @Produce      json
// @Success      200  {array}  domain.Blog
// @Router       /api/blogs [get]
func (h *BlogHandler) List(c echo.Context) error {
	blogs, err := h.blogs.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

// Get returns one blog post.
//
// @Summary      Get a blog
// @Tags         blogs
// @Produce      json
// @Param        id   path      string  true  "Blog ID"
// @Success      200  {object}  domain.Blog
// @Failure      404  {object}  map[string]string
// @Router       /api/blogs/{id} [get]
func (h *BlogHandler) Get(c echo.Context) error {
	blog, err := h.blogs.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blog)
}

// Create publishes or drafts a blog post, with an optional cover image.
//
// @Summary      Create a blog
// @Tags         blogs
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title        formData  string  true   "Title"
// @Param        content      formData  string  true   "Body"
// @Param        tags         formData  string  false  "Comma separated tags"
// @Param        isPublished  formData  bool    false  "Publish immediately"
// @Param        image        formData  file    false  "Cover image"
// @Success      201          {object}  domain.Blog
// @Failure      400          {object}  map[string]string
// @Failure      409          {object}  map[string]string
// @Router       /api/blogs [post]
func (h *BlogHandler) Create(c echo.Context) error {
	me, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req blogRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if err := requireFields("title", req.Title, "content", req.Content); err != nil {
		return err
	}
	image, err := formFile(c, "image")
	if err != nil {
		return err
	}

	blog, err := h.blogs.Create(c.Request().Context(), ports.BlogInput{
		Title:       optString(req.Title),
		Content:     optString(req.Content),
		Tags:        req.Tags,
		IsPublished: req.IsPublished.ptr(),
		Image:       image,
		Author:      me,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, blog)
}

// Update edits a blog post. A new title regenerates the slug.
//
// @Summary      Update a blog
// @Tags         blogs
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string  true   "Blog ID"
// @Param        title        formData  string  false  "Title"
// @Param        content      formData  string  false  "Body"
// @Param        tags         formData  string  false  "Comma separated tags"
// @Param        isPublished  formData  bool    false  "Published"
// @Param        image        formData  file    false  "Replacement cover image"
// @Success      200          {object}  domain.Blog
// @Failure      400          {object}  map[string]string
// @Failure      404          {object}  map[string]string
// @Router       /api/blogs/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	var req blogRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	image, err := formFile(c, "image")
	if err != nil {
		return err
	}

	blog, err := h.blogs.Update(c.Request().Context(), c.Param("id"), ports.BlogInput{
		Title:       optString(req.Title),
		Content:     optString(req.Content),
		Tags:        req.Tags,
		IsPublished: req.IsPublished.ptr(),
		Image:       image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blog)
}

// Delete removes a blog post.
//
// @Summary      Delete a blog
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Blog ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/blogs/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	if err := h.blogs.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Blog removed"})
}

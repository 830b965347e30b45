package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

type TestimonialHandler struct {
	testimonials ports.TestimonialService
}

func NewTestimonialHandler(testimonials ports.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonials: testimonials}
}

// ListApproved returns approved testimonials without submitter emails.
//
// @Summary      List approved testimonials
// @Tags         testimonials
// @Produce      json
// @Success      200  {array}  domain.Testimonial
// @Router       /api/testimonials [get]
func (h *TestimonialHandler) ListApproved(c echo.Context) error {
	items, err := h.testimonials.ListApproved(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// ListAll returns every testimonial for moderation.
//
// @Summary      List all testimonials
// @Tags         testimonials
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Testimonial
// @Failure      403  {object}  map[string]string
// @Router       /api/testimonials/all [get]
func (h *TestimonialHandler) ListAll(c echo.Context) error {
	items, err := h.testimonials.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Submit stores a public testimonial pending approval.
//
// @Summary      Submit a testimonial
// @Tags         testimonials
// @Accept       json,multipart/form-data
// @Produce      json
// @Param        body  body      testimonialRequest  true  "Testimonial"
// @Success      201   {object}  domain.Testimonial
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/testimonials [post]
func (h *TestimonialHandler) Submit(c echo.Context) error {
	var req testimonialRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if err := requireFields("name", req.Name, "email", req.Email, "content", req.Content); err != nil {
		return err
	}
	if err := validRating(req.Rating, true); err != nil {
		return err
	}
	avatar, err := formFile(c, "avatar")
	if err != nil {
		return err
	}

	t, err := h.testimonials.Submit(c.Request().Context(), ports.TestimonialInput{
		Name:        optString(req.Name),
		Email:       optString(req.Email),
		Rating:      req.Rating.ptr(),
		Content:     optString(req.Content),
		Designation: optString(req.Designation),
		Avatar:      avatar,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, t.Public())
}

// Update edits or approves a testimonial.
//
// @Summary      Update a testimonial
// @Tags         testimonials
// @Accept       json,multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Testimonial ID"
// @Param        body  body      testimonialRequest  true  "Fields to change"
// @Success      200   {object}  domain.Testimonial
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/testimonials/{id} [put]
func (h *TestimonialHandler) Update(c echo.Context) error {
	var req testimonialRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if err := validRating(req.Rating, false); err != nil {
		return err
	}
	avatar, err := formFile(c, "avatar")
	if err != nil {
		return err
	}

	t, err := h.testimonials.Update(c.Request().Context(), c.Param("id"), ports.TestimonialInput{
		Name:        optString(req.Name),
		Email:       optString(req.Email),
		Rating:      req.Rating.ptr(),
		Content:     optString(req.Content),
		Designation: optString(req.Designation),
		IsApproved:  req.IsApproved.ptr(),
		Avatar:      avatar,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

// Delete removes a testimonial.
//
// @Summary      Delete a testimonial
// @Tags         testimonials
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Testimonial ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c echo.Context) error {
	if err := h.testimonials.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Testimonial removed"})
}

func validRating(r optInt, required bool) error {
	if !r.set {
		if required {
			return domain.NewValidationError("rating", "rating is required")
		}
		return nil
	}
	if r.value < 1 || r.value > 5 {
		return domain.NewValidationError("rating", "rating must be between 1 and 5")
	}
	return nil
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

// CMSHandler serves certificates, the gallery and contact inquiries.
type CMSHandler struct {
	certificates ports.CertificateService
	gallery      ports.GalleryService
	inquiries    ports.InquiryService
}

func NewCMSHandler(certificates ports.CertificateService, gallery ports.GalleryService, inquiries ports.InquiryService) *CMSHandler {
	return &CMSHandler{certificates: certificates, gallery: gallery, inquiries: inquiries}
}

// ListCertificates
//
// @Summary      List certificates
// @Tags         certificates
// @Produce      json
// @Success      200  {array}  domain.Certificate
// @Router       /api/certificates [get]
func (h *CMSHandler) ListCertificates(c echo.Context) error {
	items, err := h.certificates.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// CreateCertificate uploads a certificate image or PDF.
//
// @Summary      Upload a certificate
// @Tags         certificates
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title      formData  string  true   "Title"
// @Param        issuer     formData  string  true   "Issuing body"
// @Param        issueDate  formData  string  false  "Issue date (YYYY-MM-DD)"
// @Param        file       formData  file    true   "Image or PDF, max 10MB"
// @Success      201        {object}  domain.Certificate
// @Failure      400        {object}  map[string]string
// @Router       /api/certificates [post]
func (h *CMSHandler) CreateCertificate(c echo.Context) error {
	var req certificateRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	file, err := formFile(c, "file")
	if err != nil {
		return err
	}

	cert, err := h.certificates.Create(c.Request().Context(), ports.CertificateInput{
		Title:     req.Title,
		Issuer:    req.Issuer,
		IssueDate: req.IssueDate.t,
		File:      file,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cert)
}

// DeleteCertificate
//
// @Summary      Delete a certificate
// @Tags         certificates
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Certificate ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/certificates/{id} [delete]
func (h *CMSHandler) DeleteCertificate(c echo.Context) error {
	if err := h.certificates.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Certificate removed"})
}

// ListGallery
//
// @Summary      List gallery items
// @Tags         gallery
// @Produce      json
// @Success      200  {array}  domain.GalleryItem
// @Router       /api/gallery [get]
func (h *CMSHandler) ListGallery(c echo.Context) error {
	items, err := h.gallery.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// CreateGalleryItem
//
// @Summary      Add a gallery image
// @Tags         gallery
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title     formData  string  true   "Title"
// @Param        category  formData  string  false  "Category"
// @Param        image     formData  file    true   "Image, max 10MB"
// @Success      201       {object}  domain.GalleryItem
// @Failure      400       {object}  map[string]string
// @Router       /api/gallery [post]
func (h *CMSHandler) CreateGalleryItem(c echo.Context) error {
	var req galleryRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	image, err := formFile(c, "image")
	if err != nil {
		return err
	}

	item, err := h.gallery.Create(c.Request().Context(), ports.GalleryInput{
		Title:    req.Title,
		Category: req.Category,
		Image:    image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// DeleteGalleryItem
//
// @Summary      Delete a gallery image
// @Tags         gallery
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Gallery item ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/gallery/{id} [delete]
func (h *CMSHandler) DeleteGalleryItem(c echo.Context) error {
	if err := h.gallery.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Gallery item removed"})
}

// ListInquiries
//
// @Summary      List inquiries
// @Tags         inquiries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Inquiry
// @Failure      403  {object}  map[string]string
// @Router       /api/inquiries [get]
func (h *CMSHandler) ListInquiries(c echo.Context) error {
	items, err := h.inquiries.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// CreateInquiry accepts a public contact-form submission.
//
// @Summary      Submit an inquiry
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        body  body      inquiryRequest  true  "Inquiry"
// @Success      201   {object}  domain.Inquiry
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/inquiries [post]
func (h *CMSHandler) CreateInquiry(c echo.Context) error {
	var req inquiryRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	inq, err := h.inquiries.Create(c.Request().Context(), ports.InquiryInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, inq)
}

// UpdateInquiryStatus
//
// @Summary      Update inquiry status
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Inquiry ID"
// @Param        body  body      inquiryStatusRequest  true  "New status"
// @Success      200   {object}  domain.Inquiry
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/inquiries/{id} [put]
func (h *CMSHandler) UpdateInquiryStatus(c echo.Context) error {
	var req inquiryStatusRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	inq, err := h.inquiries.UpdateStatus(c.Request().Context(), c.Param("id"), domain.InquiryStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inq)
}

// DeleteInquiry
//
// @Summary      Delete an inquiry
// @Tags         inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Inquiry ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/inquiries/{id} [delete]
func (h *CMSHandler) DeleteInquiry(c echo.Context) error {
	if err := h.inquiries.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Inquiry removed"})
}

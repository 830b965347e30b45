package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njrexim/cms-api/internal/core/ports"
)

type ProductHandler struct {
	products ports.ProductService
}

func NewProductHandler(products ports.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List returns the catalogue.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.products.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get returns one product.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.products.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create adds a product with up to five images.
//
// @Summary      Create a product
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        name            formData  string  true   "Name"
// @Param        description     formData  string  true   "Description"
// @Param        category        formData  string  true   "Category"
// @Param        specifications  formData  string  false  "JSON object of specifications"
// @Param        isFeatured      formData  bool    false  "Featured"
// @Param        images          formData  file    false  "Up to 5 images"
// @Success      201             {object}  domain.Product
// @Failure      400             {object}  map[string]string
// @Failure      429             {object}  map[string]string
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if err := requireFields("name", req.Name, "description", req.Description, "category", req.Category); err != nil {
		return err
	}
	images, err := formFiles(c, "images", maxProductImages)
	if err != nil {
		return err
	}

	product, err := h.products.Create(c.Request().Context(), ports.ProductInput{
		Name:           optString(req.Name),
		Description:    optString(req.Description),
		Category:       optString(req.Category),
		Specifications: req.Specifications,
		IsFeatured:     req.IsFeatured.ptr(),
		Images:         images,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update edits a product. Uploaded images are appended.
//
// @Summary      Update a product
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id              path      string  true   "Product ID"
// @Param        name            formData  string  false  "Name"
// @Param        description     formData  string  false  "Description"
// @Param        category        formData  string  false  "Category"
// @Param        specifications  formData  string  false  "JSON object of specifications"
// @Param        isFeatured      formData  bool    false  "Featured"
// @Param        images          formData  file    false  "Additional images (max 5)"
// @Success      200             {object}  domain.Product
// @Failure      400             {object}  map[string]string
// @Failure      404             {object}  map[string]string
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	images, err := formFiles(c, "images", maxProductImages)
	if err != nil {
		return err
	}

	product, err := h.products.Update(c.Request().Context(), c.Param("id"), ports.ProductInput{
		Name:           optString(req.Name),
		Description:    optString(req.Description),
		Category:       optString(req.Category),
		Specifications: req.Specifications,
		IsFeatured:     req.IsFeatured.ptr(),
		Images:         images,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete removes a product.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.products.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Product removed"})
}

package handler

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"

	"github.com/njrexim/cms-api/internal/api/metrics"
	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

const (
	maxUploadSize    = 10 << 20
	maxProductImages = 5
)

// formFile reads one optional upload. It returns nil when the field is absent.
func formFile(c echo.Context, field string) (*ports.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, domain.NewValidationError(field, "invalid multipart upload")
	}
	return readUpload(fh)
}

// formFiles reads up to limit uploads sent under field.
func formFiles(c echo.Context, field string, limit int) ([]ports.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, domain.NewValidationError(field, "invalid multipart upload")
	}
	files := form.File[field]
	if len(files) > limit {
		return nil, domain.NewValidationError(field, "too many files")
	}

	out := make([]ports.Upload, 0, len(files))
	for _, fh := range files {
		u, err := readUpload(fh)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, nil
}

// readUpload buffers a file, sniffs its real type from content and accepts
// images and PDFs up to maxUploadSize.
func readUpload(fh *multipart.FileHeader) (*ports.Upload, error) {
	if fh.Size > maxUploadSize {
		return nil, domain.ErrInvalidUpload
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxUploadSize || len(data) == 0 {
		return nil, domain.ErrInvalidUpload
	}

	mt := mimetype.Detect(data)
	kind := ""
	switch {
	case strings.HasPrefix(mt.String(), "image/"):
		kind = "image"
	case mt.Is("application/pdf"):
		kind = "pdf"
	default:
		return nil, domain.ErrInvalidUpload
	}
	metrics.UploadsTotal.WithLabelValues(kind).Inc()

	ct, _, _ := strings.Cut(mt.String(), ";")
	return &ports.Upload{
		Filename:    fh.Filename,
		ContentType: ct,
		Extension:   mt.Extension(),
		Size:        int64(len(data)),
		Body:        bytes.NewReader(data),
	}, nil
}

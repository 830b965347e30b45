package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Category sentinels. Entity-specific errors wrap one of these so the HTTP
// layer can map by category and still report a precise message.
var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict")
	ErrForbidden = errors.New("access forbidden")
)

var (
	ErrInvalidToken          = errors.New("invalid token")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrInvalidRole           = errors.New("invalid role")
	ErrAlreadyInitialized    = errors.New("setup already completed, users already exist")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrProtectedAccount      = errors.New("operation not allowed on a super admin account")
	ErrMailDelivery          = errors.New("email could not be sent")
	ErrInvalidUpload         = errors.New("only images and PDFs up to 10MB are allowed")
	ErrMissingFile           = errors.New("file is required")
	ErrPageExists            = errors.New("page already exists")
)

var (
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrBlogNotFound        = fmt.Errorf("blog %w", ErrNotFound)
	ErrProductNotFound     = fmt.Errorf("product %w", ErrNotFound)
	ErrCertificateNotFound = fmt.Errorf("certificate %w", ErrNotFound)
	ErrGalleryNotFound     = fmt.Errorf("gallery item %w", ErrNotFound)
	ErrInquiryNotFound     = fmt.Errorf("inquiry %w", ErrNotFound)
	ErrTestimonialNotFound = fmt.Errorf("testimonial %w", ErrNotFound)
	ErrPageNotFound        = fmt.Errorf("page %w", ErrNotFound)

	ErrEmailTaken = fmt.Errorf("%w: email already in use", ErrConflict)
	ErrSlugTaken  = fmt.Errorf("%w: slug already in use", ErrConflict)
)

// FieldError describes one failed constraint on a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "validation error: " + strings.Join(msgs, ", ")
}

// NewValidationError is a convenience for single-field failures raised
// outside the struct validator.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

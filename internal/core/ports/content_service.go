package ports

import (
	"context"
	"time"

	"github.com/njrexim/cms-api/internal/core/domain"
)

// Update inputs use nil pointers for "leave unchanged".

type BlogInput struct {
	Title       *string
	Content     *string
	Tags        []string
	IsPublished *bool
	Image       *Upload
	Author      *domain.User
}

type BlogService interface {
	List(ctx context.Context) ([]domain.Blog, error)
	Get(ctx context.Context, id string) (*domain.Blog, error)
	Create(ctx context.Context, in BlogInput) (*domain.Blog, error)
	Update(ctx context.Context, id string, in BlogInput) (*domain.Blog, error)
	Delete(ctx context.Context, id string) error
}

type ProductInput struct {
	Name           *string
	Description    *string
	Category       *string
	Specifications map[string]string
	IsFeatured     *bool
	Images         []Upload
}

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type CertificateInput struct {
	Title     string
	Issuer    string
	IssueDate *time.Time
	File      *Upload
}

type CertificateService interface {
	List(ctx context.Context) ([]domain.Certificate, error)
	Create(ctx context.Context, in CertificateInput) (*domain.Certificate, error)
	Delete(ctx context.Context, id string) error
}

type GalleryInput struct {
	Title    string
	Category string
	Image    *Upload
}

type GalleryService interface {
	List(ctx context.Context) ([]domain.GalleryItem, error)
	Create(ctx context.Context, in GalleryInput) (*domain.GalleryItem, error)
	Delete(ctx context.Context, id string) error
}

type InquiryInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type InquiryService interface {
	List(ctx context.Context) ([]domain.Inquiry, error)
	Create(ctx context.Context, in InquiryInput) (*domain.Inquiry, error)
	UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error)
	Delete(ctx context.Context, id string) error
}

type TestimonialInput struct {
	Name        *string
	Email       *string
	Rating      *int
	Content     *string
	Designation *string
	IsApproved  *bool
	Avatar      *Upload
}

type TestimonialService interface {
	ListApproved(ctx context.Context) ([]domain.Testimonial, error)
	ListAll(ctx context.Context) ([]domain.Testimonial, error)
	Submit(ctx context.Context, in TestimonialInput) (*domain.Testimonial, error)
	Update(ctx context.Context, id string, in TestimonialInput) (*domain.Testimonial, error)
	Delete(ctx context.Context, id string) error
}

type PageInput struct {
	Title    *string
	Slug     string
	Content  map[string]any
	IsActive *bool
}

type PageService interface {
	ListActive(ctx context.Context) ([]domain.Page, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Page, error)
	Create(ctx context.Context, in PageInput) (*domain.Page, error)
	Update(ctx context.Context, slug string, in PageInput) (*domain.Page, error)
}

// SettingsPatch carries only the fields present in the request.
type SettingsPatch map[string]string

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	// Update reports created=true when no settings existed before.
	Update(ctx context.Context, patch SettingsPatch) (settings *domain.Settings, created bool, err error)
}

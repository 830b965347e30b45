package ports

import (
	"context"

	"github.com/njrexim/cms-api/internal/core/domain"
)

// ListQuery narrows a listing. Match keys are stored field names.
type ListQuery struct {
	Match       map[string]any
	NewestFirst bool
}

// Repository is the CRUD surface shared by every content collection.
// Get, Replace and Delete return domain.ErrNotFound (unwrapped) when the
// id does not resolve; services re-wrap it with the entity-specific error.
type Repository[T any] interface {
	List(ctx context.Context, q ListQuery) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Insert(ctx context.Context, doc *T) error
	Replace(ctx context.Context, id string, doc *T) error
	Delete(ctx context.Context, id string) error
}

type (
	BlogRepository        = Repository[domain.Blog]
	ProductRepository     = Repository[domain.Product]
	CertificateRepository = Repository[domain.Certificate]
	GalleryRepository     = Repository[domain.GalleryItem]
	InquiryRepository     = Repository[domain.Inquiry]
	TestimonialRepository = Repository[domain.Testimonial]
)

// PageRepository adds slug lookup to the generic surface.
type PageRepository interface {
	Repository[domain.Page]
	FindBySlug(ctx context.Context, slug string) (*domain.Page, error)
}

// SettingsRepository persists the singleton settings document.
type SettingsRepository interface {
	// Get returns domain.ErrNotFound when settings were never saved.
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, s *domain.Settings) error
}

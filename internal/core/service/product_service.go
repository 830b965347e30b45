package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

type ProductService struct {
	repo  ports.ProductRepository
	media ports.MediaStore
	log   zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, media ports.MediaStore, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, media: media, log: log}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx, ports.ListQuery{NewestFirst: true})
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.repo.Get(ctx, id)
	return p, entityErr(err, domain.ErrProductNotFound)
}

func (s *ProductService) uploadImages(ctx context.Context, files []ports.Upload) ([]string, error) {
	urls := make([]string, 0, len(files))
	for i := range files {
		url, err := upload(ctx, s.media, folderProducts, &files[i])
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	images, err := s.uploadImages(ctx, in.Images)
	if err != nil {
		return nil, err
	}

	now := utcNow()
	p := &domain.Product{
		Name:           strings.TrimSpace(deref(in.Name)),
		Description:    strings.TrimSpace(deref(in.Description)),
		Category:       strings.TrimSpace(deref(in.Category)),
		Images:         images,
		Specifications: in.Specifications,
		IsFeatured:     deref(in.IsFeatured),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	p.Slug = domain.Slugify(p.Name)
	if p.Specifications == nil {
		p.Specifications = map[string]string{}
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", p.ID).Str("slug", p.Slug).Int("images", len(images)).Msg("product created")
	return p, nil
}

// Update applies the non-empty fields and appends any new images to the
// existing gallery.
func (s *ProductService) Update(ctx context.Context, id string, in ports.ProductInput) (*domain.Product, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, entityErr(err, domain.ErrProductNotFound)
	}

	if n := strings.TrimSpace(deref(in.Name)); n != "" {
		p.Name = n
		p.Slug = domain.Slugify(n)
	}
	if d := strings.TrimSpace(deref(in.Description)); d != "" {
		p.Description = d
	}
	if c := strings.TrimSpace(deref(in.Category)); c != "" {
		p.Category = c
	}
	if in.Specifications != nil {
		p.Specifications = in.Specifications
	}
	if in.IsFeatured != nil {
		p.IsFeatured = *in.IsFeatured
	}
	if len(in.Images) > 0 {
		urls, err := s.uploadImages(ctx, in.Images)
		if err != nil {
			return nil, err
		}
		p.Images = append(p.Images, urls...)
	}
	p.UpdatedAt = utcNow()

	if err := s.repo.Replace(ctx, id, p); err != nil {
		return nil, entityErr(err, domain.ErrProductNotFound)
	}
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return entityErr(s.repo.Delete(ctx, id), domain.ErrProductNotFound)
}

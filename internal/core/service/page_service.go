package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

type PageService struct {
	repo ports.PageRepository
	log  zerolog.Logger
}

func NewPageService(repo ports.PageRepository, log zerolog.Logger) *PageService {
	return &PageService{repo: repo, log: log}
}

func (s *PageService) ListActive(ctx context.Context) ([]domain.Page, error) {
	return s.repo.List(ctx, ports.ListQuery{Match: map[string]any{"is_active": true}})
}

func (s *PageService) GetBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	p, err := s.repo.FindBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	return p, entityErr(err, domain.ErrPageNotFound)
}

// Create rejects a slug that already exists.
func (s *PageService) Create(ctx context.Context, in ports.PageInput) (*domain.Page, error) {
	slug := domain.Slugify(strings.TrimSpace(in.Slug))
	if slug == "" {
		return nil, domain.NewValidationError("slug", "slug is required")
	}

	if _, err := s.repo.FindBySlug(ctx, slug); err == nil {
		return nil, domain.ErrPageExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := utcNow()
	p := &domain.Page{
		Title:     strings.TrimSpace(deref(in.Title)),
		Slug:      slug,
		Content:   in.Content,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if p.Content == nil {
		p.Content = map[string]any{}
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrPageExists
		}
		return nil, err
	}
	s.log.Info().Str("slug", slug).Msg("page created")
	return p, nil
}

func (s *PageService) Update(ctx context.Context, slug string, in ports.PageInput) (*domain.Page, error) {
	p, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		p.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		p.Content = in.Content
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	p.UpdatedAt = utcNow()

	if err := s.repo.Replace(ctx, p.ID, p); err != nil {
		return nil, entityErr(err, domain.ErrPageNotFound)
	}
	return p, nil
}

// SeedResult lists the slugs each Seed outcome applied to.
type SeedResult struct {
	Created []string
	Updated []string
	Skipped []string
}

// Seed creates every page whose slug does not exist yet. Existing pages are
// skipped unless overwrite is set, in which case their title, content and
// active flag are replaced.
func (s *PageService) Seed(ctx context.Context, pages []ports.PageInput, overwrite bool) (SeedResult, error) {
	var res SeedResult
	for _, in := range pages {
		slug := domain.Slugify(strings.TrimSpace(in.Slug))
		p, err := s.Create(ctx, in)
		switch {
		case err == nil:
			res.Created = append(res.Created, p.Slug)
		case errors.Is(err, domain.ErrPageExists) && overwrite:
			if in.IsActive == nil {
				active := true
				in.IsActive = &active
			}
			p, err = s.Update(ctx, slug, in)
			if err != nil {
				return res, fmt.Errorf("seed page %q: %w", in.Slug, err)
			}
			res.Updated = append(res.Updated, p.Slug)
		case errors.Is(err, domain.ErrPageExists):
			res.Skipped = append(res.Skipped, slug)
		default:
			return res, fmt.Errorf("seed page %q: %w", in.Slug, err)
		}
	}
	s.log.Info().
		Int("created", len(res.Created)).
		Int("updated", len(res.Updated)).
		Int("skipped", len(res.Skipped)).
		Msg("pages seeded")
	return res, nil
}

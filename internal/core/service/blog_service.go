package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

type BlogService struct {
	repo  ports.BlogRepository
	media ports.MediaStore
	log   zerolog.Logger
}

func NewBlogService(repo ports.BlogRepository, media ports.MediaStore, log zerolog.Logger) *BlogService {
	return &BlogService{repo: repo, media: media, log: log}
}

func (s *BlogService) List(ctx context.Context) ([]domain.Blog, error) {
	return s.repo.List(ctx, ports.ListQuery{NewestFirst: true})
}

func (s *BlogService) Get(ctx context.Context, id string) (*domain.Blog, error) {
	b, err := s.repo.Get(ctx, id)
	return b, entityErr(err, domain.ErrBlogNotFound)
}

func (s *BlogService) Create(ctx context.Context, in ports.BlogInput) (*domain.Blog, error) {
	image, err := upload(ctx, s.media, folderBlogs, in.Image)
	if err != nil {
		return nil, err
	}

	now := utcNow()
	b := &domain.Blog{
		Title:     strings.TrimSpace(deref(in.Title)),
		Content:   deref(in.Content),
		Image:     image,
		Tags:      in.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	b.Slug = domain.Slugify(b.Title)
	if b.Tags == nil {
		b.Tags = []string{}
	}
	if in.IsPublished != nil {
		b.IsPublished = *in.IsPublished
	}
	if in.Author != nil {
		b.Author = domain.Author{ID: in.Author.ID, Name: in.Author.Name}
	}

	if err := s.repo.Insert(ctx, b); err != nil {
		return nil, err
	}
	s.log.Info().Str("blog_id", b.ID).Str("slug", b.Slug).Msg("blog created")
	return b, nil
}

func (s *BlogService) Update(ctx context.Context, id string, in ports.BlogInput) (*domain.Blog, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, entityErr(err, domain.ErrBlogNotFound)
	}

	if t := strings.TrimSpace(deref(in.Title)); t != "" {
		b.Title = t
		b.Slug = domain.Slugify(t)
	}
	if c := deref(in.Content); c != "" {
		b.Content = c
	}
	if in.Tags != nil {
		b.Tags = in.Tags
	}
	if in.IsPublished != nil {
		b.IsPublished = *in.IsPublished
	}
	if in.Image != nil {
		url, err := upload(ctx, s.media, folderBlogs, in.Image)
		if err != nil {
			return nil, err
		}
		b.Image = url
	}
	b.UpdatedAt = utcNow()

	if err := s.repo.Replace(ctx, id, b); err != nil {
		return nil, entityErr(err, domain.ErrBlogNotFound)
	}
	return b, nil
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	return entityErr(s.repo.Delete(ctx, id), domain.ErrBlogNotFound)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

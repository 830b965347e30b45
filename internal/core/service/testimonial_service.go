package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

// TestimonialService accepts public submissions, which stay hidden until an
// admin approves them.
type TestimonialService struct {
	repo  ports.TestimonialRepository
	media ports.MediaStore
	log   zerolog.Logger
}

func NewTestimonialService(repo ports.TestimonialRepository, media ports.MediaStore, log zerolog.Logger) *TestimonialService {
	return &TestimonialService{repo: repo, media: media, log: log}
}

func (s *TestimonialService) ListApproved(ctx context.Context) ([]domain.Testimonial, error) {
	items, err := s.repo.List(ctx, ports.ListQuery{
		Match:       map[string]any{"is_approved": true},
		NewestFirst: true,
	})
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i] = items[i].Public()
	}
	return items, nil
}

func (s *TestimonialService) ListAll(ctx context.Context) ([]domain.Testimonial, error) {
	return s.repo.List(ctx, ports.ListQuery{NewestFirst: true})
}

// Submit always stores the testimonial unapproved regardless of input.
func (s *TestimonialService) Submit(ctx context.Context, in ports.TestimonialInput) (*domain.Testimonial, error) {
	avatar, err := upload(ctx, s.media, folderTestimonials, in.Avatar)
	if err != nil {
		return nil, err
	}

	now := utcNow()
	t := &domain.Testimonial{
		Name:        strings.TrimSpace(deref(in.Name)),
		Email:       domain.NormalizeEmail(deref(in.Email)),
		Rating:      deref(in.Rating),
		Content:     strings.TrimSpace(deref(in.Content)),
		Designation: strings.TrimSpace(deref(in.Designation)),
		Avatar:      avatar,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, t); err != nil {
		return nil, err
	}
	s.log.Info().Str("testimonial_id", t.ID).Int("rating", t.Rating).Msg("testimonial submitted")
	return t, nil
}

func (s *TestimonialService) Update(ctx context.Context, id string, in ports.TestimonialInput) (*domain.Testimonial, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, entityErr(err, domain.ErrTestimonialNotFound)
	}

	if in.Name != nil {
		t.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		t.Email = domain.NormalizeEmail(*in.Email)
	}
	if in.Rating != nil {
		t.Rating = *in.Rating
	}
	if in.Content != nil {
		t.Content = strings.TrimSpace(*in.Content)
	}
	if in.Designation != nil {
		t.Designation = strings.TrimSpace(*in.Designation)
	}
	if in.IsApproved != nil {
		t.IsApproved = *in.IsApproved
	}
	if in.Avatar != nil {
		url, err := upload(ctx, s.media, folderTestimonials, in.Avatar)
		if err != nil {
			return nil, err
		}
		t.Avatar = url
	}
	t.UpdatedAt = utcNow()

	if err := s.repo.Replace(ctx, id, t); err != nil {
		return nil, entityErr(err, domain.ErrTestimonialNotFound)
	}
	return t, nil
}

func (s *TestimonialService) Delete(ctx context.Context, id string) error {
	return entityErr(s.repo.Delete(ctx, id), domain.ErrTestimonialNotFound)
}

package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

// CertificateService manages uploaded compliance documents.
type CertificateService struct {
	repo  ports.CertificateRepository
	media ports.MediaStore
	log   zerolog.Logger
}

func NewCertificateService(repo ports.CertificateRepository, media ports.MediaStore, log zerolog.Logger) *CertificateService {
	return &CertificateService{repo: repo, media: media, log: log}
}

func (s *CertificateService) List(ctx context.Context) ([]domain.Certificate, error) {
	return s.repo.List(ctx, ports.ListQuery{NewestFirst: true})
}

// Create requires a file. Image certificates reuse the file URL as their
// thumbnail; PDFs get none.
func (s *CertificateService) Create(ctx context.Context, in ports.CertificateInput) (*domain.Certificate, error) {
	if in.File == nil {
		return nil, domain.ErrMissingFile
	}
	url, err := upload(ctx, s.media, folderCertificates, in.File)
	if err != nil {
		return nil, err
	}

	now := utcNow()
	c := &domain.Certificate{
		Title:     strings.TrimSpace(in.Title),
		Issuer:    strings.TrimSpace(in.Issuer),
		IssueDate: in.IssueDate,
		FileURL:   url,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if strings.HasPrefix(in.File.ContentType, "image/") {
		c.Thumbnail = url
	}

	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info().Str("certificate_id", c.ID).Str("content_type", in.File.ContentType).Msg("certificate uploaded")
	return c, nil
}

func (s *CertificateService) Delete(ctx context.Context, id string) error {
	return entityErr(s.repo.Delete(ctx, id), domain.ErrCertificateNotFound)
}

// GalleryService manages the image gallery.
type GalleryService struct {
	repo  ports.GalleryRepository
	media ports.MediaStore
	log   zerolog.Logger
}

func NewGalleryService(repo ports.GalleryRepository, media ports.MediaStore, log zerolog.Logger) *GalleryService {
	return &GalleryService{repo: repo, media: media, log: log}
}

func (s *GalleryService) List(ctx context.Context) ([]domain.GalleryItem, error) {
	return s.repo.List(ctx, ports.ListQuery{NewestFirst: true})
}

func (s *GalleryService) Create(ctx context.Context, in ports.GalleryInput) (*domain.GalleryItem, error) {
	if in.Image == nil {
		return nil, domain.ErrMissingFile
	}
	if !strings.HasPrefix(in.Image.ContentType, "image/") {
		return nil, domain.NewValidationError("image", "gallery uploads must be images")
	}
	url, err := upload(ctx, s.media, folderGallery, in.Image)
	if err != nil {
		return nil, err
	}

	now := utcNow()
	item := &domain.GalleryItem{
		Title:     strings.TrimSpace(in.Title),
		Category:  strings.TrimSpace(in.Category),
		ImageURL:  url,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, err
	}
	s.log.Info().Str("gallery_id", item.ID).Msg("gallery item created")
	return item, nil
}

func (s *GalleryService) Delete(ctx context.Context, id string) error {
	return entityErr(s.repo.Delete(ctx, id), domain.ErrGalleryNotFound)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

// Upload folders on the media host.
const (
	folderBlogs        = "blogs"
	folderProducts     = "products"
	folderCertificates = "certificates"
	folderGallery      = "gallery"
	folderTestimonials = "testimonials"
)

// entityErr re-labels a generic not-found from the repository with the
// entity-specific error; other errors pass through.
func entityErr(err, notFound error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return notFound
	}
	return err
}

func upload(ctx context.Context, media ports.MediaStore, folder string, file *ports.Upload) (string, error) {
	if file == nil {
		return "", nil
	}
	url, err := media.Upload(ctx, folder, *file)
	if err != nil {
		return "", fmt.Errorf("upload to %s: %w", folder, err)
	}
	return url, nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}

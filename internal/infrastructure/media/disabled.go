package media

import (
	"context"
	"errors"

	"github.com/njrexim/cms-api/internal/core/ports"
)

// ErrNotConfigured is returned when no bucket was configured.
var ErrNotConfigured = errors.New("media storage not configured")

// Disabled rejects every upload. It stands in for S3Store when S3_BUCKET is
// unset so content without files can still be managed.
type Disabled struct{}

func (Disabled) Upload(context.Context, string, ports.Upload) (string, error) {
	return "", ErrNotConfigured
}

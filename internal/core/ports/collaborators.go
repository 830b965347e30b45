package ports

import (
	"context"
	"io"

	"github.com/njrexim/cms-api/internal/core/domain"
)

// EmailMessage is a single outbound email with an HTML body and plain-text
// fallback.
type EmailMessage struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer delivers email. Send blocks until the relay accepted or rejected
// the message.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// Upload is a validated file ready to be forwarded to the media host.
type Upload struct {
	Filename    string
	ContentType string
	Extension   string
	Size        int64
	Body        io.Reader
}

// MediaStore forwards uploads to the external media host and returns the
// public URL.
type MediaStore interface {
	Upload(ctx context.Context, folder string, file Upload) (string, error)
}

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}

// InquiryNotifier hands a new inquiry to the asynchronous notification path.
type InquiryNotifier interface {
	NotifyInquiry(inquiry domain.Inquiry)
}

package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

// InquiryService stores contact-form submissions and hands each new one to
// the notifier. Notification never blocks or fails the submission.
type InquiryService struct {
	repo     ports.InquiryRepository
	notifier ports.InquiryNotifier
	log      zerolog.Logger
}

func NewInquiryService(repo ports.InquiryRepository, notifier ports.InquiryNotifier, log zerolog.Logger) *InquiryService {
	return &InquiryService{repo: repo, notifier: notifier, log: log}
}

func (s *InquiryService) List(ctx context.Context) ([]domain.Inquiry, error) {
	return s.repo.List(ctx, ports.ListQuery{NewestFirst: true})
}

func (s *InquiryService) Create(ctx context.Context, in ports.InquiryInput) (*domain.Inquiry, error) {
	now := utcNow()
	inq := &domain.Inquiry{
		Name:      strings.TrimSpace(in.Name),
		Email:     domain.NormalizeEmail(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Subject:   strings.TrimSpace(in.Subject),
		Message:   strings.TrimSpace(in.Message),
		Status:    domain.InquiryNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, inq); err != nil {
		return nil, err
	}

	s.log.Info().Str("inquiry_id", inq.ID).Msg("inquiry received")
	if s.notifier != nil {
		s.notifier.NotifyInquiry(*inq)
	}
	return inq, nil
}

func (s *InquiryService) UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error) {
	switch status {
	case domain.InquiryNew, domain.InquiryRead, domain.InquiryReplied:
	default:
		return nil, domain.NewValidationError("status", "status must be one of new, read, replied")
	}

	inq, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, entityErr(err, domain.ErrInquiryNotFound)
	}
	inq.Status = status
	inq.UpdatedAt = utcNow()
	if err := s.repo.Replace(ctx, id, inq); err != nil {
		return nil, entityErr(err, domain.ErrInquiryNotFound)
	}
	return inq, nil
}

func (s *InquiryService) Delete(ctx context.Context, id string) error {
	return entityErr(s.repo.Delete(ctx, id), domain.ErrInquiryNotFound)
}

// InquiryNotification returns the delivery function run by the notification
// workers: compose the staff email and send it.
func InquiryNotification(emails *EmailComposer, mailer ports.Mailer) func(context.Context, domain.Inquiry) error {
	return func(ctx context.Context, inq domain.Inquiry) error {
		msg, err := emails.NewInquiry(ctx, inq)
		if err != nil {
			return err
		}
		return mailer.Send(ctx, msg)
	}
}

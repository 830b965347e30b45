package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

// SettingsService manages the singleton site settings document.
type SettingsService struct {
	repo ports.SettingsRepository
	log  zerolog.Logger
}

func NewSettingsService(repo ports.SettingsRepository, log zerolog.Logger) *SettingsService {
	return &SettingsService{repo: repo, log: log}
}

// Get returns the stored settings, creating the defaults on first read.
func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	st, err := s.repo.Get(ctx)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	st = defaultSettings()
	if err := s.repo.Save(ctx, st); err != nil {
		return nil, err
	}
	s.log.Info().Msg("default settings created")
	return st, nil
}

func (s *SettingsService) Update(ctx context.Context, patch ports.SettingsPatch) (*domain.Settings, bool, error) {
	created := false
	st, err := s.repo.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		st, created = defaultSettings(), true
	} else if err != nil {
		return nil, false, err
	}

	for key, value := range patch {
		if field := settingsField(st, key); field != nil {
			*field = strings.TrimSpace(value)
			if key == "contactEmail" {
				*field = domain.NormalizeEmail(value)
			}
		}
	}
	if st.SiteName == "" {
		st.SiteName = domain.DefaultSiteName
	}
	st.UpdatedAt = utcNow()

	if err := s.repo.Save(ctx, st); err != nil {
		return nil, false, err
	}
	s.log.Info().Bool("created", created).Int("fields", len(patch)).Msg("settings updated")
	return st, created, nil
}

func defaultSettings() *domain.Settings {
	now := utcNow()
	return &domain.Settings{
		SiteName:  domain.DefaultSiteName,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// settingsField maps a request key to the field it edits. Unknown keys
// return nil and are ignored.
func settingsField(st *domain.Settings, key string) *string {
	switch key {
	case "siteName":
		return &st.SiteName
	case "siteDescription":
		return &st.SiteDescription
	case "contactEmail":
		return &st.ContactEmail
	case "contactPhone":
		return &st.ContactPhone
	case "alternatePhone":
		return &st.AlternatePhone
	case "address":
		return &st.Address
	case "city":
		return &st.City
	case "state":
		return &st.State
	case "pincode":
		return &st.Pincode
	case "country":
		return &st.Country
	case "facebookUrl":
		return &st.FacebookURL
	case "twitterUrl":
		return &st.TwitterURL
	case "linkedinUrl":
		return &st.LinkedinURL
	case "instagramUrl":
		return &st.InstagramURL
	case "ogImageUrl":
		return &st.OGImageURL
	default:
		return nil
	}
}

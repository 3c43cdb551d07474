// Package settings manages the Reddit credential configuration that gates
// discovery.
package settings

import (
	"context"
	"strings"

	"engagemate/internal/models"
	"engagemate/internal/store"
)

type Service struct {
	store            store.SettingsStore
	defaultUserAgent string
}

func NewService(st store.SettingsStore, defaultUserAgent string) *Service {
	return &Service{store: st, defaultUserAgent: defaultUserAgent}
}

// Get loads the stored settings, filling in the default user agent when none
// was saved yet.
func (s *Service) Get(ctx context.Context) (models.RedditSettings, error) {
	settings, err := s.store.LoadSettings(ctx)
	if err != nil {
		return models.RedditSettings{}, err
	}
	if settings.UserAgent == "" {
		settings.UserAgent = s.defaultUserAgent
	}
	return settings, nil
}

// Save validates and persists the credential configuration.
func (s *Service) Save(ctx context.Context, settings models.RedditSettings) error {
	settings.ClientID = strings.TrimSpace(settings.ClientID)
	settings.ClientSecret = strings.TrimSpace(settings.ClientSecret)
	settings.UserAgent = strings.TrimSpace(settings.UserAgent)

	if settings.ClientID == "" || settings.ClientSecret == "" {
		return models.NewError(models.ErrCodeValidation, "client id and client secret are required")
	}
	if settings.UserAgent == "" {
		settings.UserAgent = s.defaultUserAgent
	}
	return s.store.SaveSettings(ctx, settings)
}

// RequireConfigured is the precondition gate consulted before discovery may
// run. It is checked synchronously, before any network simulation starts.
func (s *Service) RequireConfigured(ctx context.Context) error {
	settings, err := s.store.LoadSettings(ctx)
	if err != nil {
		return err
	}
	if !settings.Configured() {
		return models.ErrNotConfigured
	}
	return nil
}

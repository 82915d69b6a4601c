package service

import (
	"context"

	"dinefine/profile-svc/internal/domain"
)

type ProfileServiceInterface interface {
	Get(ctx context.Context, userID string) (*domain.Preferences, error)
	Update(ctx context.Context, prefs *domain.Preferences) ([]string, error)
}

type PreferencesRepository interface {
	GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error)
	UpsertPreferences(ctx context.Context, prefs *domain.Preferences) error
}

type PreferencesCache interface {
	Get(ctx context.Context, userID string) (*domain.Preferences, bool, error)
	Set(ctx context.Context, prefs *domain.Preferences) error
}

var _ ProfileServiceInterface = (*ProfileService)(nil)

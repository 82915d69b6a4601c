package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dinefine/dietary"
	"dinefine/profile-svc/internal/domain"

	"go.uber.org/zap"
)

var (
	ErrInvalidUser         = errors.New("user id is required")
	ErrPreferencesNotFound = errors.New("preferences not found for user")
)

type ProfileService struct {
	repository PreferencesRepository
	cache      PreferencesCache
	log        *zap.SugaredLogger
}

func NewProfileService(repository PreferencesRepository, cache PreferencesCache, log *zap.SugaredLogger) *ProfileService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ProfileService{
		repository: repository,
		cache:      cache,
		log:        log,
	}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUser
	}

	if prefs, ok, err := s.cache.Get(ctx, userID); err != nil {
		s.log.Warnf("Preferences cache read failed for user %s: %v", userID, err)
	} else if ok {
		return prefs, nil
	}

	prefs, err := s.repository.GetPreferences(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrPreferencesNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	if err := s.cache.Set(ctx, prefs); err != nil {
		s.log.Warnf("Failed to cache preferences for user %s: %v", userID, err)
	}
	return prefs, nil
}

// Update stores the cleaned lists and returns identifiers the keyword table
// does not know. Those are kept but will never match an ingredient.
func (s *ProfileService) Update(ctx context.Context, prefs *domain.Preferences) ([]string, error) {
	prefs.UserID = strings.TrimSpace(prefs.UserID)
	if prefs.UserID == "" {
		return nil, ErrInvalidUser
	}
	prefs.Allergies = cleanList(prefs.Allergies)
	prefs.DietaryPreferences = cleanList(prefs.DietaryPreferences)

	if err := s.repository.UpsertPreferences(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}

	if err := s.cache.Set(ctx, prefs); err != nil {
		s.log.Warnf("Failed to cache preferences for user %s: %v", prefs.UserID, err)
	}

	unrecognized := []string{}
	for _, id := range append(append([]string{}, prefs.Allergies...), prefs.DietaryPreferences...) {
		if !dietary.IsKnown(id) {
			unrecognized = append(unrecognized, id)
		}
	}

	s.log.Infof("Updated preferences for user %s (%d allergies, %d dietary preferences)",
		prefs.UserID, len(prefs.Allergies), len(prefs.DietaryPreferences))
	return unrecognized, nil
}

// cleanList trims entries, drops blanks and keeps the first of any duplicates.
func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

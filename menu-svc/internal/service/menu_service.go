package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dinefine/dietary"
	"dinefine/menu-svc/internal/domain"

	"go.uber.org/zap"
)

var (
	ErrMenuNotFound      = errors.New("menu not found for restaurant")
	ErrEmptyMenu         = errors.New("menu must contain at least one dish")
	ErrInvalidRestaurant = errors.New("invalid restaurant id")
)

type MenuService struct {
	repository MenuRepository
	cache      MenuCache
	publisher  ScanPublisher
	qr         QRGenerator
	log        *zap.SugaredLogger
}

func NewMenuService(repository MenuRepository, cache MenuCache, publisher ScanPublisher, qr QRGenerator, log *zap.SugaredLogger) *MenuService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &MenuService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
		qr:         qr,
		log:        log,
	}
}

// Scan checks an ad-hoc menu; nothing is stored or published.
func (s *MenuService) Scan(req domain.ScanRequest) domain.ScanResponse {
	results := dietary.ScanMenu(req.Dishes, req.Allergies, req.DietaryPreferences)
	return domain.ScanResponse{
		Results: results,
		Summary: dietary.Summarize(results),
	}
}

func (s *MenuService) SaveMenu(ctx context.Context, restaurantID int, dishes []dietary.Dish) error {
	if restaurantID <= 0 {
		return ErrInvalidRestaurant
	}
	if len(dishes) == 0 {
		return ErrEmptyMenu
	}
	if err := s.repository.ReplaceMenu(ctx, restaurantID, dishes); err != nil {
		return fmt.Errorf("failed to save menu: %w", err)
	}
	if s.cache != nil {
		s.refreshCache(ctx, restaurantID, dishes)
	}
	s.log.Infof("Saved %d dishes for restaurant %d", len(dishes), restaurantID)
	return nil
}

func (s *MenuService) GetMenu(ctx context.Context, restaurantID int) ([]dietary.Dish, error) {
	if restaurantID <= 0 {
		return nil, ErrInvalidRestaurant
	}
	if s.cache != nil {
		dishes, ok, err := s.cache.GetMenu(ctx, restaurantID)
		if err != nil {
			s.log.Warnf("Menu cache read failed for restaurant %d: %v", restaurantID, err)
		} else if ok {
			return dishes, nil
		}
	}

	dishes, err := s.repository.ListMenu(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	if s.cache != nil && len(dishes) > 0 {
		if err := s.cache.SetMenuIfAbsent(ctx, restaurantID, dishes); err != nil {
			s.log.Warnf("Failed to cache menu for restaurant %d: %v", restaurantID, err)
		}
	}
	return dishes, nil
}

// refreshCache overwrites the cached menu after a save. Reads only fill an
// empty slot, so a read that started before the save cannot put the old menu
// back. If the write fails the entry is dropped instead.
func (s *MenuService) refreshCache(ctx context.Context, restaurantID int, dishes []dietary.Dish) {
	err := s.cache.SetMenu(ctx, restaurantID, dishes)
	if err == nil {
		return
	}
	s.log.Warnf("Failed to cache saved menu for restaurant %d: %v", restaurantID, err)
	if err := s.cache.Invalidate(ctx, restaurantID); err != nil {
		s.log.Warnf("Failed to invalidate menu cache for restaurant %d: %v", restaurantID, err)
	}
}

// ScanRestaurant scans a stored menu against the stored preferences of
// userID. An unknown or empty userID scans with no restrictions.
func (s *MenuService) ScanRestaurant(ctx context.Context, restaurantID int, userID string) (*domain.ScanResponse, error) {
	userID = strings.TrimSpace(userID)
	dishes, err := s.GetMenu(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if len(dishes) == 0 {
		return nil, ErrMenuNotFound
	}

	prefs := &domain.Preferences{UserID: userID}
	if userID != "" {
		stored, err := s.repository.GetPreferences(ctx, userID)
		switch {
		case err == nil:
			prefs = stored
		case errors.Is(err, domain.ErrNotFound):
			s.log.Infof("No preferences stored for user %s, scanning without restrictions", userID)
		default:
			return nil, fmt.Errorf("failed to load preferences: %w", err)
		}
	}

	results := dietary.ScanMenu(dishes, prefs.Allergies, prefs.DietaryPreferences)
	response := &domain.ScanResponse{
		RestaurantID: restaurantID,
		UserID:       userID,
		Results:      results,
		Summary:      dietary.Summarize(results),
	}

	if s.publisher != nil {
		event := domain.ScanEvent{
			Type:            "menu_scanned",
			RestaurantID:    restaurantID,
			UserID:          userID,
			TotalDishes:     response.Summary.TotalDishes,
			FlaggedDishes:   response.Summary.FlaggedDishes,
			RestrictionHits: response.Summary.RestrictionHits,
			Timestamp:       time.Now(),
		}
		if err := s.publisher.PublishScan(ctx, event); err != nil {
			s.log.Warnf("Failed to publish scan event for restaurant %d: %v", restaurantID, err)
		}
	}

	return response, nil
}

func (s *MenuService) QRCode(restaurantID int) ([]byte, error) {
	if restaurantID <= 0 {
		return nil, ErrInvalidRestaurant
	}
	return s.qr.Generate(restaurantID)
}

package service

import (
	"context"

	"dinefine/dietary"
	"dinefine/menu-svc/internal/domain"
)

type MenuServiceInterface interface {
	Scan(req domain.ScanRequest) domain.ScanResponse
	SaveMenu(ctx context.Context, restaurantID int, dishes []dietary.Dish) error
	GetMenu(ctx context.Context, restaurantID int) ([]dietary.Dish, error)
	ScanRestaurant(ctx context.Context, restaurantID int, userID string) (*domain.ScanResponse, error)
	QRCode(restaurantID int) ([]byte, error)
}

type MenuRepository interface {
	ReplaceMenu(ctx context.Context, restaurantID int, dishes []dietary.Dish) error
	ListMenu(ctx context.Context, restaurantID int) ([]dietary.Dish, error)
	GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error)
}

type MenuCache interface {
	GetMenu(ctx context.Context, restaurantID int) ([]dietary.Dish, bool, error)
	SetMenu(ctx context.Context, restaurantID int, dishes []dietary.Dish) error
	SetMenuIfAbsent(ctx context.Context, restaurantID int, dishes []dietary.Dish) error
	Invalidate(ctx context.Context, restaurantID int) error
}

type ScanPublisher interface {
	PublishScan(ctx context.Context, event domain.ScanEvent) error
}

var _ MenuServiceInterface = (*MenuService)(nil)

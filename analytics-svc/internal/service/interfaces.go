package service

import (
	"context"

	"dinefine/analytics-svc/internal/domain"
)

type AnalyticsInterface interface {
	TopToday(ctx context.Context, limit int) ([]domain.RestrictionHits, error)
	TopAllTime(ctx context.Context, limit int) ([]domain.RestrictionHits, error)
	RestaurantStats(ctx context.Context, restaurantID int) (*domain.ScanStats, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"dinefine/analytics-svc/internal/domain"
	"dinefine/scankeys"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrNoScans = errors.New("no scans recorded for restaurant")

type AnalyticsService struct {
	db  *sql.DB
	rdb *redis.Client
	log *zap.SugaredLogger
	now func() time.Time
}

func NewAnalyticsService(db *sql.DB, rdb *redis.Client, log *zap.SugaredLogger) *AnalyticsService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &AnalyticsService{
		db:  db,
		rdb: rdb,
		log: log,
		now: time.Now,
	}
}

// WithClock replaces the clock used to pick the daily key.
func (s *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	s.now = now
	return s
}

func (s *AnalyticsService) TopToday(ctx context.Context, limit int) ([]domain.RestrictionHits, error) {
	key := scankeys.DailyRestrictions(s.now())
	return s.topRestrictions(ctx, key, limit)
}

func (s *AnalyticsService) TopAllTime(ctx context.Context, limit int) ([]domain.RestrictionHits, error) {
	return s.topRestrictions(ctx, scankeys.AllTimeRestrictions, limit)
}

func (s *AnalyticsService) topRestrictions(ctx context.Context, key string, limit int) ([]domain.RestrictionHits, error) {
	if limit <= 0 {
		return []domain.RestrictionHits{}, nil
	}
	result, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	top := make([]domain.RestrictionHits, 0, len(result))
	for _, member := range result {
		name, ok := member.Member.(string)
		if !ok {
			continue
		}
		top = append(top, domain.RestrictionHits{
			Restriction: name,
			Hits:        int(member.Score),
		})
	}
	return top, nil
}

// RestaurantStats reads the live counters and falls back to the scan log
// when the counters are missing.
func (s *AnalyticsService) RestaurantStats(ctx context.Context, restaurantID int) (*domain.ScanStats, error) {
	key := scankeys.Restaurant(restaurantID)
	counters, err := s.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		s.log.Warnf("Failed to read %s, falling back to postgres: %v", key, err)
	}
	if err == nil && len(counters) > 0 {
		stats := &domain.ScanStats{RestaurantID: restaurantID}
		stats.Scans, _ = strconv.Atoi(counters[scankeys.FieldScans])
		stats.TotalDishes, _ = strconv.Atoi(counters[scankeys.FieldTotalDishes])
		stats.FlaggedDishes, _ = strconv.Atoi(counters[scankeys.FieldFlaggedDishes])
		if stats.Scans > 0 {
			stats.FlaggedRatio = flaggedRatio(stats.FlaggedDishes, stats.TotalDishes)
			return stats, nil
		}
	}

	return s.restaurantStatsFromDB(ctx, restaurantID)
}

func (s *AnalyticsService) restaurantStatsFromDB(ctx context.Context, restaurantID int) (*domain.ScanStats, error) {
	stats := &domain.ScanStats{RestaurantID: restaurantID}
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_dishes), 0), COALESCE(SUM(flagged_dishes), 0)
		FROM menu_scans
		WHERE restaurant_id = $1
	`, restaurantID).Scan(&stats.Scans, &stats.TotalDishes, &stats.FlaggedDishes)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate scans: %w", err)
	}
	if stats.Scans == 0 {
		return nil, ErrNoScans
	}
	stats.FlaggedRatio = flaggedRatio(stats.FlaggedDishes, stats.TotalDishes)
	return stats, nil
}

func flaggedRatio(flagged, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(flagged)/float64(total)*1000) / 1000
}

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"dinefine/agg-svc/internal/domain"
	"dinefine/scankeys"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	db  *sql.DB
	rdb *redis.Client
	now func() time.Time
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		now: time.Now,
	}
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS menu_scans (
			id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL,
			user_id TEXT,
			total_dishes INT NOT NULL,
			flagged_dishes INT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		"CREATE INDEX IF NOT EXISTS idx_menu_scans_restaurant ON menu_scans (restaurant_id)",
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *Store) RecordScan(ctx context.Context, event domain.ScanEvent) error {
	userID := sql.NullString{String: event.UserID, Valid: event.UserID != ""}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO menu_scans (restaurant_id, user_id, total_dishes, flagged_dishes, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, event.RestaurantID, userID, event.TotalDishes, event.FlaggedDishes, s.scannedAt(event))
	if err != nil {
		return fmt.Errorf("failed to record scan: %w", err)
	}
	return nil
}

func (s *Store) UpdateAnalytics(ctx context.Context, event domain.ScanEvent) error {
	restaurantKey := scankeys.Restaurant(event.RestaurantID)
	dailyKey := scankeys.DailyRestrictions(s.scannedAt(event))

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, restaurantKey, scankeys.FieldScans, 1)
		pipe.HIncrBy(ctx, restaurantKey, scankeys.FieldTotalDishes, int64(event.TotalDishes))
		pipe.HIncrBy(ctx, restaurantKey, scankeys.FieldFlaggedDishes, int64(event.FlaggedDishes))

		for restriction, hits := range event.RestrictionHits {
			if hits <= 0 {
				continue
			}
			pipe.ZIncrBy(ctx, dailyKey, float64(hits), restriction)
			pipe.ZIncrBy(ctx, scankeys.AllTimeRestrictions, float64(hits), restriction)
		}
		pipe.Expire(ctx, dailyKey, scankeys.DailyRetention)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update scan counters: %w", err)
	}
	return nil
}

func (s *Store) scannedAt(event domain.ScanEvent) time.Time {
	if event.Timestamp.IsZero() {
		return s.now().UTC()
	}
	return event.Timestamp.UTC()
}

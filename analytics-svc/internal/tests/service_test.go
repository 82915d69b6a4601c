package tests

import (
	"context"
	"testing"
	"time"

	"dinefine/analytics-svc/internal/domain"
	"dinefine/analytics-svc/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 7, 4, 12, 0, 0, 0, time.UTC)

func setupAnalytics(t *testing.T) (*service.AnalyticsService, sqlmock.Sqlmock, *miniredis.Miniredis) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := service.NewAnalyticsService(mockDB, client, nil).
		WithClock(func() time.Time { return fixedNow })
	return svc, mock, mr
}

func TestAnalyticsService_TopToday(t *testing.T) {
	svc, _, mr := setupAnalytics(t)
	ctx := context.Background()

	_, err := mr.ZAdd("scan:restrictions:daily:2024-07-04", 5, "Vegan")
	require.NoError(t, err)
	_, err = mr.ZAdd("scan:restrictions:daily:2024-07-04", 9, "Peanuts")
	require.NoError(t, err)
	_, err = mr.ZAdd("scan:restrictions:daily:2024-07-04", 2, "Soy")
	require.NoError(t, err)
	_, err = mr.ZAdd("scan:restrictions:daily:2024-07-03", 50, "Fish")
	require.NoError(t, err)

	top, err := svc.TopToday(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, []domain.RestrictionHits{
		{Restriction: "Peanuts", Hits: 9},
		{Restriction: "Vegan", Hits: 5},
	}, top)
}

func TestAnalyticsService_TopAllTime(t *testing.T) {
	tests := []struct {
		name  string
		seed  map[string]float64
		limit int
		want  []domain.RestrictionHits
	}{
		{
			name:  "ordered by hits",
			seed:  map[string]float64{"Milk": 3, "Gluten-Free": 7},
			limit: 10,
			want: []domain.RestrictionHits{
				{Restriction: "Gluten-Free", Hits: 7},
				{Restriction: "Milk", Hits: 3},
			},
		},
		{name: "no data", limit: 10, want: []domain.RestrictionHits{}},
		{name: "zero limit", seed: map[string]float64{"Milk": 3}, limit: 0, want: []domain.RestrictionHits{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, mr := setupAnalytics(t)
			for member, score := range tt.seed {
				_, err := mr.ZAdd("scan:restrictions:alltime", score, member)
				require.NoError(t, err)
			}

			top, err := svc.TopAllTime(context.Background(), tt.limit)

			require.NoError(t, err)
			assert.Equal(t, tt.want, top)
		})
	}
}

func TestAnalyticsService_TopTodayRedisDown(t *testing.T) {
	svc, _, mr := setupAnalytics(t)
	mr.Close()

	_, err := svc.TopToday(context.Background(), 10)

	assert.Error(t, err)
}

func TestAnalyticsService_RestaurantStats(t *testing.T) {
	ctx := context.Background()

	t.Run("from redis counters", func(t *testing.T) {
		svc, mock, mr := setupAnalytics(t)
		mr.HSet("scan:restaurant:10", "scans", "4", "total_dishes", "32", "flagged_dishes", "8")

		stats, err := svc.RestaurantStats(ctx, 10)

		require.NoError(t, err)
		assert.Equal(t, &domain.ScanStats{
			RestaurantID:  10,
			Scans:         4,
			TotalDishes:   32,
			FlaggedDishes: 8,
			FlaggedRatio:  0.25,
		}, stats)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falls back to postgres", func(t *testing.T) {
		svc, mock, _ := setupAnalytics(t)
		mock.ExpectQuery("SELECT COUNT\\(\\*\\)").
			WithArgs(11).
			WillReturnRows(sqlmock.NewRows([]string{"count", "total", "flagged"}).AddRow(3, 9, 2))

		stats, err := svc.RestaurantStats(ctx, 11)

		require.NoError(t, err)
		assert.Equal(t, 3, stats.Scans)
		assert.InDelta(t, 0.222, stats.FlaggedRatio, 0.0001)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no scans anywhere", func(t *testing.T) {
		svc, mock, _ := setupAnalytics(t)
		mock.ExpectQuery("SELECT COUNT\\(\\*\\)").
			WithArgs(12).
			WillReturnRows(sqlmock.NewRows([]string{"count", "total", "flagged"}).AddRow(0, 0, 0))

		stats, err := svc.RestaurantStats(ctx, 12)

		assert.Nil(t, stats)
		assert.ErrorIs(t, err, service.ErrNoScans)
	})

	t.Run("postgres failure", func(t *testing.T) {
		svc, mock, _ := setupAnalytics(t)
		mock.ExpectQuery("SELECT COUNT\\(\\*\\)").WithArgs(13).WillReturnError(assert.AnError)

		_, err := svc.RestaurantStats(ctx, 13)

		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("redis down still answers from postgres", func(t *testing.T) {
		svc, mock, mr := setupAnalytics(t)
		mr.Close()
		mock.ExpectQuery("SELECT COUNT\\(\\*\\)").
			WithArgs(14).
			WillReturnRows(sqlmock.NewRows([]string{"count", "total", "flagged"}).AddRow(1, 5, 0))

		stats, err := svc.RestaurantStats(ctx, 14)

		require.NoError(t, err)
		assert.Equal(t, float64(0), stats.FlaggedRatio)
	})
}

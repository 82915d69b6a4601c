// Package scankeys names the Redis keys the aggregator writes and the
// analytics service reads.
package scankeys

import (
	"strconv"
	"time"
)

const (
	AllTimeRestrictions = "scan:restrictions:alltime"

	// DailyRetention is how long a daily leaderboard outlives its day.
	DailyRetention = 7 * 24 * time.Hour

	dailyRestrictionsPrefix = "scan:restrictions:daily:"
	restaurantPrefix        = "scan:restaurant:"
)

// Fields of the per-restaurant counter hash.
const (
	FieldScans         = "scans"
	FieldTotalDishes   = "total_dishes"
	FieldFlaggedDishes = "flagged_dishes"
)

func Restaurant(restaurantID int) string {
	return restaurantPrefix + strconv.Itoa(restaurantID)
}

// DailyRestrictions returns the leaderboard key for the UTC day containing t.
func DailyRestrictions(t time.Time) string {
	return dailyRestrictionsPrefix + t.UTC().Format("2006-01-02")
}

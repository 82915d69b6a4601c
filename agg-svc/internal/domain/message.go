package domain

import "time"

const EventMenuScanned = "menu_scanned"

type ScanEvent struct {
	Type            string         `json:"type"`
	RestaurantID    int            `json:"restaurant_id"`
	UserID          string         `json:"user_id"`
	TotalDishes     int            `json:"total_dishes"`
	FlaggedDishes   int            `json:"flagged_dishes"`
	RestrictionHits map[string]int `json:"restriction_hits"`
	Timestamp       time.Time      `json:"timestamp"`
}

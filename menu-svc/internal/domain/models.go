package domain

import (
	"errors"
	"time"

	"dinefine/dietary"
)

var ErrNotFound = errors.New("not found")

type ScanRequest struct {
	Dishes             []dietary.Dish `json:"dishes"`
	Allergies          []string       `json:"allergies"`
	DietaryPreferences []string       `json:"dietary_preferences"`
}

type ScanResponse struct {
	RestaurantID int                `json:"restaurant_id,omitempty"`
	UserID       string             `json:"user_id,omitempty"`
	Results      []dietary.DishScan `json:"results"`
	Summary      dietary.Summary    `json:"summary"`
}

type MenuPayload struct {
	Items []dietary.Dish `json:"items"`
}

type Preferences struct {
	UserID             string   `json:"user_id"`
	Allergies          []string `json:"allergies"`
	DietaryPreferences []string `json:"dietary_preferences"`
}

type ScanEvent struct {
	Type            string         `json:"type"`
	RestaurantID    int            `json:"restaurant_id"`
	UserID          string         `json:"user_id"`
	TotalDishes     int            `json:"total_dishes"`
	FlaggedDishes   int            `json:"flagged_dishes"`
	RestrictionHits map[string]int `json:"restriction_hits"`
	Timestamp       time.Time      `json:"timestamp"`
}

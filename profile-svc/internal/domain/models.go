package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

type Preferences struct {
	UserID             string    `json:"user_id"`
	Allergies          []string  `json:"allergies"`
	DietaryPreferences []string  `json:"dietary_preferences"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type UpdateResponse struct {
	Preferences
	Unrecognized []string `json:"unrecognized"`
}

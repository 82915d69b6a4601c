package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dinefine/profile-svc/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS user_preferences (
			user_id TEXT PRIMARY KEY,
			allergies TEXT[] NOT NULL DEFAULT '{}',
			dietary_preferences TEXT[] NOT NULL DEFAULT '{}',
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure user_preferences schema: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error) {
	prefs := domain.Preferences{UserID: userID}
	err := r.DB.QueryRowContext(ctx, `
		SELECT allergies, dietary_preferences, updated_at
		FROM user_preferences
		WHERE user_id = $1
	`, userID).Scan(pq.Array(&prefs.Allergies), pq.Array(&prefs.DietaryPreferences), &prefs.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *PostgresRepository) UpsertPreferences(ctx context.Context, prefs *domain.Preferences) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO user_preferences (user_id, allergies, dietary_preferences, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id) DO UPDATE
		SET allergies = EXCLUDED.allergies,
			dietary_preferences = EXCLUDED.dietary_preferences,
			updated_at = CURRENT_TIMESTAMP
		RETURNING updated_at
	`, prefs.UserID, pq.Array(prefs.Allergies), pq.Array(prefs.DietaryPreferences)).Scan(&prefs.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert preferences for %s: %w", prefs.UserID, err)
	}
	return nil
}

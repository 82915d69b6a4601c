package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"dinefine/dietary"
	"dinefine/menu-svc/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL,
			position INT NOT NULL,
			dish TEXT NOT NULL,
			ingredients TEXT[] NOT NULL DEFAULT '{}',
			price TEXT,
			calories TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		"CREATE INDEX IF NOT EXISTS idx_menu_items_restaurant ON menu_items (restaurant_id, position)",
	}

	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func (r *PostgresRepository) ReplaceMenu(ctx context.Context, restaurantID int, dishes []dietary.Dish) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM menu_items WHERE restaurant_id = $1", restaurantID); err != nil {
		return fmt.Errorf("failed to clear menu: %w", err)
	}

	for i, d := range dishes {
		ingredients := []string(d.Ingredients)
		if ingredients == nil {
			ingredients = []string{}
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO menu_items (restaurant_id, position, dish, ingredients, price, calories)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, restaurantID, i, d.Name, pq.Array(ingredients), rawText(d.Price), rawText(d.Calories))
		if err != nil {
			return fmt.Errorf("failed to insert dish %q: %w", d.Name, err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) ListMenu(ctx context.Context, restaurantID int) ([]dietary.Dish, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT dish, ingredients, COALESCE(price, ''), COALESCE(calories, '')
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY position
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := []dietary.Dish{}
	for rows.Next() {
		var (
			d           dietary.Dish
			ingredients []sql.NullString
			price       string
			calories    string
		)
		if err := rows.Scan(&d.Name, pq.Array(&ingredients), &price, &calories); err != nil {
			return nil, fmt.Errorf("failed to scan dish for restaurant %d: %w", restaurantID, err)
		}
		d.Ingredients = dietary.Ingredients{}
		for _, ingredient := range ingredients {
			if ingredient.Valid {
				d.Ingredients = append(d.Ingredients, ingredient.String)
			}
		}
		d.Price = rawJSON(price)
		d.Calories = rawJSON(calories)
		dishes = append(dishes, d)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error) {
	prefs := domain.Preferences{UserID: userID}
	err := r.DB.QueryRowContext(ctx, `
		SELECT allergies, dietary_preferences
		FROM user_preferences
		WHERE user_id = $1
	`, userID).Scan(pq.Array(&prefs.Allergies), pq.Array(&prefs.DietaryPreferences))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func rawText(raw json.RawMessage) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func rawJSON(text string) json.RawMessage {
	if text == "" || !json.Valid([]byte(text)) {
		return nil
	}
	return json.RawMessage(text)
}

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/food"
)

// FoodRepository persists per-user custom food overrides. Builtins never
// live here; a row sharing a builtin's ID shadows it, and a deleted row
// hides it.
type FoodRepository struct {
	db *sql.DB
}

// NewFoodRepository creates a new FoodRepository.
func NewFoodRepository(db *sql.DB) *FoodRepository {
	return &FoodRepository{db: db}
}

// Upsert stores a custom food for the user, clearing any previous soft
// delete of the same ID.
func (r *FoodRepository) Upsert(ctx context.Context, userID string, item food.FoodItem) error {
	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	item.Builtin = false
	item.Deleted = false

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal food %s: %w", item.ID, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO custom_foods (id, user_id, food_data, deleted, created_at, updated_at)
		VALUES (?, ?, ?, 0, ?, ?)
		ON CONFLICT (user_id, id) DO UPDATE SET
			food_data = excluded.food_data,
			deleted = 0,
			updated_at = excluded.updated_at`,
		item.ID, userID, string(data), item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save food %s for user %s: %w", item.ID, userID, err)
	}
	return nil
}

// SoftDelete marks a food ID as deleted for the user. Deleting an ID that
// only exists as a builtin writes a tombstone row so the builtin is hidden
// from the merged catalog.
func (r *FoodRepository) SoftDelete(ctx context.Context, userID, foodID string) error {
	now := time.Now().UTC()
	tombstone, err := json.Marshal(food.FoodItem{ID: foodID, Deleted: true, UpdatedAt: now})
	if err != nil {
		return fmt.Errorf("failed to marshal tombstone for food %s: %w", foodID, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO custom_foods (id, user_id, food_data, deleted, created_at, updated_at)
		VALUES (?, ?, ?, 1, ?, ?)
		ON CONFLICT (user_id, id) DO UPDATE SET
			deleted = 1,
			updated_at = excluded.updated_at`,
		foodID, userID, string(tombstone), now, now)
	if err != nil {
		return fmt.Errorf("failed to delete food %s for user %s: %w", foodID, userID, err)
	}
	return nil
}

// List returns every custom row for the user, including soft-deleted
// tombstones with their Deleted flag set, ready to layer over the builtin
// seed via food.MergeCatalog.
func (r *FoodRepository) List(ctx context.Context, userID string) ([]food.FoodItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT food_data, deleted FROM custom_foods WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods for user %s: %w", userID, err)
	}
	defer rows.Close()

	var items []food.FoodItem
	for rows.Next() {
		var data string
		var deleted bool
		if err := rows.Scan(&data, &deleted); err != nil {
			return nil, fmt.Errorf("failed to scan food row: %w", err)
		}

		var item food.FoodItem
		if err := json.Unmarshal([]byte(data), &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal food row: %w", err)
		}
		item.Deleted = deleted
		items = append(items, item)
	}
	return items, rows.Err()
}

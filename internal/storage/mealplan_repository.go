package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/food"
)

// MealPlanRepository persists the per-day meal schedules for each
// (user, cycle length) pair as a single JSON record. Last write wins; there
// are no transactional guarantees across cycle lengths.
type MealPlanRepository struct {
	db *sql.DB
}

// NewMealPlanRepository creates a new MealPlanRepository.
func NewMealPlanRepository(db *sql.DB) *MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// Save stores the day meal plans for the given cycle length. One entry per
// cycle day is expected; every entry is normalized so all slot keys are
// present before writing.
func (r *MealPlanRepository) Save(ctx context.Context, userID string, cycleDays int, days []food.DayMealPlan) error {
	for _, d := range days {
		d.Normalize()
	}
	data, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("failed to marshal meal plans: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO meal_plans (user_id, cycle_days, plan_data, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, cycle_days) DO UPDATE SET
			plan_data = excluded.plan_data,
			updated_at = excluded.updated_at`,
		userID, cycleDays, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save meal plans for user %s: %w", userID, err)
	}
	return nil
}

// Get retrieves the day meal plans for the given cycle length, or (nil, nil)
// when none were saved. Loaded plans are normalized so callers always see
// every slot key.
func (r *MealPlanRepository) Get(ctx context.Context, userID string, cycleDays int) ([]food.DayMealPlan, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT plan_data FROM meal_plans WHERE user_id = ? AND cycle_days = ?`,
		userID, cycleDays).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load meal plans for user %s: %w", userID, err)
	}

	var days []food.DayMealPlan
	if err := json.Unmarshal([]byte(data), &days); err != nil {
		return nil, fmt.Errorf("failed to unmarshal meal plans for user %s: %w", userID, err)
	}
	for _, d := range days {
		d.Normalize()
	}
	return days, nil
}

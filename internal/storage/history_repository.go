package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/plan"
)

// PlanRecord is a stored snapshot of a computed nutrition plan.
type PlanRecord struct {
	ID        int64
	UserID    string
	Plan      plan.NutritionPlan
	CreatedAt time.Time
}

// PlanHistoryRepository appends computed plans so users can review what the
// engine produced for earlier profiles.
type PlanHistoryRepository struct {
	db *sql.DB
}

// NewPlanHistoryRepository creates a new PlanHistoryRepository.
func NewPlanHistoryRepository(db *sql.DB) *PlanHistoryRepository {
	return &PlanHistoryRepository{db: db}
}

// Save inserts a new plan snapshot.
func (r *PlanHistoryRepository) Save(ctx context.Context, userID string, p *plan.NutritionPlan) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO plan_history (user_id, plan_data, created_at)
		VALUES (?, ?, ?)`,
		userID, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save plan history for user %s: %w", userID, err)
	}
	return nil
}

// ListRecent retrieves the N most recent plan snapshots for a given user.
func (r *PlanHistoryRepository) ListRecent(ctx context.Context, userID string, limit int) ([]PlanRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, plan_data, created_at
		FROM plan_history
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list plan history for user %s: %w", userID, err)
	}
	defer rows.Close()

	var records []PlanRecord
	for rows.Next() {
		var rec PlanRecord
		var data string
		if err := rows.Scan(&rec.ID, &rec.UserID, &data, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan plan history row: %w", err)
		}
		if err := json.Unmarshal([]byte(data), &rec.Plan); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stored plan %d: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

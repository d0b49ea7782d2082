package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/plan"
)

// StoredProfile is the persisted form of a plan request. Exactly one of the
// two variants is set, mirroring the engine's tagged input.
type StoredProfile struct {
	FixedTable *plan.FixedTableRequest `json:"fixed_table,omitempty"`
	Adjustable *plan.AdjustableRequest `json:"adjustable,omitempty"`
}

// Request returns the engine request held by the profile.
func (p *StoredProfile) Request() (plan.PlanRequest, error) {
	switch {
	case p.FixedTable != nil && p.Adjustable != nil:
		return nil, fmt.Errorf("profile holds both request variants")
	case p.FixedTable != nil:
		return p.FixedTable, nil
	case p.Adjustable != nil:
		return p.Adjustable, nil
	default:
		return nil, fmt.Errorf("profile holds no request")
	}
}

// ProfileRepository persists one plan request per user.
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Save upserts the user's profile. Last write wins.
func (r *ProfileRepository) Save(ctx context.Context, userID string, profile StoredProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, profile_data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			profile_data = excluded.profile_data,
			updated_at = excluded.updated_at`,
		userID, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save profile for user %s: %w", userID, err)
	}
	return nil
}

// Get retrieves the user's profile, or (nil, nil) when none is stored.
func (r *ProfileRepository) Get(ctx context.Context, userID string) (*StoredProfile, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT profile_data FROM profiles WHERE user_id = ?`, userID).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load profile for user %s: %w", userID, err)
	}

	var profile StoredProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

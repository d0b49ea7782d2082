package app

import (
	"context"
	"fmt"

	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/config"
	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/database"
	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/food"
	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/plan"
	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/storage"
	"github.com/google/uuid"
)

// App holds the application's dependencies and offers the operations both
// binaries share: profile management, plan computation, catalog management,
// and meal-plan aggregation. The engines themselves stay pure; App is where
// persistence meets computation.
type App struct {
	cfg       *config.Config
	db        *database.DB
	profiles  *storage.ProfileRepository
	foods     *storage.FoodRepository
	mealPlans *storage.MealPlanRepository
	history   *storage.PlanHistoryRepository
}

// NewApp creates and initializes a new App instance.
func NewApp(cfg *config.Config, db *database.DB) *App {
	return &App{
		cfg:       cfg,
		db:        db,
		profiles:  storage.NewProfileRepository(db.SQL),
		foods:     storage.NewFoodRepository(db.SQL),
		mealPlans: storage.NewMealPlanRepository(db.SQL),
		history:   storage.NewPlanHistoryRepository(db.SQL),
	}
}

// SaveProfile validates and stores a plan request for the user.
func (a *App) SaveProfile(ctx context.Context, userID string, profile storage.StoredProfile) error {
	req, err := profile.Request()
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}
	return a.profiles.Save(ctx, userID, profile)
}

// ComputePlanForUser loads the user's stored profile, runs the engine, and
// records the result in plan history.
func (a *App) ComputePlanForUser(ctx context.Context, userID string) (*plan.NutritionPlan, error) {
	profile, err := a.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("no profile stored for user %s", userID)
	}

	req, err := profile.Request()
	if err != nil {
		return nil, err
	}
	return a.ComputeAndRecord(ctx, userID, req)
}

// ComputeAndRecord runs the plan engine for an explicit request and appends
// the result to the user's plan history.
func (a *App) ComputeAndRecord(ctx context.Context, userID string, req plan.PlanRequest) (*plan.NutritionPlan, error) {
	p, err := plan.ComputePlan(req)
	if err != nil {
		return nil, err
	}
	if err := a.history.Save(ctx, userID, p); err != nil {
		return nil, fmt.Errorf("plan computed but not recorded: %w", err)
	}
	return p, nil
}

// PlanHistory lists the user's most recent computed plans.
func (a *App) PlanHistory(ctx context.Context, userID string, limit int) ([]storage.PlanRecord, error) {
	return a.history.ListRecent(ctx, userID, limit)
}

// Catalog returns the user's effective food catalog: builtins shadowed by
// custom overrides, minus deletions, sorted by name.
func (a *App) Catalog(ctx context.Context, userID string) ([]food.FoodItem, error) {
	customs, err := a.foods.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return food.MergeCatalog(food.BuiltinFoods(), customs), nil
}

// AddCustomFood stores a custom food, assigning a fresh ID when none is
// given (an explicit ID lets the user override a builtin).
func (a *App) AddCustomFood(ctx context.Context, userID string, item food.FoodItem) (food.FoodItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Name == "" {
		return food.FoodItem{}, &plan.ValidationError{Field: "name", Message: "must not be empty"}
	}
	switch item.ServingUnit {
	case food.Per100g, food.Per100ml, food.PerPiece:
	default:
		return food.FoodItem{}, &plan.ValidationError{Field: "serving_unit", Message: fmt.Sprintf("unknown serving unit %q", item.ServingUnit)}
	}
	if err := a.foods.Upsert(ctx, userID, item); err != nil {
		return food.FoodItem{}, err
	}
	return item, nil
}

// DeleteFood soft-deletes a food for the user; builtins are hidden rather
// than removed.
func (a *App) DeleteFood(ctx context.Context, userID, foodID string) error {
	return a.foods.SoftDelete(ctx, userID, foodID)
}

// SaveMealPlans stores the day meal schedules for a cycle length, stamping
// portions that arrive without IDs.
func (a *App) SaveMealPlans(ctx context.Context, userID string, cycleDays int, days []food.DayMealPlan) error {
	if cycleDays < plan.MinCycleDays || cycleDays > plan.MaxCycleDays {
		return &plan.ValidationError{Field: "cycle_days", Message: fmt.Sprintf("must be between %d and %d", plan.MinCycleDays, plan.MaxCycleDays)}
	}
	if len(days) != cycleDays {
		return &plan.ValidationError{Field: "days", Message: fmt.Sprintf("expected %d day plans, got %d", cycleDays, len(days))}
	}
	for _, d := range days {
		for slot, portions := range d {
			for i, p := range portions {
				if p.ID == "" {
					portions[i].ID = uuid.NewString()
				}
			}
			d[slot] = portions
		}
	}
	return a.mealPlans.Save(ctx, userID, cycleDays, days)
}

// DayTotals aggregates one day of a stored meal plan against the user's
// effective catalog. The day index is 1-based, matching DayPlan numbering.
func (a *App) DayTotals(ctx context.Context, userID string, cycleDays, dayIndex int) (food.MacroProfile, error) {
	days, err := a.mealPlans.Get(ctx, userID, cycleDays)
	if err != nil {
		return food.MacroProfile{}, err
	}
	if dayIndex < 1 || dayIndex > len(days) {
		return food.MacroProfile{}, fmt.Errorf("no meal plan stored for day %d of a %d-day cycle", dayIndex, cycleDays)
	}

	catalog, err := a.Catalog(ctx, userID)
	if err != nil {
		return food.MacroProfile{}, err
	}
	return food.DayTotals(days[dayIndex-1], food.Lookup(catalog)), nil
}

package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/config"
	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/database"
	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/food"
	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/plan"
	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/storage"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewApp(&config.Config{DefaultUserID: "local"}, db)
}

func TestProfileLifecycle(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)

	t.Run("ComputeWithoutProfile", func(t *testing.T) {
		if _, err := a.ComputePlanForUser(ctx, "u1"); err == nil {
			t.Error("Expected error when no profile is stored")
		}
	})

	t.Run("RejectsInvalidProfile", func(t *testing.T) {
		profile := storage.StoredProfile{FixedTable: &plan.FixedTableRequest{
			WeightKg:     500,
			BodyType:     plan.BodyTypeMesomorph,
			ProteinLevel: plan.ProteinBeginner,
			CycleDays:    7,
		}}
		err := a.SaveProfile(ctx, "u1", profile)
		var verr *plan.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
		if verr.Field != "weight_kg" {
			t.Errorf("Expected weight_kg rejection, got field %q", verr.Field)
		}
	})

	t.Run("SaveComputeAndHistory", func(t *testing.T) {
		profile := storage.StoredProfile{FixedTable: &plan.FixedTableRequest{
			WeightKg:     70,
			BodyType:     plan.BodyTypeMesomorph,
			ProteinLevel: plan.ProteinExperienced,
			CycleDays:    7,
		}}
		if err := a.SaveProfile(ctx, "u1", profile); err != nil {
			t.Fatalf("SaveProfile failed: %v", err)
		}

		p, err := a.ComputePlanForUser(ctx, "u1")
		if err != nil {
			t.Fatalf("ComputePlanForUser failed: %v", err)
		}
		if p.CycleDays() != 7 {
			t.Errorf("Expected 7-day plan, got %d", p.CycleDays())
		}
		if p.Summary.DailyProteinGrams != 105 {
			t.Errorf("Expected daily protein 105, got %d", p.Summary.DailyProteinGrams)
		}

		records, err := a.PlanHistory(ctx, "u1", 10)
		if err != nil {
			t.Fatalf("PlanHistory failed: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("Expected 1 history record, got %d", len(records))
		}
		if records[0].Plan.Summary.TotalCaloriesKcal != p.Summary.TotalCaloriesKcal {
			t.Errorf("History record calories %d != computed %d",
				records[0].Plan.Summary.TotalCaloriesKcal, p.Summary.TotalCaloriesKcal)
		}
	})
}

func TestCatalogManagement(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)

	t.Run("StartsWithBuiltins", func(t *testing.T) {
		catalog, err := a.Catalog(ctx, "u1")
		if err != nil {
			t.Fatalf("Catalog failed: %v", err)
		}
		if len(catalog) != len(food.BuiltinFoods()) {
			t.Errorf("Expected %d builtin foods, got %d", len(food.BuiltinFoods()), len(catalog))
		}
	})

	t.Run("AddAssignsID", func(t *testing.T) {
		item, err := a.AddCustomFood(ctx, "u1", food.FoodItem{
			Name:        "Seitan",
			Category:    food.CategoryProtein,
			ServingUnit: food.Per100g,
			Macros:      food.MacroProfile{Carbs: 14, Protein: 25, Fat: 1.9, Calories: 120},
		})
		if err != nil {
			t.Fatalf("AddCustomFood failed: %v", err)
		}
		if item.ID == "" {
			t.Error("Expected a generated ID")
		}
	})

	t.Run("RejectsEmptyName", func(t *testing.T) {
		_, err := a.AddCustomFood(ctx, "u1", food.FoodItem{ServingUnit: food.Per100g})
		if err == nil {
			t.Error("Expected error for empty name")
		}
	})

	t.Run("RejectsUnknownUnit", func(t *testing.T) {
		_, err := a.AddCustomFood(ctx, "u1", food.FoodItem{Name: "X", ServingUnit: "per_cup"})
		if err == nil {
			t.Error("Expected error for unknown serving unit")
		}
	})

	t.Run("DeleteHidesBuiltin", func(t *testing.T) {
		if err := a.DeleteFood(ctx, "u1", "chicken-breast-cooked"); err != nil {
			t.Fatalf("DeleteFood failed: %v", err)
		}
		catalog, err := a.Catalog(ctx, "u1")
		if err != nil {
			t.Fatalf("Catalog failed: %v", err)
		}
		for _, f := range catalog {
			if f.ID == "chicken-breast-cooked" {
				t.Error("Deleted builtin still listed")
			}
		}
	})
}

func TestMealPlanAggregation(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t)

	day := food.NewDayMealPlan()
	day[food.SlotLunch] = []food.MealPortion{
		{FoodID: "brown-rice-cooked", Servings: 1.5},
	}
	days := []food.DayMealPlan{day, food.NewDayMealPlan(), food.NewDayMealPlan()}

	t.Run("RejectsDayCountMismatch", func(t *testing.T) {
		err := a.SaveMealPlans(ctx, "u1", 4, days)
		var verr *plan.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
	})

	t.Run("SaveAndAggregate", func(t *testing.T) {
		if err := a.SaveMealPlans(ctx, "u1", 3, days); err != nil {
			t.Fatalf("SaveMealPlans failed: %v", err)
		}

		totals, err := a.DayTotals(ctx, "u1", 3, 1)
		if err != nil {
			t.Fatalf("DayTotals failed: %v", err)
		}
		want := food.MacroProfile{Carbs: 34.5, Protein: 4.1, Fat: 1.5, Calories: 168}
		if totals != want {
			t.Errorf("Expected day totals %+v, got %+v", want, totals)
		}
	})

	t.Run("EmptyDayIsZero", func(t *testing.T) {
		totals, err := a.DayTotals(ctx, "u1", 3, 2)
		if err != nil {
			t.Fatalf("DayTotals failed: %v", err)
		}
		if totals != (food.MacroProfile{}) {
			t.Errorf("Expected zero totals for empty day, got %+v", totals)
		}
	})

	t.Run("DayIndexOutOfRange", func(t *testing.T) {
		if _, err := a.DayTotals(ctx, "u1", 3, 4); err == nil {
			t.Error("Expected error for out-of-range day index")
		}
	})
}

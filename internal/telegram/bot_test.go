package telegram

import (
	"strings"
	"testing"

	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/plan"
)

func TestFormatPlanMarkdown(t *testing.T) {
	p := &plan.NutritionPlan{
		Summary: plan.PlanSummary{
			TotalCarbsGrams:   541,
			TotalFatGrams:     194,
			DailyProteinGrams: 105,
			TotalCaloriesKcal: 5170,
		},
		DailyPlans: []plan.DayPlan{
			{DayIndex: 1, DayType: plan.DayHigh, CarbsGrams: 306, FatGrams: 33, ProteinGrams: 105, CaloriesKcal: 1941},
			{DayIndex: 2, DayType: plan.DayMedium, CarbsGrams: 143, FatGrams: 51, ProteinGrams: 105, CaloriesKcal: 1451},
			{DayIndex: 3, DayType: plan.DayLow, CarbsGrams: 92, FatGrams: 110, ProteinGrams: 105, CaloriesKcal: 1778},
		},
	}

	out := formatPlanMarkdown(p)

	// Check header
	if !strings.Contains(out, "📅 *Carb Cycling Plan*") {
		t.Error("Missing plan header")
	}

	// Check a day line with macros and derived calories
	if !strings.Contains(out, "*Day 1* (high): 306C / 105P / 33F") {
		t.Error("Missing or malformed day line")
	}
	if !strings.Contains(out, "1941 kcal") {
		t.Error("Missing day calories")
	}

	// Check the totals line
	if !strings.Contains(out, "541g carbs, 194g fat, 105g protein/day, 5170 kcal") {
		t.Error("Missing totals line")
	}

	// No TDEE target set, so no TDEE line
	if strings.Contains(out, "TDEE") {
		t.Error("TDEE line present without a target")
	}
}

func TestFormatPlanMarkdownWithTDEE(t *testing.T) {
	p := &plan.NutritionPlan{
		Summary: plan.PlanSummary{TDEEKcal: 2759},
		DailyPlans: []plan.DayPlan{
			{DayIndex: 1, DayType: plan.DayHigh, CarbsGrams: 240, FatGrams: 48, ProteinGrams: 144, CaloriesKcal: 1968},
		},
	}

	if out := formatPlanMarkdown(p); !strings.Contains(out, "*TDEE:* 2759 kcal") {
		t.Error("Missing TDEE line")
	}
}

func TestParsePlanArgs(t *testing.T) {
	t.Run("PresetLevel", func(t *testing.T) {
		req, err := parsePlanArgs([]string{"80", "mesomorph", "experienced", "7"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.WeightKg != 80 || req.BodyType != plan.BodyTypeMesomorph || req.ProteinLevel != plan.ProteinExperienced || req.CycleDays != 7 {
			t.Errorf("unexpected request: %+v", req)
		}
	})

	t.Run("NumericProtein", func(t *testing.T) {
		req, err := parsePlanArgs([]string{"80", "endomorph", "1.8", "5"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.ProteinLevel != plan.ProteinCustom || req.ProteinPerKg != 1.8 {
			t.Errorf("numeric protein not mapped to custom level: %+v", req)
		}
	})

	t.Run("BadWeight", func(t *testing.T) {
		if _, err := parsePlanArgs([]string{"heavy", "mesomorph", "beginner", "7"}); err == nil {
			t.Error("expected error for non-numeric weight")
		}
	})

	t.Run("BadProtein", func(t *testing.T) {
		if _, err := parsePlanArgs([]string{"80", "mesomorph", "lots", "7"}); err == nil {
			t.Error("expected error for unparseable protein argument")
		}
	})
}

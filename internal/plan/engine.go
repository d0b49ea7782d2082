package plan

import (
	"fmt"
	"math"
)

// Calorie factors per gram of macronutrient.
const (
	carbKcalPerGram    = 4
	proteinKcalPerGram = 4
	fatKcalPerGram     = 9
)

// DayPlan is the macro allocation for a single day of the cycle.
type DayPlan struct {
	DayIndex     int     `json:"day_index"`
	DayType      DayType `json:"day_type"`
	CarbsGrams   int     `json:"carbs_grams"`
	FatGrams     int     `json:"fat_grams"`
	ProteinGrams int     `json:"protein_grams"`
	CaloriesKcal int     `json:"calories_kcal"`
}

// PlanSummary holds the cycle-wide totals. TotalCaloriesKcal is the exact
// sum of the per-day calorie figures, not a re-derivation from the weekly
// gram totals. TDEEKcal is only populated for adjustable requests that
// carry a TDEE target.
type PlanSummary struct {
	TotalCarbsGrams   int `json:"total_carbs_grams"`
	TotalFatGrams     int `json:"total_fat_grams"`
	DailyProteinGrams int `json:"daily_protein_grams"`
	TotalCaloriesKcal int `json:"total_calories_kcal"`
	TDEEKcal          int `json:"tdee_kcal,omitempty"`
}

// NutritionPlan is the full output of the plan engine.
type NutritionPlan struct {
	Summary    PlanSummary `json:"summary"`
	DailyPlans []DayPlan   `json:"daily_plans"`
}

// CycleDays returns the number of days covered by the plan.
func (p *NutritionPlan) CycleDays() int {
	return len(p.DailyPlans)
}

// ComputePlan derives a day-by-day macro schedule from the request. It is a
// pure function: same input, same output, no I/O. The request is validated
// before any arithmetic runs.
func ComputePlan(req PlanRequest) (*NutritionPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	switch r := req.(type) {
	case *FixedTableRequest:
		return computeFixedTable(r), nil
	case *AdjustableRequest:
		return computeAdjustable(r), nil
	default:
		return nil, fmt.Errorf("unsupported plan request type %T", req)
	}
}

func computeFixedTable(r *FixedTableRequest) *NutritionPlan {
	coef := bodyTypeTable[r.BodyType]

	dailyCarbs := r.WeightKg * coef.CarbPerKg
	dailyFat := r.WeightKg * coef.FatPerKg
	dailyProtein := r.WeightKg * r.proteinPerKg()

	weeklyCarbs := dailyCarbs * float64(r.CycleDays)
	weeklyFat := dailyFat * float64(r.CycleDays)

	// Protein is rounded once and reused identically on every day.
	proteinGrams := roundInt(dailyProtein)

	alloc := dayAllocationTable[r.CycleDays]
	buckets := []struct {
		dayType DayType
		count   int
	}{
		{DayHigh, alloc.High},
		{DayMedium, alloc.Medium},
		{DayLow, alloc.Low},
	}

	days := make([]DayPlan, 0, r.CycleDays)
	for _, b := range buckets {
		share := cycleDistribution[b.dayType]
		// Each day's grams are rounded from the unrounded weekly totals,
		// not from a pre-rounded weekly figure, to keep rounding error
		// from compounding.
		carbsGrams := roundInt(weeklyCarbs * share.Carb / float64(b.count))
		fatGrams := roundInt(weeklyFat * share.Fat / float64(b.count))
		for i := 0; i < b.count; i++ {
			days = append(days, newDayPlan(len(days)+1, b.dayType, carbsGrams, fatGrams, proteinGrams))
		}
	}

	return &NutritionPlan{
		Summary: PlanSummary{
			TotalCarbsGrams:   roundInt(weeklyCarbs),
			TotalFatGrams:     roundInt(weeklyFat),
			DailyProteinGrams: proteinGrams,
			TotalCaloriesKcal: sumCalories(days),
		},
		DailyPlans: days,
	}
}

func computeAdjustable(r *AdjustableRequest) *NutritionPlan {
	proteinGrams := roundInt(r.WeightKg * r.ProteinPerKg)

	highCarbs := roundInt(r.WeightKg * r.HighCarbPerKg)
	highFat := roundInt(r.WeightKg * r.HighFatPerKg)
	lowCarbs := roundInt(r.WeightKg * r.LowCarbPerKg)
	lowFat := roundInt(r.WeightKg * r.LowFatPerKg)

	cycleDays := r.HighDays + r.LowDays
	days := make([]DayPlan, 0, cycleDays)
	for i := 0; i < r.HighDays; i++ {
		days = append(days, newDayPlan(len(days)+1, DayHigh, highCarbs, highFat, proteinGrams))
	}
	for i := 0; i < r.LowDays; i++ {
		days = append(days, newDayPlan(len(days)+1, DayLow, lowCarbs, lowFat, proteinGrams))
	}

	weeklyCarbs := r.WeightKg * (r.HighCarbPerKg*float64(r.HighDays) + r.LowCarbPerKg*float64(r.LowDays))
	weeklyFat := r.WeightKg * (r.HighFatPerKg*float64(r.HighDays) + r.LowFatPerKg*float64(r.LowDays))

	summary := PlanSummary{
		TotalCarbsGrams:   roundInt(weeklyCarbs),
		TotalFatGrams:     roundInt(weeklyFat),
		DailyProteinGrams: proteinGrams,
		TotalCaloriesKcal: sumCalories(days),
	}
	if r.Target != nil {
		// Validate has already checked the target, so the factor resolves.
		factor, _ := ResolveActivityFactor(r.Target.ActivityLevel, r.Target.ActivityFactor)
		bmr := ComputeBMR(r.Target.Sex, r.Target.Age, r.Target.HeightCm, r.WeightKg)
		summary.TDEEKcal = ComputeTDEE(bmr, factor)
	}

	return &NutritionPlan{Summary: summary, DailyPlans: days}
}

func newDayPlan(index int, dayType DayType, carbs, fat, protein int) DayPlan {
	return DayPlan{
		DayIndex:     index,
		DayType:      dayType,
		CarbsGrams:   carbs,
		FatGrams:     fat,
		ProteinGrams: protein,
		CaloriesKcal: DayCalories(carbs, fat, protein),
	}
}

// DayCalories derives a day's calorie figure from its rounded gram values,
// so the displayed number is always reproducible from the displayed grams.
func DayCalories(carbsGrams, fatGrams, proteinGrams int) int {
	return carbsGrams*carbKcalPerGram + fatGrams*fatKcalPerGram + proteinGrams*proteinKcalPerGram
}

func sumCalories(days []DayPlan) int {
	total := 0
	for _, d := range days {
		total += d.CaloriesKcal
	}
	return total
}

// roundInt rounds half away from zero, the behavior the plan figures were
// calibrated against.
func roundInt(v float64) int {
	return int(math.Round(v))
}

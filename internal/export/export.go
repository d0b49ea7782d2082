// Package export renders computed nutrition plans as Markdown and CSV.
// Both formats carry every per-day and summary field so a plan can be
// reconstructed from the export.
package export

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/plan"
)

// MarkdownPlan renders the plan as a Markdown table followed by a summary
// block.
func MarkdownPlan(p *plan.NutritionPlan) string {
	var sb strings.Builder
	sb.WriteString("# Carb Cycling Plan\n\n")
	sb.WriteString("| Day | Type | Carbs (g) | Protein (g) | Fat (g) | Calories |\n")
	sb.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, d := range p.DailyPlans {
		sb.WriteString(fmt.Sprintf("| %d | %s | %d | %d | %d | %d |\n",
			d.DayIndex, d.DayType, d.CarbsGrams, d.ProteinGrams, d.FatGrams, d.CaloriesKcal))
	}

	sb.WriteString("\n## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- Total carbs: %d g\n", p.Summary.TotalCarbsGrams))
	sb.WriteString(fmt.Sprintf("- Total fat: %d g\n", p.Summary.TotalFatGrams))
	sb.WriteString(fmt.Sprintf("- Daily protein: %d g\n", p.Summary.DailyProteinGrams))
	sb.WriteString(fmt.Sprintf("- Total calories: %d kcal\n", p.Summary.TotalCaloriesKcal))
	if p.Summary.TDEEKcal > 0 {
		sb.WriteString(fmt.Sprintf("- TDEE: %d kcal\n", p.Summary.TDEEKcal))
	}
	return sb.String()
}

// CSVPlan renders the plan as CSV: a header, one row per day, and a final
// summary row.
func CSVPlan(p *plan.NutritionPlan) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"day_index", "day_type", "carbs_grams", "protein_grams", "fat_grams", "calories_kcal"}); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, d := range p.DailyPlans {
		row := []string{
			strconv.Itoa(d.DayIndex),
			string(d.DayType),
			strconv.Itoa(d.CarbsGrams),
			strconv.Itoa(d.ProteinGrams),
			strconv.Itoa(d.FatGrams),
			strconv.Itoa(d.CaloriesKcal),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row for day %d: %w", d.DayIndex, err)
		}
	}

	summary := []string{
		"summary",
		"",
		strconv.Itoa(p.Summary.TotalCarbsGrams),
		strconv.Itoa(p.Summary.DailyProteinGrams),
		strconv.Itoa(p.Summary.TotalFatGrams),
		strconv.Itoa(p.Summary.TotalCaloriesKcal),
	}
	if err := w.Write(summary); err != nil {
		return "", fmt.Errorf("failed to write CSV summary row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return sb.String(), nil
}

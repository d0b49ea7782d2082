package food

import "math"

// MacroProfile is a derived macro/calorie total: grams to one decimal,
// calories to the whole kcal. It is always recomputed from source data,
// never stored as independent truth.
type MacroProfile struct {
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Calories int     `json:"calories"`
}

// round1 rounds to one decimal, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to two decimals, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// roundKcal rounds a calorie figure to the whole kcal.
func roundKcal(v float64) int {
	return int(math.Round(v))
}

// macroAccumulator folds MacroProfiles with rounding applied at every
// accumulation step. The running rounding is intentional: stored meal-plan
// totals are defined in terms of it, at the cost of strict
// order-independence at the sub-gram level. Do not replace with unrounded
// summation.
type macroAccumulator struct {
	total MacroProfile
}

func (a *macroAccumulator) add(p MacroProfile) {
	a.total.Carbs = round1(a.total.Carbs + p.Carbs)
	a.total.Protein = round1(a.total.Protein + p.Protein)
	a.total.Fat = round1(a.total.Fat + p.Fat)
	a.total.Calories += p.Calories
}

package food

// MealSlot identifies one of the fixed meal slots of a day.
type MealSlot string

const (
	SlotBreakfast    MealSlot = "breakfast"
	SlotMorningSnack MealSlot = "morning_snack"
	SlotLunch        MealSlot = "lunch"
	SlotPreWorkout   MealSlot = "pre_workout"
	SlotPostWorkout  MealSlot = "post_workout"
	SlotDinner       MealSlot = "dinner"
	SlotEveningSnack MealSlot = "evening_snack"
)

// MealSlots lists every slot in display order.
var MealSlots = []MealSlot{
	SlotBreakfast,
	SlotMorningSnack,
	SlotLunch,
	SlotPreWorkout,
	SlotPostWorkout,
	SlotDinner,
	SlotEveningSnack,
}

// MealPortion is a food reference plus a serving multiplier. FoodID is a
// weak reference: it is resolved through a lookup at aggregation time, and
// a dangling reference degrades to zero macros rather than failing.
type MealPortion struct {
	ID       string  `json:"id"`
	FoodID   string  `json:"food_id"`
	Servings float64 `json:"servings"`
	Note     string  `json:"note,omitempty"`
}

// DayMealPlan maps every meal slot to its portion list. Every slot key is
// always present, possibly with an empty list.
type DayMealPlan map[MealSlot][]MealPortion

// NewDayMealPlan returns a plan with all slots present and empty.
func NewDayMealPlan() DayMealPlan {
	p := make(DayMealPlan, len(MealSlots))
	for _, slot := range MealSlots {
		p[slot] = []MealPortion{}
	}
	return p
}

// Normalize fills in any missing slot keys without touching existing ones.
func (p DayMealPlan) Normalize() {
	for _, slot := range MealSlots {
		if _, ok := p[slot]; !ok {
			p[slot] = []MealPortion{}
		}
	}
}

// PortionMacros scales a food's per-serving macros by the serving count.
// Negative servings are clamped to zero so a portion can never contribute
// negative macros.
func PortionMacros(f FoodItem, servings float64) MacroProfile {
	if servings < 0 {
		servings = 0
	}
	return MacroProfile{
		Carbs:    round1(f.Macros.Carbs * servings),
		Protein:  round1(f.Macros.Protein * servings),
		Fat:      round1(f.Macros.Fat * servings),
		Calories: roundKcal(float64(f.Macros.Calories) * servings),
	}
}

// SlotTotals folds PortionMacros over a slot's portions. Portions whose
// FoodID does not resolve contribute zero and never abort the fold.
func SlotTotals(portions []MealPortion, lookup map[string]FoodItem) MacroProfile {
	var acc macroAccumulator
	for _, p := range portions {
		f, ok := lookup[p.FoodID]
		if !ok {
			continue
		}
		acc.add(PortionMacros(f, p.Servings))
	}
	return acc.total
}

// DayTotals folds SlotTotals across all meal slots, in slot order, with the
// same incremental rounding as the per-slot fold.
func DayTotals(day DayMealPlan, lookup map[string]FoodItem) MacroProfile {
	var acc macroAccumulator
	for _, slot := range MealSlots {
		acc.add(SlotTotals(day[slot], lookup))
	}
	return acc.total
}

// AmountToServings converts a user-facing amount (grams, milliliters, or
// pieces depending on the unit) to a serving multiplier, rounded to two
// decimals.
func AmountToServings(amount float64, unit ServingUnit) float64 {
	switch unit {
	case Per100g, Per100ml:
		return round2(amount / 100)
	default:
		return round2(amount)
	}
}

// ServingsToAmount is the inverse of AmountToServings: it renders a stored
// serving multiplier back as an editable amount.
func ServingsToAmount(servings float64, unit ServingUnit) float64 {
	switch unit {
	case Per100g, Per100ml:
		return round2(servings * 100)
	default:
		return round2(servings)
	}
}

package plan

import (
	"fmt"
	"math"
)

// ComputeBMR computes the basal metabolic rate via Mifflin-St Jeor:
// 10*weight + 6.25*height - 5*age, plus 5 for males or minus 161 for
// females. The result is rounded to the nearest kcal.
func ComputeBMR(sex Sex, age int, heightCm, weightKg float64) int {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(math.Round(bmr))
}

// ComputeTDEE scales a BMR by an activity multiplier. A non-positive factor
// yields zero rather than propagating a meaningless figure.
func ComputeTDEE(bmr int, activityFactor float64) int {
	if activityFactor <= 0 {
		return 0
	}
	return int(math.Round(float64(bmr) * activityFactor))
}

// ResolveActivityFactor returns the numeric multiplier for a named activity
// level, or the direct factor when no level name is given. Exactly one of
// the two forms must be usable.
func ResolveActivityFactor(level string, direct float64) (float64, error) {
	if level != "" {
		mult, ok := ActivityMultipliers[level]
		if !ok {
			return 0, &ValidationError{Field: "activity_level", Message: fmt.Sprintf("unknown activity level %q", level)}
		}
		return mult, nil
	}
	if direct <= 0 {
		return 0, &ValidationError{Field: "activity_factor", Message: "must be greater than 0"}
	}
	return direct, nil
}

package plan

import "fmt"

// ValidationError reports a request field that is outside its documented
// bounds. The engine rejects invalid requests before computing anything.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// PlanRequest is the tagged input variant for ComputePlan. The two
// implementations select the plan-generation strategy: the fixed
// table-driven model or the user-adjustable two-bucket model.
type PlanRequest interface {
	Validate() error
	planRequest()
}

// FixedTableRequest derives the macro schedule from the body-type and
// cycle-distribution tables: three day types whose counts are driven by the
// cycle length.
type FixedTableRequest struct {
	WeightKg     float64      `json:"weight_kg"`
	BodyType     BodyType     `json:"body_type"`
	ProteinLevel ProteinLevel `json:"protein_level"`
	// ProteinPerKg is only consulted when ProteinLevel is "custom".
	ProteinPerKg float64 `json:"protein_per_kg,omitempty"`
	CycleDays    int     `json:"cycle_days"`
}

func (r *FixedTableRequest) planRequest() {}

func (r *FixedTableRequest) Validate() error {
	if r.WeightKg < MinWeightKg || r.WeightKg > MaxWeightKg {
		return &ValidationError{Field: "weight_kg", Message: fmt.Sprintf("must be between %.0f and %.0f kg", MinWeightKg, MaxWeightKg)}
	}
	if _, ok := bodyTypeTable[r.BodyType]; !ok {
		return &ValidationError{Field: "body_type", Message: fmt.Sprintf("unknown body type %q", r.BodyType)}
	}
	switch r.ProteinLevel {
	case ProteinBeginner, ProteinExperienced:
	case ProteinCustom:
		if r.ProteinPerKg < MinProteinPerKg || r.ProteinPerKg > MaxProteinPerKg {
			return &ValidationError{Field: "protein_per_kg", Message: fmt.Sprintf("must be between %.1f and %.1f g/kg", MinProteinPerKg, MaxProteinPerKg)}
		}
	default:
		return &ValidationError{Field: "protein_level", Message: fmt.Sprintf("unknown protein level %q", r.ProteinLevel)}
	}
	if _, ok := dayAllocationTable[r.CycleDays]; !ok {
		return &ValidationError{Field: "cycle_days", Message: fmt.Sprintf("must be between %d and %d", MinCycleDays, MaxCycleDays)}
	}
	return nil
}

// proteinPerKg resolves the effective protein coefficient for the request.
// Only valid after Validate has passed.
func (r *FixedTableRequest) proteinPerKg() float64 {
	if r.ProteinLevel == ProteinCustom {
		return r.ProteinPerKg
	}
	return proteinLevelTable[r.ProteinLevel]
}

// AdjustableRequest is the two-bucket model: the user sets the high/low day
// counts and the per-day-type g/kg coefficients directly, with an optional
// TDEE context for delta-vs-target reporting.
type AdjustableRequest struct {
	WeightKg      float64 `json:"weight_kg"`
	HighDays      int     `json:"high_days"`
	LowDays       int     `json:"low_days"`
	HighCarbPerKg float64 `json:"high_carb_per_kg"`
	HighFatPerKg  float64 `json:"high_fat_per_kg"`
	LowCarbPerKg  float64 `json:"low_carb_per_kg"`
	LowFatPerKg   float64 `json:"low_fat_per_kg"`
	ProteinPerKg  float64 `json:"protein_per_kg"`
	// Target, when set, adds a TDEE figure to the plan summary so callers
	// can report per-day surplus/deficit.
	Target *TDEETarget `json:"target,omitempty"`
}

// TDEETarget carries the profile fields needed for the auxiliary BMR/TDEE
// computation. Either ActivityLevel (a named multiplier) or ActivityFactor
// (a direct numeric multiplier) must be supplied.
type TDEETarget struct {
	Sex            Sex     `json:"sex"`
	Age            int     `json:"age"`
	HeightCm       float64 `json:"height_cm"`
	ActivityLevel  string  `json:"activity_level,omitempty"`
	ActivityFactor float64 `json:"activity_factor,omitempty"`
}

func (r *AdjustableRequest) planRequest() {}

func (r *AdjustableRequest) Validate() error {
	if r.WeightKg < MinWeightKg || r.WeightKg > MaxWeightKg {
		return &ValidationError{Field: "weight_kg", Message: fmt.Sprintf("must be between %.0f and %.0f kg", MinWeightKg, MaxWeightKg)}
	}
	if r.HighDays < 1 {
		return &ValidationError{Field: "high_days", Message: "must be at least 1"}
	}
	if r.LowDays < 1 {
		return &ValidationError{Field: "low_days", Message: "must be at least 1"}
	}
	if total := r.HighDays + r.LowDays; total < MinCycleDays || total > MaxCycleDays {
		return &ValidationError{Field: "cycle_days", Message: fmt.Sprintf("high + low days must be between %d and %d", MinCycleDays, MaxCycleDays)}
	}
	for _, c := range []struct {
		field string
		value float64
	}{
		{"high_carb_per_kg", r.HighCarbPerKg},
		{"high_fat_per_kg", r.HighFatPerKg},
		{"low_carb_per_kg", r.LowCarbPerKg},
		{"low_fat_per_kg", r.LowFatPerKg},
	} {
		if c.value <= 0 || c.value > maxMacroPerKg {
			return &ValidationError{Field: c.field, Message: fmt.Sprintf("must be between 0 and %.0f g/kg", maxMacroPerKg)}
		}
	}
	if r.ProteinPerKg < MinProteinPerKg || r.ProteinPerKg > MaxProteinPerKg {
		return &ValidationError{Field: "protein_per_kg", Message: fmt.Sprintf("must be between %.1f and %.1f g/kg", MinProteinPerKg, MaxProteinPerKg)}
	}
	if r.Target != nil {
		if err := r.Target.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (t *TDEETarget) validate() error {
	if t.Sex != SexMale && t.Sex != SexFemale {
		return &ValidationError{Field: "sex", Message: fmt.Sprintf("unknown sex %q", t.Sex)}
	}
	if t.Age < MinAge || t.Age > MaxAge {
		return &ValidationError{Field: "age", Message: fmt.Sprintf("must be between %d and %d", MinAge, MaxAge)}
	}
	if t.HeightCm < MinHeightCm || t.HeightCm > MaxHeightCm {
		return &ValidationError{Field: "height_cm", Message: fmt.Sprintf("must be between %.0f and %.0f cm", MinHeightCm, MaxHeightCm)}
	}
	if _, err := ResolveActivityFactor(t.ActivityLevel, t.ActivityFactor); err != nil {
		return err
	}
	return nil
}

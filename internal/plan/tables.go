package plan

// BodyType classifies the user's somatotype for coefficient lookup.
type BodyType string

const (
	BodyTypeEndomorph BodyType = "endomorph"
	BodyTypeMesomorph BodyType = "mesomorph"
	BodyTypeEctomorph BodyType = "ectomorph"
)

// ProteinLevel selects a preset protein coefficient, or "custom" for a
// user-supplied value.
type ProteinLevel string

const (
	ProteinBeginner    ProteinLevel = "beginner"
	ProteinExperienced ProteinLevel = "experienced"
	ProteinCustom      ProteinLevel = "custom"
)

// DayType is the carb-cycling bucket a day belongs to.
type DayType string

const (
	DayHigh   DayType = "high"
	DayMedium DayType = "medium"
	DayLow    DayType = "low"
)

// Sex is used by the Mifflin-St Jeor BMR formula.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

type bodyTypeCoefficients struct {
	CarbPerKg float64
	FatPerKg  float64
}

// bodyTypeTable maps each somatotype to its daily carb/fat grams per kg of
// body weight.
var bodyTypeTable = map[BodyType]bodyTypeCoefficients{
	BodyTypeEndomorph: {CarbPerKg: 2.0, FatPerKg: 1.0},
	BodyTypeMesomorph: {CarbPerKg: 2.5, FatPerKg: 0.9},
	BodyTypeEctomorph: {CarbPerKg: 3.0, FatPerKg: 1.1},
}

// proteinLevelTable maps preset training levels to protein grams per kg.
var proteinLevelTable = map[ProteinLevel]float64{
	ProteinBeginner:    0.8,
	ProteinExperienced: 1.5,
}

type bucketShare struct {
	Carb float64
	Fat  float64
}

// cycleDistribution assigns each day-type bucket its fraction of the weekly
// carb and fat totals. High-carb days are low-fat days and vice versa, which
// keeps daily calories roughly level while shifting composition.
var cycleDistribution = map[DayType]bucketShare{
	DayHigh:   {Carb: 0.50, Fat: 0.15},
	DayMedium: {Carb: 0.35, Fat: 0.35},
	DayLow:    {Carb: 0.15, Fat: 0.50},
}

type dayAllocation struct {
	High   int
	Medium int
	Low    int
}

// dayAllocationTable maps a cycle length to the number of days of each type.
// The three counts always sum to the cycle length and every bucket gets at
// least one day. Cycle lengths outside 3..7 are rejected by validation.
var dayAllocationTable = map[int]dayAllocation{
	3: {High: 1, Medium: 1, Low: 1},
	4: {High: 1, Medium: 2, Low: 1},
	5: {High: 1, Medium: 2, Low: 2},
	6: {High: 2, Medium: 2, Low: 2},
	7: {High: 2, Medium: 3, Low: 2},
}

// ActivityMultipliers maps activity level names to their TDEE multiplier.
// This is the single source of truth for valid activity levels, also used
// for input validation at the CLI and bot boundaries.
var ActivityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// MinCycleDays and MaxCycleDays bound the supported cycle lengths.
const (
	MinCycleDays = 3
	MaxCycleDays = 7
)

// Documented input bounds for plan requests.
const (
	MinWeightKg     = 30.0
	MaxWeightKg     = 200.0
	MinHeightCm     = 100.0
	MaxHeightCm     = 250.0
	MinAge          = 10
	MaxAge          = 120
	MinProteinPerKg = 0.8
	MaxProteinPerKg = 2.0
	maxMacroPerKg   = 10.0
)

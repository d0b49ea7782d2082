package food

import (
	"sort"
	"time"
)

// Category groups foods for display.
type Category string

const (
	CategoryGrains    Category = "grains"
	CategoryProtein   Category = "protein"
	CategoryVegetable Category = "vegetable"
	CategoryFruit     Category = "fruit"
	CategoryDairy     Category = "dairy"
	CategoryFats      Category = "fats"
	CategorySnack     Category = "snack"
)

// ServingUnit declares what one "serving" of a food's macro figures covers.
type ServingUnit string

const (
	Per100g   ServingUnit = "per_100g"
	Per100ml  ServingUnit = "per_100ml"
	PerPiece  ServingUnit = "per_piece"
)

// Preparation states whether the macro figures refer to the raw or cooked
// weight of the food.
type Preparation string

const (
	PreparationRaw    Preparation = "raw"
	PreparationCooked Preparation = "cooked"
)

// FoodItem is a catalog entry. A custom item may override a builtin by
// sharing its ID; a Deleted item hides both itself and any builtin it
// shadows.
type FoodItem struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Category       Category     `json:"category"`
	DefaultServing string       `json:"default_serving,omitempty"`
	ServingUnit    ServingUnit  `json:"serving_unit"`
	Macros         MacroProfile `json:"macros"`
	Preparation    Preparation  `json:"preparation,omitempty"`
	Builtin        bool         `json:"builtin,omitempty"`
	Deleted        bool         `json:"deleted,omitempty"`
	CreatedAt      time.Time    `json:"created_at,omitempty"`
	UpdatedAt      time.Time    `json:"updated_at,omitempty"`
}

// MergeCatalog produces the effective catalog: builtins shadowed by any
// same-ID custom override, plus custom-only entries, minus anything flagged
// deleted, sorted by display name. The seed list is never mutated.
func MergeCatalog(builtins, customs []FoodItem) []FoodItem {
	byID := make(map[string]FoodItem, len(builtins)+len(customs))
	for _, f := range builtins {
		byID[f.ID] = f
	}
	for _, f := range customs {
		byID[f.ID] = f
	}

	merged := make([]FoodItem, 0, len(byID))
	for _, f := range byID {
		if f.Deleted {
			continue
		}
		merged = append(merged, f)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Name < merged[j].Name })
	return merged
}

// Lookup indexes a catalog by ID for portion resolution.
func Lookup(items []FoodItem) map[string]FoodItem {
	m := make(map[string]FoodItem, len(items))
	for _, f := range items {
		m[f.ID] = f
	}
	return m
}

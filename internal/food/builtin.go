package food

// builtinFoods is the immutable seed catalog. Macro figures are per 100 g /
// 100 ml / piece as declared by each item's serving unit. Never mutated;
// user overrides are layered on top via MergeCatalog.
var builtinFoods = []FoodItem{
	{ID: "oats-raw", Name: "Oats", Category: CategoryGrains, ServingUnit: Per100g, Preparation: PreparationRaw, Builtin: true,
		Macros: MacroProfile{Carbs: 66.3, Protein: 16.9, Fat: 6.9, Calories: 389}},
	{ID: "brown-rice-cooked", Name: "Brown Rice", Category: CategoryGrains, ServingUnit: Per100g, Preparation: PreparationCooked, Builtin: true,
		Macros: MacroProfile{Carbs: 23, Protein: 2.7, Fat: 1, Calories: 112}},
	{ID: "white-rice-cooked", Name: "White Rice", Category: CategoryGrains, ServingUnit: Per100g, Preparation: PreparationCooked, Builtin: true,
		Macros: MacroProfile{Carbs: 28.2, Protein: 2.7, Fat: 0.3, Calories: 130}},
	{ID: "sweet-potato-cooked", Name: "Sweet Potato", Category: CategoryGrains, ServingUnit: Per100g, Preparation: PreparationCooked, Builtin: true,
		Macros: MacroProfile{Carbs: 20.7, Protein: 1.6, Fat: 0.1, Calories: 90}},
	{ID: "pasta-cooked", Name: "Pasta", Category: CategoryGrains, ServingUnit: Per100g, Preparation: PreparationCooked, Builtin: true,
		Macros: MacroProfile{Carbs: 30.9, Protein: 5.8, Fat: 0.9, Calories: 158}},
	{ID: "chicken-breast-cooked", Name: "Chicken Breast", Category: CategoryProtein, ServingUnit: Per100g, Preparation: PreparationCooked, Builtin: true,
		Macros: MacroProfile{Carbs: 0, Protein: 31, Fat: 3.6, Calories: 165}},
	{ID: "lean-beef-cooked", Name: "Lean Beef", Category: CategoryProtein, ServingUnit: Per100g, Preparation: PreparationCooked, Builtin: true,
		Macros: MacroProfile{Carbs: 0, Protein: 26.1, Fat: 11.8, Calories: 217}},
	{ID: "salmon-cooked", Name: "Salmon", Category: CategoryProtein, ServingUnit: Per100g, Preparation: PreparationCooked, Builtin: true,
		Macros: MacroProfile{Carbs: 0, Protein: 25.4, Fat: 12.4, Calories: 206}},
	{ID: "egg", Name: "Egg", Category: CategoryProtein, ServingUnit: PerPiece, DefaultServing: "1 large egg (50 g)", Builtin: true,
		Macros: MacroProfile{Carbs: 0.4, Protein: 6.3, Fat: 4.8, Calories: 72}},
	{ID: "whey-scoop", Name: "Whey Protein", Category: CategoryProtein, ServingUnit: PerPiece, DefaultServing: "1 scoop (30 g)", Builtin: true,
		Macros: MacroProfile{Carbs: 3, Protein: 24, Fat: 1.5, Calories: 120}},
	{ID: "tofu", Name: "Tofu", Category: CategoryProtein, ServingUnit: Per100g, Preparation: PreparationRaw, Builtin: true,
		Macros: MacroProfile{Carbs: 1.9, Protein: 8.1, Fat: 4.8, Calories: 76}},
	{ID: "broccoli-raw", Name: "Broccoli", Category: CategoryVegetable, ServingUnit: Per100g, Preparation: PreparationRaw, Builtin: true,
		Macros: MacroProfile{Carbs: 6.6, Protein: 2.8, Fat: 0.4, Calories: 34}},
	{ID: "spinach-raw", Name: "Spinach", Category: CategoryVegetable, ServingUnit: Per100g, Preparation: PreparationRaw, Builtin: true,
		Macros: MacroProfile{Carbs: 3.6, Protein: 2.9, Fat: 0.4, Calories: 23}},
	{ID: "banana", Name: "Banana", Category: CategoryFruit, ServingUnit: PerPiece, DefaultServing: "1 medium (118 g)", Builtin: true,
		Macros: MacroProfile{Carbs: 27, Protein: 1.3, Fat: 0.4, Calories: 105}},
	{ID: "apple", Name: "Apple", Category: CategoryFruit, ServingUnit: PerPiece, DefaultServing: "1 medium (182 g)", Builtin: true,
		Macros: MacroProfile{Carbs: 25.1, Protein: 0.5, Fat: 0.3, Calories: 95}},
	{ID: "blueberries", Name: "Blueberries", Category: CategoryFruit, ServingUnit: Per100g, Preparation: PreparationRaw, Builtin: true,
		Macros: MacroProfile{Carbs: 14.5, Protein: 0.7, Fat: 0.3, Calories: 57}},
	{ID: "greek-yogurt", Name: "Greek Yogurt", Category: CategoryDairy, ServingUnit: Per100g, Builtin: true,
		Macros: MacroProfile{Carbs: 3.6, Protein: 10.2, Fat: 0.4, Calories: 59}},
	{ID: "whole-milk", Name: "Whole Milk", Category: CategoryDairy, ServingUnit: Per100ml, Builtin: true,
		Macros: MacroProfile{Carbs: 4.8, Protein: 3.2, Fat: 3.3, Calories: 61}},
	{ID: "olive-oil", Name: "Olive Oil", Category: CategoryFats, ServingUnit: Per100ml, Builtin: true,
		Macros: MacroProfile{Carbs: 0, Protein: 0, Fat: 100, Calories: 884}},
	{ID: "almonds", Name: "Almonds", Category: CategoryFats, ServingUnit: Per100g, Preparation: PreparationRaw, Builtin: true,
		Macros: MacroProfile{Carbs: 21.6, Protein: 21.2, Fat: 49.9, Calories: 579}},
	{ID: "peanut-butter", Name: "Peanut Butter", Category: CategoryFats, ServingUnit: Per100g, Builtin: true,
		Macros: MacroProfile{Carbs: 20, Protein: 25.1, Fat: 50.4, Calories: 588}},
	{ID: "avocado", Name: "Avocado", Category: CategoryFats, ServingUnit: PerPiece, DefaultServing: "1 medium (150 g)", Builtin: true,
		Macros: MacroProfile{Carbs: 12.8, Protein: 3, Fat: 22, Calories: 240}},
	{ID: "rice-cake", Name: "Rice Cake", Category: CategorySnack, ServingUnit: PerPiece, DefaultServing: "1 cake (9 g)", Builtin: true,
		Macros: MacroProfile{Carbs: 7.3, Protein: 0.7, Fat: 0.3, Calories: 35}},
	{ID: "dark-chocolate", Name: "Dark Chocolate", Category: CategorySnack, ServingUnit: Per100g, Builtin: true,
		Macros: MacroProfile{Carbs: 45.9, Protein: 7.8, Fat: 43.1, Calories: 598}},
}

// BuiltinFoods returns a copy of the seed catalog so callers cannot mutate
// the process-wide list.
func BuiltinFoods() []FoodItem {
	out := make([]FoodItem, len(builtinFoods))
	copy(out, builtinFoods)
	return out
}

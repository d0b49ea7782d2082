package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/app"
	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/config"
	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/database"
	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/export"
	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/food"
	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/plan"
	"github.com/Andy8647/CarbCyclingWeb-sub000/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	application := app.NewApp(cfg, db)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "plan":
		runPlan(ctx, application, cfg, os.Args[2:])
	case "adjust":
		runAdjust(ctx, application, cfg, os.Args[2:])
	case "tdee":
		runTDEE(os.Args[2:])
	case "foods":
		runFoods(ctx, application, cfg, os.Args[2:])
	case "day":
		runDay(ctx, application, cfg, os.Args[2:])
	case "history":
		runHistory(ctx, application, cfg, os.Args[2:])
	case "export":
		runExport(ctx, application, cfg, os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: carbcycle <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  plan      Compute a plan from the fixed body-type table")
	fmt.Println("  adjust    Compute a plan from per-bucket g/kg values")
	fmt.Println("  tdee      Compute BMR and TDEE")
	fmt.Println("  foods     List, add or delete catalog foods")
	fmt.Println("  day       Show aggregated macros for one cycle day")
	fmt.Println("  history   Show recently computed plans")
	fmt.Println("  export    Export the current plan as markdown or CSV")
}

func runPlan(ctx context.Context, application *app.App, cfg *config.Config, args []string) {
	planCmd := flag.NewFlagSet("plan", flag.ExitOnError)
	weight := planCmd.Float64("weight", 0, "Body weight in kg")
	bodyType := planCmd.String("body", "", "Body type: endomorph, mesomorph or ectomorph")
	protein := planCmd.String("protein", "beginner", "Protein level (beginner, experienced, custom)")
	proteinPerKg := planCmd.Float64("protein-per-kg", 0, "Protein g/kg, used with -protein=custom")
	days := planCmd.Int("days", 7, "Cycle length in days (3-7)")
	save := planCmd.Bool("save", true, "Save the request as the user profile")
	planCmd.Parse(args)

	req := &plan.FixedTableRequest{
		WeightKg:     *weight,
		BodyType:     plan.BodyType(*bodyType),
		ProteinLevel: plan.ProteinLevel(*protein),
		ProteinPerKg: *proteinPerKg,
		CycleDays:    *days,
	}

	computeAndPrint(ctx, application, cfg, req, *save)
}

func runAdjust(ctx context.Context, application *app.App, cfg *config.Config, args []string) {
	adjustCmd := flag.NewFlagSet("adjust", flag.ExitOnError)
	weight := adjustCmd.Float64("weight", 0, "Body weight in kg")
	highDays := adjustCmd.Int("high-days", 2, "Number of high-carb days")
	lowDays := adjustCmd.Int("low-days", 5, "Number of low-carb days")
	highCarb := adjustCmd.Float64("high-carb", 0, "High-day carbs in g/kg")
	highFat := adjustCmd.Float64("high-fat", 0, "High-day fat in g/kg")
	lowCarb := adjustCmd.Float64("low-carb", 0, "Low-day carbs in g/kg")
	lowFat := adjustCmd.Float64("low-fat", 0, "Low-day fat in g/kg")
	proteinPerKg := adjustCmd.Float64("protein-per-kg", 0, "Protein in g/kg, same every day")
	sex := adjustCmd.String("sex", "", "Sex for the optional TDEE target (male or female)")
	age := adjustCmd.Int("age", 0, "Age for the optional TDEE target")
	height := adjustCmd.Float64("height", 0, "Height in cm for the optional TDEE target")
	activity := adjustCmd.String("activity", "", "Activity level for the optional TDEE target")
	save := adjustCmd.Bool("save", true, "Save the request as the user profile")
	adjustCmd.Parse(args)

	req := &plan.AdjustableRequest{
		WeightKg:      *weight,
		HighDays:      *highDays,
		LowDays:       *lowDays,
		HighCarbPerKg: *highCarb,
		HighFatPerKg:  *highFat,
		LowCarbPerKg:  *lowCarb,
		LowFatPerKg:   *lowFat,
		ProteinPerKg:  *proteinPerKg,
	}
	if *sex != "" {
		req.Target = &plan.TDEETarget{
			Sex:           plan.Sex(*sex),
			Age:           *age,
			HeightCm:      *height,
			ActivityLevel: *activity,
		}
	}

	computeAndPrint(ctx, application, cfg, req, *save)
}

func computeAndPrint(ctx context.Context, application *app.App, cfg *config.Config, req plan.PlanRequest, save bool) {
	if save {
		profile := storedProfileFor(req)
		if err := application.SaveProfile(ctx, cfg.DefaultUserID, profile); err != nil {
			log.Fatalf("Failed to save profile: %v", err)
		}
	}

	p, err := application.ComputeAndRecord(ctx, cfg.DefaultUserID, req)
	if err != nil {
		log.Fatalf("Failed to compute plan: %v", err)
	}
	fmt.Print(export.MarkdownPlan(p))
}

func storedProfileFor(req plan.PlanRequest) storage.StoredProfile {
	switch r := req.(type) {
	case *plan.FixedTableRequest:
		return storage.StoredProfile{FixedTable: r}
	case *plan.AdjustableRequest:
		return storage.StoredProfile{Adjustable: r}
	default:
		return storage.StoredProfile{}
	}
}

func runTDEE(args []string) {
	tdeeCmd := flag.NewFlagSet("tdee", flag.ExitOnError)
	sex := tdeeCmd.String("sex", "", "male or female")
	age := tdeeCmd.Int("age", 0, "Age in years")
	height := tdeeCmd.Float64("height", 0, "Height in cm")
	weight := tdeeCmd.Float64("weight", 0, "Weight in kg")
	activity := tdeeCmd.String("activity", "sedentary", "Activity level")
	factor := tdeeCmd.Float64("factor", 0, "Direct activity factor, overrides -activity")
	tdeeCmd.Parse(args)

	f, err := plan.ResolveActivityFactor(*activity, *factor)
	if err != nil {
		log.Fatalf("Failed to resolve activity factor: %v", err)
	}

	bmr := plan.ComputeBMR(plan.Sex(*sex), *age, *height, *weight)
	fmt.Printf("BMR:  %d kcal\nTDEE: %d kcal\n", bmr, plan.ComputeTDEE(bmr, f))
}

func runFoods(ctx context.Context, application *app.App, cfg *config.Config, args []string) {
	foodsCmd := flag.NewFlagSet("foods", flag.ExitOnError)
	add := foodsCmd.Bool("add", false, "Add or override a catalog food")
	del := foodsCmd.String("delete", "", "Delete the food with this ID")
	id := foodsCmd.String("id", "", "Food ID (optional on -add, generated when empty)")
	name := foodsCmd.String("name", "", "Food name")
	category := foodsCmd.String("category", "", "Food category")
	unit := foodsCmd.String("unit", string(food.Per100g), "Serving unit: per_100g, per_100ml or per_piece")
	carbs := foodsCmd.Float64("carbs", 0, "Carbs per serving in grams")
	proteinG := foodsCmd.Float64("protein", 0, "Protein per serving in grams")
	fat := foodsCmd.Float64("fat", 0, "Fat per serving in grams")
	kcal := foodsCmd.Int("kcal", 0, "Calories per serving")
	foodsCmd.Parse(args)

	switch {
	case *del != "":
		if err := application.DeleteFood(ctx, cfg.DefaultUserID, *del); err != nil {
			log.Fatalf("Failed to delete food: %v", err)
		}
		fmt.Printf("Deleted %s\n", *del)
	case *add:
		item, err := application.AddCustomFood(ctx, cfg.DefaultUserID, food.FoodItem{
			ID:          *id,
			Name:        *name,
			Category:    food.Category(*category),
			ServingUnit: food.ServingUnit(*unit),
			Macros: food.MacroProfile{
				Carbs:    *carbs,
				Protein:  *proteinG,
				Fat:      *fat,
				Calories: *kcal,
			},
		})
		if err != nil {
			log.Fatalf("Failed to add food: %v", err)
		}
		fmt.Printf("Saved %s (%s)\n", item.Name, item.ID)
	default:
		catalog, err := application.Catalog(ctx, cfg.DefaultUserID)
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
		for _, f := range catalog {
			fmt.Printf("%-24s %-12s %6.1fC %6.1fP %6.1fF %5d kcal  %s\n",
				f.ID, f.Category, f.Macros.Carbs, f.Macros.Protein, f.Macros.Fat, f.Macros.Calories, f.ServingUnit)
		}
	}
}

func runDay(ctx context.Context, application *app.App, cfg *config.Config, args []string) {
	dayCmd := flag.NewFlagSet("day", flag.ExitOnError)
	days := dayCmd.Int("days", 7, "Cycle length the meal plan was saved under")
	index := dayCmd.Int("day", 1, "Day to aggregate, 1-based")
	dayCmd.Parse(args)

	totals, err := application.DayTotals(ctx, cfg.DefaultUserID, *days, *index)
	if err != nil {
		log.Fatalf("Failed to compute day totals: %v", err)
	}
	fmt.Printf("Day %d totals: %.1fg carbs, %.1fg protein, %.1fg fat, %d kcal\n",
		*index, totals.Carbs, totals.Protein, totals.Fat, totals.Calories)
}

func runHistory(ctx context.Context, application *app.App, cfg *config.Config, args []string) {
	historyCmd := flag.NewFlagSet("history", flag.ExitOnError)
	limit := historyCmd.Int("limit", 10, "Number of records to show")
	historyCmd.Parse(args)

	records, err := application.PlanHistory(ctx, cfg.DefaultUserID, *limit)
	if err != nil {
		log.Fatalf("Failed to load history: %v", err)
	}
	for _, r := range records {
		fmt.Printf("%s  %d-day plan, %d kcal/cycle\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Plan.CycleDays(), r.Plan.Summary.TotalCaloriesKcal)
	}
}

func runExport(ctx context.Context, application *app.App, cfg *config.Config, args []string) {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	format := exportCmd.String("format", "markdown", "Output format: markdown or csv")
	exportCmd.Parse(args)

	p, err := application.ComputePlanForUser(ctx, cfg.DefaultUserID)
	if err != nil {
		log.Fatalf("Failed to compute plan from saved profile: %v", err)
	}

	switch *format {
	case "markdown", "md":
		fmt.Print(export.MarkdownPlan(p))
	case "csv":
		out, err := export.CSVPlan(p)
		if err != nil {
			log.Fatalf("Failed to render CSV: %v", err)
		}
		fmt.Print(out)
	default:
		log.Fatalf("Unknown export format %q", *format)
	}
}

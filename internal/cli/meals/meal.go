package meals

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/julianstephens/fitfinder/internal/cli"
	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/export"
	"github.com/julianstephens/fitfinder/internal/meal"
	"github.com/julianstephens/fitfinder/internal/models"
	"github.com/julianstephens/fitfinder/internal/validation"
)

type MealCmd struct {
	Targets   MealTargetsCmd   `cmd:"" help:"Compute BMR, TDEE and the daily calorie target."`
	Plan      MealPlanCmd      `cmd:"" help:"Generate a weekly meal plan."`
	List      MealListCmd      `cmd:"" help:"List saved meal plans." default:"1"`
	Show      MealShowCmd      `cmd:"" help:"Show a saved meal plan."`
	Delete    MealDeleteCmd    `cmd:"" help:"Delete a saved meal plan."`
	Export    MealExportCmd    `cmd:"" help:"Export a saved meal plan as JSON or XLSX."`
	Groceries MealGroceriesCmd `cmd:"" help:"Show the weekly grocery list of a saved plan."`
}

// ProfileFlags are the body measurements and preferences shared by the
// targets and plan commands.
type ProfileFlags struct {
	Age      int     `help:"Age in years." default:"25"`
	Gender   string  `help:"male or female." default:"male" enum:"male,female"`
	Weight   float64 `help:"Body weight in kg." default:"70"`
	Height   float64 `help:"Height in cm." default:"175"`
	Activity string  `help:"sedentary, light, moderate, active or very_active." default:"moderate"`
	Goal     string  `help:"lose, maintain or gain." default:"maintain"`
	Diet     string  `help:"veg, nonveg or both (defaults to the diet setting)."`
	Cuisine  string  `help:"indian, western or any (defaults to the cuisine setting)."`
}

// resolve fills diet and cuisine from settings and validates the result
func (p ProfileFlags) resolve(ctx *cli.Context) (meal.Profile, models.MealPlanInputs, error) {
	settings, err := ctx.Repo.LoadSettings()
	if err != nil {
		return meal.Profile{}, models.MealPlanInputs{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if p.Diet == "" {
		p.Diet = settings.Diet
	}
	if p.Cuisine == "" {
		p.Cuisine = settings.Cuisine
	}

	result := validation.New().ValidateMealProfile(validation.MealProfile{
		Age:      p.Age,
		Gender:   p.Gender,
		WeightKg: p.Weight,
		HeightCm: p.Height,
		Activity: p.Activity,
		Goal:     constants.MealGoal(p.Goal),
		Diet:     p.Diet,
		Cuisine:  p.Cuisine,
	})
	if err := result.Err(); err != nil {
		return meal.Profile{}, models.MealPlanInputs{}, err
	}

	profile := meal.Profile{
		Age:      p.Age,
		Gender:   p.Gender,
		WeightKg: p.Weight,
		HeightCm: p.Height,
		Activity: p.Activity,
		Goal:     constants.MealGoal(p.Goal),
	}
	return profile, profile.Inputs(p.Diet, p.Cuisine), nil
}

type MealTargetsCmd struct {
	ProfileFlags `embed:""`
}

func (c *MealTargetsCmd) Run(ctx *cli.Context) error {
	profile, _, err := c.resolve(ctx)
	if err != nil {
		return err
	}
	t := meal.ComputeTargets(profile)
	ctx.Printf("BMR:            %d kcal\n", t.BMR)
	ctx.Printf("TDEE:           %d kcal\n", t.TDEE)
	ctx.Printf("Calorie target: %d kcal (%s)\n", t.CalorieTarget, profile.Goal)

	fractions := meal.FractionsFor(profile.Goal)
	for _, slot := range constants.MealOrder {
		ctx.Printf("  %-10s %4.0f kcal\n", slot, float64(t.CalorieTarget)*fractions[slot])
	}
	return nil
}

type MealPlanCmd struct {
	ProfileFlags `embed:""`

	Seed *uint64 `help:"Fixed seed for a reproducible plan."`
	Save bool    `help:"Save the plan (the 12 most recent plans are kept)."`
	Name string  `help:"Name for the saved plan." default:"My Weekly Plan"`
}

func (c *MealPlanCmd) Run(ctx *cli.Context) error {
	profile, inputs, err := c.resolve(ctx)
	if err != nil {
		return err
	}
	targets := meal.ComputeTargets(profile)

	seed := rand.Uint64()
	if c.Seed != nil {
		seed = *c.Seed
	}
	plan := meal.BuildWeekly(meal.Request{
		CalorieTarget: targets.CalorieTarget,
		Goal:          profile.Goal,
		Diet:          inputs.Diet,
		Cuisine:       inputs.Cuisine,
		Seed:          seed,
	})

	ctx.Printf("Target %d kcal/day (seed %d)\n", targets.CalorieTarget, seed)
	printPlan(ctx, plan)

	if c.Save {
		saved := meal.NewSavedPlan(c.Name, inputs, targets.CalorieTarget, plan, ctx.Clock())
		if _, err := ctx.Repo.SaveMealPlan(saved); err != nil {
			return fmt.Errorf("failed to save meal plan: %w", err)
		}
		ctx.Printf("\n✓ Saved %q (ID: %s)\n", saved.Name, saved.ID)
	}
	return nil
}

func printPlan(ctx *cli.Context, plan models.WeeklyMealPlan) {
	for _, day := range plan.Days() {
		ctx.Printf("\n%s (%d kcal)\n", day, plan.DayKcal(day))
		for _, slot := range plan[day] {
			ctx.Printf("  %-10s %5d kcal  ", slot.MealName, slot.Kcal)
			if len(slot.Items) == 0 {
				ctx.Println("-")
				continue
			}
			for i, it := range slot.Items {
				if i > 0 {
					ctx.Printf(", ")
				}
				if it.Portions > 1 {
					ctx.Printf("%d× ", it.Portions)
				}
				ctx.Printf("%s", it.Food.Name)
			}
			ctx.Println()
		}
	}
}

type MealListCmd struct{}

func (c *MealListCmd) Run(ctx *cli.Context) error {
	plans, err := ctx.Repo.LoadMealPlans()
	if err != nil {
		return fmt.Errorf("failed to load meal plans: %w", err)
	}
	if len(plans) == 0 {
		ctx.Println("No saved meal plans")
		return nil
	}
	ctx.Printf("Saved meal plans (%d of %d kept):\n", len(plans), constants.MaxSavedMealPlans)
	for _, p := range plans {
		ctx.Printf("  %s  %-24s %5d kcal  %s\n", shortID(p.ID), p.Name, p.CalorieTarget, p.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

type MealShowCmd struct {
	ID string `arg:"" help:"Plan ID or unique ID prefix."`
}

func (c *MealShowCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Repo.GetMealPlan(c.ID)
	if err != nil {
		return err
	}
	ctx.Printf("%s (target %d kcal/day, %s, %s, %s)\n", p.Name, p.CalorieTarget, p.Inputs.Goal, p.Inputs.Diet, p.Inputs.Cuisine)
	printPlan(ctx, p.WeeklyPlan)
	return nil
}

type MealDeleteCmd struct {
	ID string `arg:"" help:"Plan ID or unique ID prefix."`
}

func (c *MealDeleteCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Repo.GetMealPlan(c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Repo.DeleteMealPlan(p.ID); err != nil {
		return fmt.Errorf("failed to delete meal plan: %w", err)
	}
	ctx.Printf("✓ Deleted %q\n", p.Name)
	return nil
}

type MealExportCmd struct {
	ID   string `arg:"" help:"Plan ID or unique ID prefix."`
	Dir  string `help:"Directory to write the export to." type:"path" default:"."`
	XLSX bool   `help:"Write an XLSX workbook with a grocery sheet instead of JSON." name:"xlsx"`
}

func (c *MealExportCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Repo.GetMealPlan(c.ID)
	if err != nil {
		return err
	}
	doc := export.FromSaved(p)

	if c.XLSX {
		path := filepath.Join(c.Dir, export.MealPlanFileName(p.Name, ".xlsx"))
		f, err := export.MealPlanWorkbook(doc, meal.Aggregate(p.WeeklyPlan))
		if err != nil {
			return fmt.Errorf("failed to build workbook: %w", err)
		}
		defer f.Close()
		if err := f.SaveAs(path); err != nil {
			return fmt.Errorf("failed to save workbook: %w", err)
		}
		ctx.Printf("✓ Exported to %s\n", path)
		return nil
	}

	path := filepath.Join(c.Dir, export.MealPlanFileName(p.Name, ".json"))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := export.MealPlan(f, doc); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	ctx.Printf("✓ Exported to %s\n", path)
	return nil
}

type MealGroceriesCmd struct {
	ID string `arg:"" help:"Plan ID or unique ID prefix."`
}

func (c *MealGroceriesCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Repo.GetMealPlan(c.ID)
	if err != nil {
		return err
	}
	items := meal.Aggregate(p.WeeklyPlan)
	if len(items) == 0 {
		ctx.Println("Grocery list is empty")
		return nil
	}
	ctx.Printf("Grocery list for %s:\n", p.Name)
	for _, it := range items {
		ctx.Printf("  %-26s %3d × %s\n", it.Name, it.Qty, it.Portion)
	}
	return nil
}

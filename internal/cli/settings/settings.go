package settings

import (
	"fmt"
	"strings"

	"github.com/julianstephens/fitfinder/internal/cli"
	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/models"
	"github.com/julianstephens/fitfinder/internal/routine"
	"github.com/julianstephens/fitfinder/internal/validation"
)

type SettingsCmd struct {
	List  bool `help:"List current settings."`
	Reset bool `help:"Restore the default settings."`

	PageSize    *int    `help:"Catalog results revealed per page." name:"page-size"`
	DefaultGoal *string `help:"Goal used when a routine is generated without --goal." name:"default-goal"`
	Days        *int    `help:"Default training days per week."`
	Weeks       *int    `help:"Default routine length in weeks."`
	Equipment   *string `help:"Default available equipment, comma separated."`
	Diet        *string `help:"Meal diet preference (veg, nonveg, both)."`
	Cuisine     *string `help:"Meal cuisine preference (indian, western, any)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Repo.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		printSettings(ctx, settings.WithDefaults())
		return nil
	}

	if c.Reset {
		if err := ctx.Repo.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		ctx.Println("Settings reset to defaults.")
		return nil
	}

	updated := false
	if c.PageSize != nil {
		if *c.PageSize < 1 {
			return fmt.Errorf("%w: page size must be at least 1", validation.ErrInvalidInput)
		}
		settings.PageSize = *c.PageSize
		updated = true
	}
	if c.DefaultGoal != nil {
		settings.DefaultGoal = constants.Goal(strings.TrimSpace(*c.DefaultGoal))
		updated = true
	}
	if c.Days != nil {
		settings.DefaultDaysPerWeek = *c.Days
		updated = true
	}
	if c.Weeks != nil {
		settings.DefaultDurationWeeks = *c.Weeks
		updated = true
	}
	if c.Equipment != nil {
		settings.DefaultEquipment = routine.ParseEquipment(*c.Equipment)
		updated = true
	}
	if c.Diet != nil {
		settings.Diet = strings.ToLower(strings.TrimSpace(*c.Diet))
		updated = true
	}
	if c.Cuisine != nil {
		settings.Cuisine = strings.ToLower(strings.TrimSpace(*c.Cuisine))
		updated = true
	}

	if !updated {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	settings = settings.WithDefaults()
	if err := validateSettings(settings); err != nil {
		return err
	}
	if err := ctx.Repo.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Println("Settings updated successfully.")
	return nil
}

func validateSettings(s models.Settings) error {
	v := validation.New()
	res := v.ValidateRoutineRequest(s.DefaultGoal, s.DefaultDurationWeeks, s.DefaultDaysPerWeek)
	if err := res.Err(); err != nil {
		return err
	}
	// Only diet and cuisine matter here; the body fields are fixed.
	res = v.ValidateMealProfile(validation.MealProfile{
		Age:      30,
		Gender:   "male",
		WeightKg: 70,
		HeightCm: 175,
		Activity: constants.ActivityModerate,
		Goal:     constants.MealGoalMaintain,
		Diet:     s.Diet,
		Cuisine:  s.Cuisine,
	})
	return res.Err()
}

func printSettings(ctx *cli.Context, s models.Settings) {
	equipment := "(none)"
	if len(s.DefaultEquipment) > 0 {
		equipment = strings.Join(s.DefaultEquipment, ", ")
	}
	ctx.Println("Current Settings:")
	ctx.Printf("  Page Size:         %d\n", s.PageSize)
	ctx.Println("\nRoutine Defaults:")
	ctx.Printf("  Goal:              %s\n", s.DefaultGoal)
	ctx.Printf("  Days Per Week:     %d\n", s.DefaultDaysPerWeek)
	ctx.Printf("  Duration:          %d weeks\n", s.DefaultDurationWeeks)
	ctx.Printf("  Equipment:         %s\n", equipment)
	ctx.Println("\nMeal Preferences:")
	ctx.Printf("  Diet:              %s\n", s.Diet)
	ctx.Printf("  Cuisine:           %s\n", s.Cuisine)
}

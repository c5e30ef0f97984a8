package routines

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/fitfinder/internal/cli"
	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/export"
	"github.com/julianstephens/fitfinder/internal/logger"
	"github.com/julianstephens/fitfinder/internal/models"
	"github.com/julianstephens/fitfinder/internal/routine"
	"github.com/julianstephens/fitfinder/internal/validation"
)

type RoutineCmd struct {
	Generate RoutineGenerateCmd `cmd:"" help:"Generate a new routine and keep it as the last routine."`
	Show     RoutineShowCmd     `cmd:"" help:"Show the last generated routine." default:"1"`
	Export   RoutineExportCmd   `cmd:"" help:"Export the last routine as JSON or XLSX."`
	Clear    RoutineClearCmd    `cmd:"" help:"Forget the last routine."`
}

type RoutineGenerateCmd struct {
	Goal      string  `help:"Training goal: muscle-gain, strength, endurance or fat-loss." short:"g"`
	Weeks     int     `help:"Routine length in weeks."`
	Days      int     `help:"Training days per week."`
	Equipment *string `help:"Comma-separated equipment you have; empty means bodyweight or anything." short:"e"`
	Seed      *uint64 `help:"Fixed seed for a reproducible routine."`
	Export    string  `help:"Also write the routine to this directory." type:"path"`
	Quiet     bool    `help:"Only print the summary." short:"q"`
}

func (c *RoutineGenerateCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Repo.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	goal := constants.Goal(c.Goal)
	if goal == "" {
		goal = settings.DefaultGoal
	}
	weeks := c.Weeks
	if weeks == 0 {
		weeks = settings.DefaultDurationWeeks
	}
	days := c.Days
	if days == 0 {
		days = settings.DefaultDaysPerWeek
	}
	equipment := settings.DefaultEquipment
	if c.Equipment != nil {
		equipment = routine.ParseEquipment(*c.Equipment)
	}

	result := validation.New().ValidateRoutineRequest(goal, weeks, days)
	if err := result.Err(); err != nil {
		return err
	}

	seed := routine.RandomSeed()
	if c.Seed != nil {
		seed = routine.FixedSeed(*c.Seed)
	}

	cat, err := ctx.Catalog()
	if err != nil {
		return err
	}
	gen := routine.NewGenerator(cat.All())
	r := gen.Generate(routine.Request{
		Goal:          goal,
		DurationWeeks: weeks,
		DaysPerWeek:   days,
		Equipment:     equipment,
		Seed:          seed,
	})

	if err := ctx.Repo.SaveLastRoutine(r); err != nil {
		return fmt.Errorf("failed to save routine: %w", err)
	}

	if c.Quiet {
		printSummary(ctx, r)
	} else {
		printRoutine(ctx, r, 0)
	}

	if c.Export != "" {
		path := filepath.Join(c.Export, export.RoutineFileName(r, ".json"))
		if err := writeJSON(path, r); err != nil {
			return err
		}
		ctx.Printf("\n✓ Exported to %s\n", path)
	}
	return nil
}

func printSummary(ctx *cli.Context, r models.Routine) {
	ctx.Printf("%s routine: %d weeks × %d days, %d exercise prescriptions\n",
		r.Goal, r.DurationWeeks, r.DaysPerWeek, r.TotalExercises())
}

// printRoutine prints one week, or all of them when week is 0
func printRoutine(ctx *cli.Context, r models.Routine, week int) {
	printSummary(ctx, r)
	for wi, w := range r.Weeks {
		if week != 0 && wi+1 != week {
			continue
		}
		ctx.Printf("\nWeek %d\n", wi+1)
		for _, day := range w {
			ctx.Printf("  %s\n", day.Name)
			if len(day.Exercises) == 0 {
				ctx.Println("    (no matching exercises)")
				continue
			}
			for _, ex := range day.Exercises {
				ctx.Printf("    %-32s %d × %-6s rest %ds  [%s]\n", ex.Name, ex.Sets, ex.Reps, ex.RestSeconds, strings.Join(ex.Equipment, ", "))
			}
		}
	}
}

type RoutineShowCmd struct {
	Week int `help:"Only show this week (1-based)." short:"w"`
}

func (c *RoutineShowCmd) Run(ctx *cli.Context) error {
	r, err := ctx.Repo.LoadLastRoutine()
	if err != nil {
		return fmt.Errorf("failed to load routine: %w", err)
	}
	if r == nil {
		ctx.Println("No routine yet. Use 'fitfinder routine generate' to create one.")
		return nil
	}
	if c.Week < 0 || c.Week > len(r.Weeks) {
		return fmt.Errorf("%w: week must be between 1 and %d", validation.ErrInvalidInput, len(r.Weeks))
	}
	printRoutine(ctx, *r, c.Week)
	return nil
}

type RoutineExportCmd struct {
	Dir  string `help:"Directory to write the export to." type:"path" default:"."`
	XLSX bool   `help:"Write an XLSX workbook instead of JSON." name:"xlsx"`
}

func (c *RoutineExportCmd) Run(ctx *cli.Context) error {
	r, err := ctx.Repo.LoadLastRoutine()
	if err != nil {
		return fmt.Errorf("failed to load routine: %w", err)
	}
	if r == nil {
		return fmt.Errorf("no routine to export, run 'fitfinder routine generate' first")
	}

	if c.XLSX {
		path := filepath.Join(c.Dir, export.RoutineFileName(*r, ".xlsx"))
		f, err := export.RoutineWorkbook(*r)
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

	path := filepath.Join(c.Dir, export.RoutineFileName(*r, ".json"))
	if err := writeJSON(path, *r); err != nil {
		return err
	}
	ctx.Printf("✓ Exported to %s\n", path)
	return nil
}

func writeJSON(path string, r models.Routine) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := export.Routine(f, r); err != nil {
		f.Close()
		return err
	}
	logger.Debug("Exported routine", "path", path)
	return f.Close()
}

type RoutineClearCmd struct{}

func (c *RoutineClearCmd) Run(ctx *cli.Context) error {
	if err := ctx.Repo.ClearLastRoutine(); err != nil {
		return fmt.Errorf("failed to clear routine: %w", err)
	}
	ctx.Println("✓ Last routine cleared")
	return nil
}

package workouts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/fitfinder/internal/cli"
	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/export"
	"github.com/julianstephens/fitfinder/internal/models"
	"github.com/julianstephens/fitfinder/internal/workoutlog"
)

type LogCmd struct {
	Add    LogAddCmd    `cmd:"" help:"Log a performed exercise."`
	List   LogListCmd   `cmd:"" help:"List logged workouts, newest first." default:"1"`
	Delete LogDeleteCmd `cmd:"" help:"Delete a logged workout."`
	Export LogExportCmd `cmd:"" help:"Export the workout log as JSON."`
}

type LogAddCmd struct {
	Date     string   `help:"Workout date (YYYY-MM-DD, defaults to today)."`
	Exercise string   `help:"Exercise name." required:"" short:"x"`
	Notes    string   `help:"Free-form notes."`
	Set      []string `help:"A set as reps:weight, reps or :weight (repeatable)." short:"s"`
}

func (c *LogAddCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = ctx.Clock().Format(constants.DateFormat)
	}
	sets := make([]workoutlog.SetInput, len(c.Set))
	for i, s := range c.Set {
		sets[i] = workoutlog.ParseSet(s)
	}

	entry, err := workoutlog.NewEntry(date, c.Exercise, c.Notes, sets)
	if err != nil {
		return err
	}

	stored, err := ctx.Repo.LoadWorkouts()
	if err != nil {
		return fmt.Errorf("failed to load workouts: %w", err)
	}
	log, err := workoutlog.New(stored).Save(entry)
	if err != nil {
		return err
	}
	if err := ctx.Repo.SaveWorkouts(log.Entries()); err != nil {
		return fmt.Errorf("failed to save workout: %w", err)
	}

	ctx.Printf("✓ Logged %s on %s (%d sets)\n", entry.Exercise, entry.Date, len(entry.Sets))
	return nil
}

type LogListCmd struct {
	Limit   int    `help:"Maximum entries to show (0 for all)." default:"20"`
	Search  string `help:"Only show entries whose exercise contains this text."`
	ShowIDs bool   `help:"Show workout IDs." name:"show-ids"`
}

func (c *LogListCmd) Run(ctx *cli.Context) error {
	stored, err := ctx.Repo.LoadWorkouts()
	if err != nil {
		return fmt.Errorf("failed to load workouts: %w", err)
	}
	entries := workoutlog.New(stored).Entries()

	if q := strings.ToLower(strings.TrimSpace(c.Search)); q != "" {
		var matched []models.WorkoutLogEntry
		for _, e := range entries {
			if strings.Contains(strings.ToLower(e.Exercise), q) {
				matched = append(matched, e)
			}
		}
		entries = matched
	}
	if len(entries) == 0 {
		ctx.Println("No workouts logged")
		return nil
	}

	ctx.Println("Workouts:")
	for i, e := range entries {
		if c.Limit > 0 && i == c.Limit {
			ctx.Printf("\n… %d entries total, use --limit 0 to show all\n", len(entries))
			break
		}
		printEntry(ctx, e, c.ShowIDs)
	}
	return nil
}

func printEntry(ctx *cli.Context, e models.WorkoutLogEntry, showID bool) {
	id := ""
	if showID {
		id = fmt.Sprintf(" (ID: %s)", e.ID)
	}
	ctx.Printf("  %s  %s%s\n", e.Date, e.Exercise, id)
	if len(e.Sets) > 0 {
		parts := make([]string, len(e.Sets))
		for i, s := range e.Sets {
			parts[i] = fmt.Sprintf("%d×%g", s.Reps, s.Weight)
		}
		ctx.Printf("      %s  (volume %g)\n", strings.Join(parts, ", "), e.Volume())
	}
	if e.Notes != "" {
		ctx.Printf("      %s\n", e.Notes)
	}
}

type LogDeleteCmd struct {
	ID string `arg:"" help:"Workout ID or unique ID prefix."`
}

func (c *LogDeleteCmd) Run(ctx *cli.Context) error {
	stored, err := ctx.Repo.LoadWorkouts()
	if err != nil {
		return fmt.Errorf("failed to load workouts: %w", err)
	}
	log := workoutlog.New(stored)
	entry, err := log.Get(c.ID)
	if err != nil {
		return err
	}
	next, err := log.Delete(entry.ID)
	if err != nil {
		return err
	}
	if err := ctx.Repo.SaveWorkouts(next.Entries()); err != nil {
		return fmt.Errorf("failed to save workouts: %w", err)
	}
	ctx.Printf("✓ Deleted %s on %s\n", entry.Exercise, entry.Date)
	return nil
}

type LogExportCmd struct {
	Dir string `help:"Directory to write the export to." type:"path" default:"."`
}

func (c *LogExportCmd) Run(ctx *cli.Context) error {
	stored, err := ctx.Repo.LoadWorkouts()
	if err != nil {
		return fmt.Errorf("failed to load workouts: %w", err)
	}
	now := ctx.Clock()
	path := filepath.Join(c.Dir, export.WorkoutsFileName(now))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := export.Workouts(f, workoutlog.New(stored).Entries(), now); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	ctx.Printf("✓ Exported %d workouts to %s\n", len(stored), path)
	return nil
}

package system

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/fitfinder/internal/backup"
	"github.com/julianstephens/fitfinder/internal/cli"
	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/models"
	"github.com/julianstephens/fitfinder/internal/storage"
	"github.com/julianstephens/fitfinder/internal/storage/sqlite"
	"github.com/julianstephens/fitfinder/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name     string
	run      func(*cli.Context) error
	needsDB  bool
	warnOnly bool
}

var checks = []check{
	{name: "Database reachable", run: checkDBReachable},
	{name: "Schema version", run: checkSchemaVersion, needsDB: true},
	{name: "Migrations complete", run: checkMigrationsComplete, needsDB: true},
	{name: "Backups present", run: checkBackupsPresent, warnOnly: true},
	{name: "Stored data", run: checkStoredData, needsDB: true},
	{name: "Workout log", run: checkWorkouts, needsDB: true},
	{name: "Exercise catalog", run: checkCatalog},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := false
	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
			if c.name == checks[0].name {
				dbReachable = true
			}
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if _, err := ctx.Store.Keys(); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func schemaVersions(ctx *cli.Context) (current, latest int, ok bool, err error) {
	store, isSQL := ctx.Store.(migratable)
	if !isSQL {
		return 0, 0, false, nil
	}
	runner, err := store.Runner()
	if err != nil {
		return 0, 0, true, err
	}
	if current, err = runner.CurrentVersion(); err != nil {
		return 0, 0, true, fmt.Errorf("failed to get current schema version: %w", err)
	}
	if latest, err = runner.LatestVersion(); err != nil {
		return 0, 0, true, fmt.Errorf("failed to get latest schema version: %w", err)
	}
	return current, latest, true, nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	current, latest, ok, err := schemaVersions(ctx)
	if !ok || err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	current, latest, ok, err := schemaVersions(ctx)
	if !ok || err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("%d pending migration(s), run '%s migrate'", latest-current, constants.AppName)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return nil
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found in %s", mgr.GetBackupDir())
	}
	if age := ctx.Clock().Sub(backups[0].Timestamp); age > 7*24*time.Hour {
		return fmt.Errorf("most recent backup is %d days old", int(age.Hours()/24))
	}
	return nil
}

// checkStoredData reports values that no longer decode. The app treats
// them as absent, so the data is silently ignored until fixed.
func checkStoredData(ctx *cli.Context) error {
	targets := map[string]any{
		constants.KeyFavorites:   &[]string{},
		constants.KeyLastRoutine: &models.Routine{},
		constants.KeyMealPlans:   &[]models.SavedMealPlan{},
		constants.KeyWorkouts:    &[]models.WorkoutLogEntry{},
		constants.KeySettings:    &models.Settings{},
	}
	var errs []error
	for _, key := range []string{constants.KeyFavorites, constants.KeyLastRoutine, constants.KeyMealPlans, constants.KeyWorkouts, constants.KeySettings} {
		data, err := ctx.Store.Get(key)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			continue
		}
		if err := json.Unmarshal(data, targets[key]); err != nil {
			errs = append(errs, fmt.Errorf("%s is corrupt: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

func checkWorkouts(ctx *cli.Context) error {
	entries, err := ctx.Repo.LoadWorkouts()
	if err != nil {
		return err
	}
	result := validation.New().ValidateWorkouts(entries)
	if result.HasConflicts() {
		return fmt.Errorf("%d problem(s) found:\n%s", len(result.Conflicts), result.FormatReport())
	}
	return nil
}

func checkCatalog(ctx *cli.Context) error {
	cat, err := ctx.Catalog()
	if err != nil {
		return err
	}
	if cat.Len() == 0 {
		return errors.New("catalog is empty")
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.Clock()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

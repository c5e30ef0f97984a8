package system

import (
	"fmt"

	"github.com/julianstephens/fitfinder/internal/cli"
	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/migration"
)

// migratable is implemented by the SQL-backed stores
type migratable interface {
	Runner() (*migration.Runner, error)
}

type MigrateCmd struct {
	Status bool `help:"Show applied and pending migrations without applying anything."`
}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	store, ok := ctx.Store.(migratable)
	if !ok {
		return fmt.Errorf("migrate command only supports SQLite and PostgreSQL storage")
	}

	runner, err := store.Runner()
	if err != nil {
		return err
	}
	if c.Status {
		return printStatus(ctx, runner)
	}

	count, err := runner.Apply(func(msg string) {
		ctx.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		ctx.Println("No migrations to apply. Database is up to date.")
	} else {
		ctx.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}

func printStatus(ctx *cli.Context, runner *migration.Runner) error {
	history, err := runner.History()
	if err != nil {
		return err
	}
	pending, err := runner.Pending()
	if err != nil {
		return err
	}

	if len(history) == 0 {
		ctx.Println("No migrations applied")
	}
	for _, a := range history {
		ctx.Printf("✓ %03d_%s  applied %s\n", a.Version, a.Name, a.AppliedAt.Local().Format(constants.DateFormat+" 15:04"))
	}
	for _, m := range pending {
		ctx.Printf("… %03d_%s  pending\n", m.Version, m.Name)
	}
	if len(pending) > 0 {
		ctx.Printf("\n%d pending migration(s), run '%s migrate' to apply\n", len(pending), constants.AppName)
	}
	return nil
}

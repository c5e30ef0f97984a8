package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/fitfinder/internal/cli"
	"github.com/julianstephens/fitfinder/internal/cli/backups"
	"github.com/julianstephens/fitfinder/internal/cli/exercises"
	"github.com/julianstephens/fitfinder/internal/cli/meals"
	"github.com/julianstephens/fitfinder/internal/cli/routines"
	"github.com/julianstephens/fitfinder/internal/cli/settings"
	"github.com/julianstephens/fitfinder/internal/cli/system"
	"github.com/julianstephens/fitfinder/internal/cli/workouts"
	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/errors"
	"github.com/julianstephens/fitfinder/internal/logger"
)

type CLI struct {
	Version      kong.VersionFlag
	Config       string `help:"Database path, 'keyring[:profile]', ':memory:' or a PostgreSQL connection string without a password." env:"FITFINDER_CONFIG" default:"~/.config/fitfinder/fitfinder.db"`
	DBConnection string `help:"PostgreSQL connection string (may include credentials)." env:"FITFINDER_DB_CONNECTION" hidden:"" name:"db-connection"`
	CatalogDir   string `help:"Directory of extra exercise catalog files (JSON or YAML)." env:"FITFINDER_CATALOG_DIR" name:"catalog-dir"`
	LogLevel     string `help:"Log level: debug, info, warn or error." env:"FITFINDER_LOG_LEVEL" default:"warn" enum:"debug,info,warn,error" name:"log-level"`
	Debug        bool   `help:"Enable debug logging, mirrored to stderr outside the TUI."`

	Init     system.InitCmd        `cmd:"" help:"Initialize fitfinder storage."`
	Migrate  system.MigrateCmd     `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd      `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd         `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Exercise exercises.ExerciseCmd `cmd:"" help:"Search and inspect the exercise catalog."`
	Favorite exercises.FavoriteCmd `cmd:"" help:"Manage favorite exercises."`
	Routine  routines.RoutineCmd   `cmd:"" help:"Generate and view training routines."`
	Meal     meals.MealCmd         `cmd:"" help:"Compute targets and plan weekly meals."`
	Log      workouts.LogCmd       `cmd:"" help:"Record and review workouts."`
	Settings settings.SettingsCmd  `cmd:"" help:"Manage application settings."`
	Backup   backups.BackupCmd     `cmd:"" help:"Manage database backups."`
	Keyring  system.KeyringCmd     `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

// loadEnv reads .env from the working directory and the config directory.
// Variables already set in the environment are not overridden.
func loadEnv() {
	paths := []string{".env", filepath.Join(filepath.Dir(cli.ExpandPath(constants.DefaultConfigPath)), ".env")}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
		}
	}
}

// configDir is where logs live: next to a file database, otherwise the
// default config directory.
func configDir(config string) string {
	if cli.UsesDefaultDir(config) {
		config = constants.DefaultConfigPath
	}
	return filepath.Dir(cli.ExpandPath(config))
}

func newParser(c *CLI) (*kong.Kong, error) {
	return kong.New(c,
		kong.Name(constants.AppName),
		kong.Description("Exercise explorer, routine generator, meal planner and workout log"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)
}

// run parses args and executes the selected command, writing command
// output to out.
func run(args []string, out io.Writer) error {
	var c CLI
	parser, err := newParser(&c)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	command := ctx.Command()
	logCfg := logger.Config{
		Level:     c.LogLevel,
		Debug:     c.Debug,
		ConfigDir: configDir(c.Config),
		Console:   c.Debug && command != "tui",
	}
	if err := logger.Init(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}
	logger.Debug("Running command", "command", command, "config", c.Config)

	if strings.HasPrefix(command, "keyring") {
		appCtx := cli.NewContext(nil, c.CatalogDir)
		appCtx.Out = out
		return ctx.Run(appCtx)
	}

	store, err := cli.OpenStore(c.Config, c.DBConnection)
	if err != nil {
		return err
	}
	appCtx := cli.NewContext(store, c.CatalogDir)
	appCtx.Out = out

	// init handles its own loading
	if !strings.HasPrefix(command, "init") {
		if err := store.Load(); err != nil {
			return err
		}
	}

	err = ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close store", "error", closeErr)
	}
	return err
}

func main() {
	loadEnv()
	errors.Fatal(run(os.Args[1:], os.Stdout))
}

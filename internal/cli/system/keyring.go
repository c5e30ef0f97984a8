package system

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/julianstephens/fitfinder/internal/cli"
	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/keyring"
	"github.com/julianstephens/fitfinder/internal/storage/postgres"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
	Get    KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	Status KeyringStatusCmd `cmd:"" help:"Check keyring availability." default:"1"`
}

// ProfileFlag selects the keyring entry; the default profile backs
// --config keyring and a named one backs --config keyring:<name>.
type ProfileFlag struct {
	Profile string `help:"Connection profile name." short:"p"`
}

func (f ProfileFlag) entry() (keyring.Entry, error) {
	return keyring.ForProfile(f.Profile)
}

// configValue is the --config value that selects this profile
func configValue(e keyring.Entry) string {
	if e.Profile == "" {
		return cli.KeyringConfig
	}
	return cli.KeyringConfig + ":" + e.Profile
}

type KeyringSetCmd struct {
	ProfileFlag      `embed:""`
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in keyring"`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	entry, err := cmd.entry()
	if err != nil {
		return err
	}
	if !cli.IsPostgres(cmd.ConnectionString) {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	// The keyring is encrypted, so an embedded password is only a warning here
	if err := postgres.ValidateConnString(cmd.ConnectionString); err != nil {
		if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return fmt.Errorf("invalid connection string: %w", err)
		}
		ctx.Println("⚠️  Warning: connection string contains a password; it will be kept in the encrypted OS keyring.")
	}

	if err := entry.Set(cmd.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}

	ctx.Printf("✓ Connection string stored in OS keyring (profile %s)\n", entry.Name())
	ctx.Printf("  Use it with: %s --config %s\n", constants.AppName, configValue(entry))
	return nil
}

type KeyringGetCmd struct {
	ProfileFlag `embed:""`
}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	entry, err := cmd.entry()
	if err != nil {
		return err
	}
	connStr, err := entry.Get()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("no connection string found in keyring for profile %s, use 'fitfinder keyring set' to store one", entry.Name())
		}
		return fmt.Errorf("failed to retrieve connection string from keyring: %w", err)
	}
	ctx.Println(maskPassword(connStr))
	return nil
}

type KeyringDeleteCmd struct {
	ProfileFlag `embed:""`
}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	entry, err := cmd.entry()
	if err != nil {
		return err
	}
	if err := entry.Delete(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("no connection string found in keyring for profile %s", entry.Name())
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}
	ctx.Printf("✓ Connection string for profile %s deleted from OS keyring\n", entry.Name())
	return nil
}

type KeyringStatusCmd struct {
	ProfileFlag `embed:""`
}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	entry, err := cmd.entry()
	if err != nil {
		return err
	}
	if !keyring.Available() {
		ctx.Println("❌ OS keyring is not available on this system")
		return keyring.ErrKeyringUnavailable
	}
	ctx.Println("✓ OS keyring is available")

	_, err = entry.Get()
	switch {
	case err == nil:
		ctx.Printf("✓ Connection string is stored for profile %s\n", entry.Name())
	case errors.Is(err, keyring.ErrNotFound):
		ctx.Printf("ℹ No connection string stored for profile %s\n", entry.Name())
	default:
		return err
	}
	return nil
}

// maskPassword hides the password of a URL or key=value connection string
func maskPassword(connStr string) string {
	if u, err := url.Parse(connStr); err == nil && u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), "****")
			return strings.Replace(u.String(), "%2A%2A%2A%2A", "****", 1)
		}
		return connStr
	}

	fields := strings.Fields(connStr)
	for i, f := range fields {
		if strings.HasPrefix(strings.ToLower(f), "password=") {
			fields[i] = "password=****"
		}
	}
	return strings.Join(fields, " ")
}

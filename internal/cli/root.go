package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/fitfinder/internal/backup"
	"github.com/julianstephens/fitfinder/internal/catalog"
	"github.com/julianstephens/fitfinder/internal/keyring"
	"github.com/julianstephens/fitfinder/internal/logger"
	"github.com/julianstephens/fitfinder/internal/storage"
	"github.com/julianstephens/fitfinder/internal/storage/postgres"
	"github.com/julianstephens/fitfinder/internal/storage/sqlite"
)

// KeyringConfig selects the connection string stored in the OS keyring
const KeyringConfig = "keyring"

type Context struct {
	Store      storage.Provider
	Repo       *storage.Repository
	CatalogDir string
	Out        io.Writer
	Now        func() time.Time

	catalog *catalog.Catalog
}

// NewContext wires a repository over store. Output goes to stdout.
func NewContext(store storage.Provider, catalogDir string) *Context {
	return &Context{
		Store:      store,
		Repo:       storage.NewRepository(store),
		CatalogDir: catalogDir,
		Out:        os.Stdout,
		Now:        time.Now,
	}
}

// Writer returns the command output destination
func (c *Context) Writer() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Clock() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Printf writes formatted command output
func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Writer(), format, args...)
}

// Println writes a line of command output
func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Writer(), args...)
}

// Catalog loads the bundled exercises plus any files in CatalogDir. The
// result is cached for the life of the context.
func (c *Context) Catalog() (*catalog.Catalog, error) {
	if c.catalog != nil {
		return c.catalog, nil
	}
	var (
		cat *catalog.Catalog
		err error
	)
	if c.CatalogDir != "" {
		cat, err = catalog.LoadDir(ExpandPath(c.CatalogDir))
	} else {
		cat, err = catalog.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load exercise catalog: %w", err)
	}
	c.catalog = cat
	return cat, nil
}

// PerformAutomaticBackup snapshots a SQLite store and only logs failures
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ExpandPath replaces a leading ~ with the user's home directory
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// IsPostgres reports whether config looks like a PostgreSQL connection string
func IsPostgres(config string) bool {
	return strings.HasPrefix(config, "postgres://") ||
		strings.HasPrefix(config, "postgresql://") ||
		strings.Contains(config, "host=")
}

// isKeyring reports whether config is "keyring" or "keyring:<profile>"
func isKeyring(config string) bool {
	return config == KeyringConfig || strings.HasPrefix(config, KeyringConfig+":")
}

// UsesDefaultDir reports whether config has no file path of its own, so
// logs and .env live in the default config directory.
func UsesDefaultDir(config string) bool {
	return isKeyring(config) || config == storage.MemoryPath || IsPostgres(config)
}

// OpenStore picks a backend for config. A non-empty dbConnection (from the
// environment) wins over config. Connection strings given on the command
// line must not embed a password; the keyring and environment may.
func OpenStore(config, dbConnection string) (storage.Provider, error) {
	switch {
	case dbConnection != "":
		return postgres.New(dbConnection), nil
	case isKeyring(config):
		entry, err := keyring.ForProfile(strings.TrimPrefix(strings.TrimPrefix(config, KeyringConfig), ":"))
		if err != nil {
			return nil, err
		}
		connStr, err := entry.Get()
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				return nil, fmt.Errorf("no connection string found in keyring for profile %q, use 'fitfinder keyring set' to store one", entry.Name())
			}
			return nil, fmt.Errorf("failed to read connection string from keyring: %w", err)
		}
		return postgres.New(connStr), nil
	case IsPostgres(config):
		if err := postgres.ValidateConnString(config); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w: use 'fitfinder keyring set', FITFINDER_DB_CONNECTION or .pgpass instead", err)
			}
			return nil, err
		}
		return postgres.New(config), nil
	case config == storage.MemoryPath:
		return storage.NewMemoryStore(), nil
	case strings.HasSuffix(strings.ToLower(config), ".json"):
		return storage.NewJSONStore(ExpandPath(config)), nil
	default:
		return sqlite.NewStore(ExpandPath(config)), nil
	}
}

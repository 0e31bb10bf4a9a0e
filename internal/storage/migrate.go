package storage

import (
	"embed"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/sqlite/*.sql
var sqliteMigrations embed.FS

//go:embed migrations/postgres/*.sql
var postgresMigrations embed.FS

// RunMigrations applies all pending migrations for the given backend.
// Migration files are embedded in the binary; dsn is the sqlite file
// path or the postgres connection string.
func RunMigrations(backend, dsn string) error {
	var src embed.FS
	var dir, dbURL string
	switch backend {
	case "sqlite":
		src, dir = sqliteMigrations, "migrations/sqlite"
		dbURL = "sqlite://" + dsn
	case "postgres":
		src, dir = postgresMigrations, "migrations/postgres"
		// The pgx/v5 migrate driver registers the pgx5 scheme.
		dbURL = strings.Replace(dsn, "postgres://", "pgx5://", 1)
	default:
		return fmt.Errorf("unknown storage backend %q", backend)
	}

	source, err := iofs.New(src, dir)
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, dbURL)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

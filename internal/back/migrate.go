package back

import (
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3" // sqlite3:// URLs
	_ "github.com/golang-migrate/migrate/v4/source/file"      // file:// URLs
	"github.com/pkg/errors"
)

// Migrate applies every pending migration found in migrationsDir to the SQLite
// database at dbPath. An up-to-date database is not an error.
func Migrate(migrationsDir, dbPath string) error {
	migrator, err := migrate.New("file://"+migrationsDir, "sqlite3://"+dbPath)
	if err != nil {
		return errors.Wrap(err, "unable to load migrations")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "unable to apply migrations")
	}

	return nil
}

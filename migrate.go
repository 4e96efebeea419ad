package main

import (
	"clubhouse/internal/back"
	"clubhouse/internal/config"
	"clubhouse/internal/util"

	"github.com/rs/zerolog"
)

func migrateDatabase(conf *config.Config, logger zerolog.Logger) error {
	if err := back.Migrate(conf.MigrationsDir(), conf.DatabasePath); err != nil {
		return err
	}

	logger.Info().Str("database", conf.DatabasePath).Msg("database is up to date")
	return nil
}

// withBack opens the migrated database for the duration of cb.
func withBack(conf *config.Config, cb func(*back.Back) error) error {
	if err := back.Migrate(conf.MigrationsDir(), conf.DatabasePath); err != nil {
		return err
	}

	b, err := back.New("sqlite3", conf.DatabasePath)
	if err != nil {
		return err
	}

	return util.ConcatErrors(cb(b), b.Close())
}

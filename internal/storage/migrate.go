package storage

import (
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrate applies every pending migration from sourceURL (e.g. "file://migrations")
// and reports the schema version before and after.
func Migrate(db *sql.DB, sourceURL string) (preVersion uint, postVersion uint, err error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return 0, 0, err
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return 0, 0, err
	}

	preVersion, _, err = m.Version()
	if err != nil && errors.Is(err, migrate.ErrNilVersion) {
		preVersion = 0
	} else if err != nil {
		return 0, 0, err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return preVersion, 0, err
	}

	postVersion, _, err = m.Version()
	if err != nil {
		return preVersion, 0, err
	}

	return preVersion, postVersion, nil
}

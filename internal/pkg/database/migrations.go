package database

import (
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	PgxDriverName    = "pgx"
	PostgresDialect  = "postgres"
	MigrationsRootFS = "."
)

func MigrateDatabase(databaseURL string, migrations fs.FS, dir, driverName, dialect string) error {
	db, err := sql.Open(driverName, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations)

	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

// MigratePostgres applies every migration found at the root of migrations.
func MigratePostgres(settings PostgresSettings, migrations fs.FS) error {
	return MigrateDatabase(settings.GetURL(), migrations, MigrationsRootFS, PgxDriverName, PostgresDialect)
}

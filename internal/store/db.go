// Package store is the SQLite database behind a session's key-value
// persistence.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/matheus3301/baatchit/internal/store/migrations"
	_ "github.com/mattn/go-sqlite3"
)

// ErrDirtySchema means an earlier migration was interrupted. The file
// needs manual repair before the session can start.
var ErrDirtySchema = errors.New("store: schema is dirty")

// Schema is the migration state of an opened database.
type Schema struct {
	Version uint
	// Applied is set when Open ran at least one migration.
	Applied bool
}

// DB is an open session database whose kv table is ready for use.
type DB struct {
	*sql.DB
	schema Schema
}

// Open opens the database at path in WAL mode and migrates it to the
// latest schema.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	schema, err := migrateUp(sqlDB)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return &DB{DB: sqlDB, schema: schema}, nil
}

// Schema reports what Open found and did.
func (db *DB) Schema() Schema { return db.schema }

// migrateUp applies the embedded migrations. The migrate instance is not
// closed: its driver would close sqlDB with it.
func migrateUp(sqlDB *sql.DB) (Schema, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return Schema{}, fmt.Errorf("migration source: %w", err)
	}
	driver, err := sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
	if err != nil {
		return Schema{}, fmt.Errorf("migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return Schema{}, fmt.Errorf("migration instance: %w", err)
	}

	if v, dirty, err := m.Version(); err == nil && dirty {
		return Schema{}, fmt.Errorf("%w at version %d", ErrDirtySchema, v)
	}

	applied := true
	if err := m.Up(); errors.Is(err, migrate.ErrNoChange) {
		applied = false
	} else if err != nil {
		return Schema{}, fmt.Errorf("migration up: %w", err)
	}

	v, _, err := m.Version()
	if err != nil {
		return Schema{}, fmt.Errorf("migration version: %w", err)
	}
	return Schema{Version: v, Applied: applied}, nil
}

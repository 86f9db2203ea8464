// Package sqlite implements the persistence ports on a local SQLite
// database through database/sql and the mattn/go-sqlite3 driver.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// queryTimeout bounds every repository call so a wedged database cannot
// hold request goroutines forever.
const queryTimeout = 3 * time.Second

// Open opens (or creates) the database at dsn, enforces the connection
// settings the repositories rely on and applies the schema. The returned
// handle is safe for concurrent use.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", connString(dsn))
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	// WAL is a property of the database file, so one statement covers every
	// pooled connection. Some DSNs (pure in-memory) cannot switch modes;
	// that is not an error.
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite journal_mode: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}
	return db, nil
}

// connString appends the per-connection settings to dsn. Foreign keys and
// the busy timeout are connection-scoped in SQLite, so they must travel in
// the DSN to apply to every connection the pool opens, not just the first.
func connString(dsn string) string {
	params := []string{}
	if !strings.Contains(dsn, "_foreign_keys=") {
		params = append(params, "_foreign_keys=on")
	}
	if !strings.Contains(dsn, "_busy_timeout=") {
		params = append(params, "_busy_timeout=5000")
	}
	if len(params) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

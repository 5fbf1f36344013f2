// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose schema migrations of the server
// (PostgreSQL) and client (SQLite) databases.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed client/*.sql server/*.sql
var embedMigrations embed.FS

// Dialect selects which migration set is applied.
type Dialect string

const (
	// Postgres applies the server schema.
	Postgres Dialect = "pgx"
	// SQLite applies the client record store schema.
	SQLite Dialect = "sqlite3"
)

var ErrNilDB = errors.New("migration error: db is nil")

func (d Dialect) dir() (string, error) {
	switch d {
	case Postgres:
		return "server", nil
	case SQLite:
		return "client", nil
	default:
		return "", fmt.Errorf("migration error: unknown dialect %q", string(d))
	}
}

// Migrate applies every pending migration of the given dialect to db.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return ErrNilDB
	}

	dir, err := dialect.dir()
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

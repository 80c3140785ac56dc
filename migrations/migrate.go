// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the session store schema and applies it with
// goose. Each supported dialect keeps its scripts in a directory named after
// the goose dialect.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite3/*.sql
var embedMigrations embed.FS

// Dialects lists the goose dialects with embedded migrations.
var Dialects = []string{"postgres", "sqlite3"}

// ErrUnsupportedDialect is returned for a dialect without embedded scripts.
var ErrUnsupportedDialect = errors.New("unsupported migration dialect")

// Migrate applies all pending migrations for dialect to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}
	if !supported(dialect) {
		return fmt.Errorf("migration error: %w: %q", ErrUnsupportedDialect, dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dialect); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func supported(dialect string) bool {
	for _, d := range Dialects {
		if d == dialect {
			return true
		}
	}
	return false
}

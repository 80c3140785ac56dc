package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-catalog-gateway/internal/config"
	"github.com/MKhiriev/go-catalog-gateway/internal/logger"
	"github.com/MKhiriev/go-catalog-gateway/migrations"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps a *sql.DB opened for one of the supported dialects.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded session schema for the DB dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the goose dialect name ("postgres" or "sqlite3").
func (db *DB) Dialect() string {
	return db.dialect
}

// NewSessionStore returns a [SessionStore] for cfg.DSN. An empty DSN yields
// the in-memory store. DSNs starting with postgres:// or postgresql:// open
// a PostgreSQL connection; anything else is treated as a SQLite file path.
// The schema is migrated before the store is returned.
func NewSessionStore(ctx context.Context, cfg config.Session, log *logger.Logger) (SessionStore, error) {
	if strings.TrimSpace(cfg.DSN) == "" {
		log.Debug().Str("func", "NewSessionStore").Msg("no session DSN configured, using in-memory store")
		return NewMemorySessionStore(), nil
	}

	var (
		db  *DB
		err error
	)
	if isPostgresDSN(cfg.DSN) {
		db, err = NewConnectPostgres(ctx, cfg, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg, log)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewSessionStore").Msg("error applying session migrations")
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	return newSessionRepository(db), nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

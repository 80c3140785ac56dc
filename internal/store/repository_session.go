package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-catalog-gateway/models"
)

type sessionRepository struct {
	db *DB
}

func newSessionRepository(db *DB) *sessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Save(ctx context.Context, key string, session models.Session) error {
	if key == "" {
		return ErrEmptyStorageKey
	}
	log := r.db.logger.With().Str("func", "sessionRepository.Save").Str("storage_key", key).Logger()

	query, args, err := buildUpsertSessionQuery(r.db.placeholder, key, session)
	if err != nil {
		log.Err(err).Msg("error building upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil && r.db.errorClassificator.Classify(err) == Retryable {
		log.Warn().Err(err).Msg("retryable error saving session, trying again")
		_, err = r.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		log.Err(err).Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) Load(ctx context.Context, key string) (models.Session, error) {
	log := r.db.logger.With().Str("func", "sessionRepository.Load").Str("storage_key", key).Logger()

	query, args, err := buildSelectSessionQuery(r.db.placeholder, key)
	if err != nil {
		log.Err(err).Msg("error building select query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		s       models.Session
		expires sql.NullTime
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&s.AccessToken, &s.RefreshToken, &s.TokenType, &expires, &s.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Msg("error loading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if expires.Valid {
		s.ExpiresAt = expires.Time.UTC()
	}

	return s, nil
}

func (r *sessionRepository) Delete(ctx context.Context, key string) error {
	log := r.db.logger.With().Str("func", "sessionRepository.Delete").Str("storage_key", key).Logger()

	query, args, err := buildDeleteSessionQuery(r.db.placeholder, key)
	if err != nil {
		log.Err(err).Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrSessionNotFound
	}

	return nil
}

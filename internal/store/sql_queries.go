package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-catalog-gateway/models"
)

const sessionsTable = "auth_sessions"

var sessionColumns = []string{
	"access_token",
	"refresh_token",
	"token_type",
	"expires_at",
	"user_id",
}

const sessionUpsertSuffix = "ON CONFLICT (storage_key) DO UPDATE SET " +
	"access_token = excluded.access_token, " +
	"refresh_token = excluded.refresh_token, " +
	"token_type = excluded.token_type, " +
	"expires_at = excluded.expires_at, " +
	"user_id = excluded.user_id, " +
	"updated_at = CURRENT_TIMESTAMP"

func buildUpsertSessionQuery(ph sq.PlaceholderFormat, key string, s models.Session) (string, []any, error) {
	return sq.Insert(sessionsTable).
		Columns(append([]string{"storage_key"}, sessionColumns...)...).
		Values(key, s.AccessToken, s.RefreshToken, s.TokenType, nullTime(s), s.UserID).
		Suffix(sessionUpsertSuffix).
		PlaceholderFormat(ph).
		ToSql()
}

func buildSelectSessionQuery(ph sq.PlaceholderFormat, key string) (string, []any, error) {
	return sq.Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"storage_key": key}).
		Limit(1).
		PlaceholderFormat(ph).
		ToSql()
}

func buildDeleteSessionQuery(ph sq.PlaceholderFormat, key string) (string, []any, error) {
	return sq.Delete(sessionsTable).
		Where(sq.Eq{"storage_key": key}).
		PlaceholderFormat(ph).
		ToSql()
}

// zero expiry is stored as NULL
func nullTime(s models.Session) sql.NullTime {
	return sql.NullTime{Time: s.ExpiresAt.UTC(), Valid: !s.ExpiresAt.IsZero()}
}

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const sessionsTable = "sessions"

var sessionColumns = []string{
	"profile",
	"access_token",
	"refresh_token",
	"expires_at",
	"user_id",
	"email",
	"role",
	"name",
	"is_authenticated",
	"updated_at",
}

// builder renders sqlite "?" placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func selectSessionQuery(profile string) (string, []any, error) {
	return builder.
		Select(sessionColumns[:9]...).
		From(sessionsTable).
		Where(sq.Eq{"profile": profile}).
		ToSql()
}

func upsertSessionQuery(r sessionRow) (string, []any, error) {
	return builder.
		Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(
			r.Profile,
			r.AccessToken,
			r.RefreshToken,
			r.ExpiresAt,
			r.UserID,
			r.Email,
			r.Role,
			r.Name,
			r.IsAuthenticated,
			r.UpdatedAt,
		).
		Suffix(`ON CONFLICT(profile) DO UPDATE SET
			access_token     = excluded.access_token,
			refresh_token    = excluded.refresh_token,
			expires_at       = excluded.expires_at,
			user_id          = excluded.user_id,
			email            = excluded.email,
			role             = excluded.role,
			name             = excluded.name,
			is_authenticated = excluded.is_authenticated,
			updated_at       = excluded.updated_at`).
		ToSql()
}

func deleteSessionQuery(profile string) (string, []any, error) {
	return builder.
		Delete(sessionsTable).
		Where(sq.Eq{"profile": profile}).
		ToSql()
}

func listProfilesQuery() (string, []any, error) {
	return builder.
		Select("profile").
		From(sessionsTable).
		OrderBy("profile").
		ToSql()
}

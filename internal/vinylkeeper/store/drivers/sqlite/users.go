package sqlite

import (
	"context"
	"database/sql"

	"github.com/vinylkeeper/vinylkeeper/internal/vinylkeeper/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, user_uuid, username, email, password_hash,
	is_active, is_accepted_terms, is_superuser, timezone, role_id,
	last_login, registered_at`

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) GetUserByUUID(ctx context.Context, userUUID string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_uuid = ?`, userUUID)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, user_uuid, username, email, password_hash,
			is_active, is_accepted_terms, is_superuser, timezone, role_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.UserUUID, u.Username, u.Email, u.PasswordHash,
		u.IsActive, u.IsAcceptedTerms, u.IsSuperuser, u.Timezone,
		nullIfEmpty(u.RoleID),
	)
	return err
}

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	var roleID sql.NullString
	var lastLogin sql.NullTime

	err := row.Scan(
		&u.ID, &u.UserUUID, &u.Username, &u.Email, &u.PasswordHash,
		&u.IsActive, &u.IsAcceptedTerms, &u.IsSuperuser, &u.Timezone,
		&roleID, &lastLogin, &u.RegisteredAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	if roleID.Valid {
		u.RoleID = roleID.String
	}
	u.LastLogin = mapNullTimePtr(lastLogin)

	return u, nil
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
)

// UserRoles reads the role stored for an identity provider subject.
type UserRoles struct {
	db *sql.DB
}

func NewUserRoles(db *sql.DB) *UserRoles { return &UserRoles{db: db} }

// RoleFor returns "" when the user has no row.
func (u *UserRoles) RoleFor(ctx context.Context, sub string) (string, error) {
	var role sql.NullString
	err := u.db.QueryRowContext(ctx, userRoleSQL, sub).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return role.String, nil
}

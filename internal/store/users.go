// File: internal/store/users.go
package store

import (
	"context"

	"github.com/google/uuid"

	"hotel-booking/internal/database"
	"hotel-booking/internal/model"
)

const userColumns = `uid, email, password, role, created_at`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(&u.UID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
		return nil, err
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, q database.Querier, email string) (*model.User, error) {
	u, err := scanUser(q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	))
	if err != nil {
		return nil, wrap("GetUserByEmail", err)
	}
	return u, nil
}

func GetUserByUID(ctx context.Context, q database.Querier, uid uuid.UUID) (*model.User, error) {
	u, err := scanUser(q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE uid = $1`,
		uid,
	))
	if err != nil {
		return nil, wrap("GetUserByUID", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, q database.Querier, u *model.User) (*model.User, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO users (uid, email, password, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		u.UID,
		u.Email,
		u.PasswordHash,
		u.Role,
	)
	if err := row.Scan(&u.CreatedAt); err != nil {
		return nil, wrap("CreateUser", err)
	}
	return u, nil
}

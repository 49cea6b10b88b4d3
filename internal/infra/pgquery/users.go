package pgquery

import (
	"context"

	"github.com/google/uuid"
)

const userColumns = `id, email, full_name, password_hash, role, is_active, last_login, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (Users, error) {
	var u Users
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Role, &u.IsActive, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const findUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (Users, error) {
	return scanUser(db.QueryRow(ctx, findUserByEmail, email))
}

const findUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	return scanUser(db.QueryRow(ctx, findUserByID, id))
}

type CreateUserParams struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	Role         string
}

const createUser = `
INSERT INTO users (id, email, full_name, password_hash, role)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createUser, arg.ID, arg.Email, arg.FullName, arg.PasswordHash, arg.Role).Scan(&id)
	return id, err
}

const updateUserLastLogin = `UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, updateUserLastLogin, id)
	return err
}

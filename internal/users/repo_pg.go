package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// PGRepo implements Repo using Postgres. Unlike the local store, email
// uniqueness is enforced by the schema here, so the application-layer check
// gets a storage-layer backstop.
type PGRepo struct {
	DB *sql.DB
}

const pgUniqueViolation = "23505"

// Create inserts a new user. A duplicate ID is silently ignored to keep the
// store contract; a duplicate email surfaces as ErrDuplicateEmail.
func (r *PGRepo) Create(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, email, name)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO NOTHING`

	_, err := r.DB.ExecContext(ctx, query, user.ID, user.Email, user.Name)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: %s", ErrDuplicateEmail, user.Email)
		}
		return err
	}
	return nil
}

// GetByID returns the user with the given ID.
func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = `SELECT id, email, name FROM users WHERE id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID))
}

// GetByEmail returns the user with the given email.
func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `SELECT id, email, name FROM users WHERE email = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

// List returns all users.
func (r *PGRepo) List(ctx context.Context) ([]User, error) {
	const query = `SELECT id, email, name FROM users`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name); err != nil {
			return nil, err
		}
		all = append(all, u)
	}
	return all, rows.Err()
}

func (r *PGRepo) scanOne(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

var _ Repo = (*PGRepo)(nil)

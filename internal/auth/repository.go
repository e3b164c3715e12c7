package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository handles database operations for back-office access
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new auth repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// IsAuthorized reports whether email has been registered
func (r *Repository) IsAuthorized(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM authorized_users WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check authorization: %w", err)
	}
	return exists, nil
}

// RegisterIfRoom registers email while fewer than max users exist.
// The check and insert run under an advisory lock so two first logins cannot both squeeze in.
func (r *Repository) RegisterIfRoom(ctx context.Context, email, name string, max int) (bool, error) {
	var registered bool
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('authorized_users'))`); err != nil {
			return err
		}

		var exists bool
		var count int
		err := tx.QueryRow(ctx, `
			SELECT
				EXISTS (SELECT 1 FROM authorized_users WHERE email = $1),
				(SELECT COUNT(*) FROM authorized_users)`, email,
		).Scan(&exists, &count)
		if err != nil {
			return err
		}
		if exists {
			registered = true
			return nil
		}
		if count >= max {
			return nil
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO authorized_users (email, name) VALUES ($1, $2) ON CONFLICT (email) DO NOTHING`,
			email, name,
		); err != nil {
			return err
		}
		registered = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to register user: %w", err)
	}
	return registered, nil
}

// TouchLogin records a successful login
func (r *Repository) TouchLogin(ctx context.Context, email string, at time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE authorized_users SET last_login_at = $2 WHERE email = $1`, email, at)
	if err != nil {
		return fmt.Errorf("failed to record login: %w", err)
	}
	return nil
}

// List returns every registered user, oldest first
func (r *Repository) List(ctx context.Context) ([]AuthorizedUser, error) {
	rows, err := r.db.Query(ctx, `
		SELECT email, name, created_at, last_login_at
		FROM authorized_users
		ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []AuthorizedUser
	for rows.Next() {
		u := AuthorizedUser{}
		if err := rows.Scan(&u.Email, &u.Name, &u.CreatedAt, &u.LastLoginAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

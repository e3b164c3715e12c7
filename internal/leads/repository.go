package leads

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository handles database operations for leads
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new leads repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create stores a lead
func (r *Repository) Create(ctx context.Context, l *Lead) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO leads (id, name, phone, email, message, property_id, language, notified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		l.ID, l.Name, l.Phone, l.Email, l.Message, l.PropertyID, l.Language, l.Notified, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

// List returns a page of leads, newest first, with the overall count
func (r *Repository) List(ctx context.Context, limit, offset int) ([]Lead, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM leads`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leads: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, phone, email, message, property_id, language, notified, created_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leads: %w", err)
	}

	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Lead, error) {
		var l Lead
		err := row.Scan(&l.ID, &l.Name, &l.Phone, &l.Email, &l.Message, &l.PropertyID, &l.Language, &l.Notified, &l.CreatedAt)
		return l, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan leads: %w", err)
	}
	return list, total, nil
}

// MarkNotified flags a lead whose SMS went out
func (r *Repository) MarkNotified(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE leads SET notified = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark lead notified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

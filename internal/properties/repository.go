package properties

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned by writes that matched no listing
var ErrNotFound = errors.New("property not found")

// Shared column list for property queries
const propertyColumns = `
	p.id, p.title, p.description, p.type, p.category,
	p.price::float8, p.neighborhood, p.city, p.state,
	p.bedrooms, p.bathrooms, p.area::float8,
	COALESCE((SELECT array_agg(pi.url ORDER BY pi.position)
		FROM property_images pi WHERE pi.property_id = p.id), '{}'),
	p.main_image_index, p.is_featured,
	p.created_at, p.updated_at`

// scanProperty scans a row into a Property
func scanProperty(scan func(dest ...interface{}) error) (Property, error) {
	p := Property{}
	err := scan(
		&p.ID, &p.Title, &p.Description, &p.Type, &p.Category,
		&p.Price, &p.Neighborhood, &p.City, &p.State,
		&p.Bedrooms, &p.Bathrooms, &p.Area,
		&p.ImageURLs,
		&p.MainImageIndex, &p.IsFeatured,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return p, err
	}
	p.State = strings.TrimSpace(p.State)
	p.Location = FormatLocation(p.Neighborhood, p.City, p.State)
	return p, nil
}

// Repository handles property data access
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new property repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// buildFilters constructs WHERE clauses and args from filters
func buildFilters(filters *Filters) (string, []interface{}, int) {
	var where []string
	args := []interface{}{}
	argIdx := 1

	add := func(clause string, arg interface{}) {
		where = append(where, fmt.Sprintf(clause, argIdx))
		args = append(args, arg)
		argIdx++
	}

	if filters == nil {
		return "TRUE", args, argIdx
	}

	if filters.FeaturedOnly {
		where = append(where, "p.is_featured")
	}
	if filters.Category != "" {
		add("p.category = $%d", filters.Category)
	}
	if filters.Type != "" {
		add("p.type = $%d", filters.Type)
	}
	if filters.City != "" {
		add("p.city = $%d", filters.City)
	}
	if filters.Neighborhood != "" {
		add("p.neighborhood = $%d", filters.Neighborhood)
	}
	if filters.State != "" {
		add("p.state = $%d", filters.State)
	}

	if r, ok, err := ParsePriceRange(filters.Price); err != nil {
		where = append(where, "FALSE")
	} else if ok {
		add("p.price >= $%d", r.Min)
		if !r.Unbounded() {
			add("p.price <= $%d", r.Max)
		}
	}

	if filters.MinBedrooms != nil {
		add("p.bedrooms >= $%d", *filters.MinBedrooms)
	}
	if filters.MaxBedrooms != nil {
		add("p.bedrooms <= $%d", *filters.MaxBedrooms)
	}

	if term := strings.TrimSpace(filters.Search); term != "" {
		where = append(where, fmt.Sprintf(
			"(p.title ILIKE $%[1]d OR p.city ILIKE $%[1]d OR p.neighborhood ILIKE $%[1]d)", argIdx))
		args = append(args, "%"+escapeLike(term)+"%")
		argIdx++
	}

	if len(where) == 0 {
		return "TRUE", args, argIdx
	}
	return strings.Join(where, " AND "), args, argIdx
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// List returns a page of listings matching filters, newest first, and the total match count
func (r *Repository) List(ctx context.Context, filters *Filters, limit, offset int) ([]Property, int, error) {
	whereClause, args, argIdx := buildFilters(filters)

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM properties p WHERE %s`, whereClause)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM properties p WHERE %s ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d`,
		propertyColumns, whereClause, argIdx, argIdx+1)
	args = append(args, limit, offset)

	list, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListFeatured returns every featured listing, newest first
func (r *Repository) ListFeatured(ctx context.Context) ([]Property, error) {
	query := fmt.Sprintf(`SELECT %s FROM properties p WHERE p.is_featured ORDER BY p.created_at DESC`, propertyColumns)
	return r.query(ctx, query)
}

func (r *Repository) query(ctx context.Context, query string, args ...interface{}) ([]Property, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Property
	for rows.Next() {
		p, err := scanProperty(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID returns a single listing; pgx.ErrNoRows when it does not exist
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Property, error) {
	query := fmt.Sprintf(`SELECT %s FROM properties p WHERE p.id = $1`, propertyColumns)
	p, err := scanProperty(func(dest ...interface{}) error {
		return r.db.QueryRow(ctx, query, id).Scan(dest...)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a listing and its photos
func (r *Repository) Create(ctx context.Context, p *Property) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO properties (
				id, title, description, type, category, price,
				neighborhood, city, state, bedrooms, bathrooms, area,
				main_image_index, is_featured, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
			p.ID, p.Title, p.Description, p.Type, p.Category, p.Price,
			p.Neighborhood, p.City, p.State, p.Bedrooms, p.Bathrooms, p.Area,
			p.MainImageIndex, p.IsFeatured, p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert property: %w", err)
		}
		return insertImages(ctx, tx, p.ID, p.ImageURLs)
	})
}

// Update replaces a listing's fields and photos; ErrNotFound when the id is unknown
func (r *Repository) Update(ctx context.Context, p *Property) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE properties SET
				title = $2, description = $3, type = $4, category = $5, price = $6,
				neighborhood = $7, city = $8, state = $9, bedrooms = $10, bathrooms = $11,
				area = $12, main_image_index = $13, is_featured = $14, updated_at = $15
			WHERE id = $1`,
			p.ID, p.Title, p.Description, p.Type, p.Category, p.Price,
			p.Neighborhood, p.City, p.State, p.Bedrooms, p.Bathrooms,
			p.Area, p.MainImageIndex, p.IsFeatured, p.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update property: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM property_images WHERE property_id = $1`, p.ID); err != nil {
			return fmt.Errorf("clear images: %w", err)
		}
		return insertImages(ctx, tx, p.ID, p.ImageURLs)
	})
}

func insertImages(ctx context.Context, tx pgx.Tx, propertyID uuid.UUID, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i, u := range urls {
		batch.Queue(`INSERT INTO property_images (property_id, position, url) VALUES ($1, $2, $3)`, propertyID, i, u)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert images: %w", err)
	}
	return nil
}

// Delete removes a listing; its photos cascade. ErrNotFound when the id is unknown.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByState returns the number of listings per state
func (r *Repository) CountByState(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `SELECT state, COUNT(*) FROM properties GROUP BY state`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var state string
		var n int
		if err := rows.Scan(&state, &n); err != nil {
			return nil, err
		}
		counts[strings.TrimSpace(state)] = n
	}
	return counts, rows.Err()
}

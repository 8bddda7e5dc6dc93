package repository

import (
	"context"
	"database/sql"

	"github.com/villastay/property-reservation/internal/model"
)

// PropertyRepo provides read access to the property catalog.  The catalog
// itself is managed elsewhere; this service only lists entries and seeds
// the initial rows at startup.
type PropertyRepo struct {
	db *sql.DB
}

// NewPropertyRepo returns a new PropertyRepo bound to the given database.
func NewPropertyRepo(db *sql.DB) *PropertyRepo { return &PropertyRepo{db: db} }

// List returns every property ordered by id.
func (r *PropertyRepo) List(ctx context.Context) ([]model.Property, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, location, price, description, image_url, created_at FROM properties ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	props := make([]model.Property, 0)
	for rows.Next() {
		var p model.Property
		if err := rows.Scan(&p.ID, &p.Name, &p.Location, &p.Price, &p.Description, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return props, nil
}

// GetByID fetches a single property.  sql.ErrNoRows is returned when the
// property does not exist.
func (r *PropertyRepo) GetByID(ctx context.Context, id uint64) (model.Property, error) {
	var p model.Property
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, location, price, description, image_url, created_at FROM properties WHERE id = ? LIMIT 1`,
		id).Scan(&p.ID, &p.Name, &p.Location, &p.Price, &p.Description, &p.ImageURL, &p.CreatedAt)
	return p, err
}

// Seed inserts the given properties when their ids are not yet present.
// Existing rows are left untouched, so restarts do not duplicate or reset
// catalog entries.
func (r *PropertyRepo) Seed(ctx context.Context, props []model.Property) error {
	for _, p := range props {
		var exists uint64
		err := r.db.QueryRowContext(ctx,
			`SELECT id FROM properties WHERE id = ? LIMIT 1`, p.ID).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return err
		}
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO properties (id, name, location, price, description, image_url) VALUES (?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Location, p.Price, p.Description, p.ImageURL); err != nil {
			return err
		}
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/villastay/property-reservation/internal/model"
)

// FeedbackRepo stores free-text property reviews.
type FeedbackRepo struct {
	db *sql.DB
}

// NewFeedbackRepo returns a new FeedbackRepo bound to the given database.
func NewFeedbackRepo(db *sql.DB) *FeedbackRepo { return &FeedbackRepo{db: db} }

// Create inserts a feedback entry and populates its generated ID.
// Referential integrity on the property is enforced by the FK; a 1452
// violation is surfaced as ErrNotFound.
func (r *FeedbackRepo) Create(ctx context.Context, f *model.Feedback) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO feedback (property_id, comment, rating) VALUES (?, ?, ?)`,
		f.PropertyID, f.Comment, f.Rating)
	if err != nil {
		if strings.Contains(err.Error(), "1452") {
			return ErrNotFound
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)
	return nil
}

// ListByProperty returns all feedback for a property, newest first.
func (r *FeedbackRepo) ListByProperty(ctx context.Context, propertyID uint64) ([]model.Feedback, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, property_id, comment, rating, created_at FROM feedback WHERE property_id = ? ORDER BY created_at DESC`,
		propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]model.Feedback, 0)
	for rows.Next() {
		var f model.Feedback
		if err := rows.Scan(&f.ID, &f.PropertyID, &f.Comment, &f.Rating, &f.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

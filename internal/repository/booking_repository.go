package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/villastay/property-reservation/internal/booking"
	"github.com/villastay/property-reservation/internal/model"
)

// BookingRepo is the MySQL implementation of booking.Store.  All dates are
// stored in DATE columns; parseTime=true on the driver makes them scan
// into time.Time at midnight UTC.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// Create inserts a new booking if, and only if, its range does not
// intersect any existing booking for the property.  The check and the
// insert run in one transaction under a FOR UPDATE lock on the property
// row, so two concurrent reservations for the same property are
// serialized and cannot both pass the overlap check.  Reservations for
// different properties proceed in parallel.
//
// Contract errors: booking.ErrPropertyNotFound when the property row is
// missing, booking.ErrOverlap on a conflicting range, and
// booking.ErrUserNotFound when the user foreign key is violated.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Lock the property row. This is the per-property serialization point.
	var propertyID uint64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM properties WHERE id = ? FOR UPDATE`,
		b.PropertyID).Scan(&propertyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return booking.ErrPropertyNotFound
		}
		return err
	}

	// Every booking counts against availability, terminated ones included.
	ranges, err := rangesByPropertyTx(ctx, tx, b.PropertyID)
	if err != nil {
		return err
	}
	if booking.Overlaps(ranges, booking.DateRange{Start: b.InTime, End: b.OutTime}) {
		return booking.ErrOverlap
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO bookings (property_id, user_id, in_time, out_time, status) VALUES (?, ?, ?, ?, ?)`,
		b.PropertyID, b.UserID, b.InTime, b.OutTime, b.Status)
	if err != nil {
		// 1452: FK violation. The property FK cannot fire here (row is
		// locked above), so this is the user reference.
		if strings.Contains(err.Error(), "1452") {
			return booking.ErrUserNotFound
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	// Query the row back to populate the DB-assigned timestamp.
	if err := tx.QueryRowContext(ctx,
		`SELECT created_at FROM bookings WHERE id = ?`, b.ID).Scan(&b.CreatedAt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// RangesByProperty returns the date range of every booking for the
// property in insertion order, regardless of status.
func (r *BookingRepo) RangesByProperty(ctx context.Context, propertyID uint64) ([]booking.DateRange, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT in_time, out_time FROM bookings WHERE property_id = ? ORDER BY id`,
		propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRanges(rows)
}

func rangesByPropertyTx(ctx context.Context, tx *sql.Tx, propertyID uint64) ([]booking.DateRange, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT in_time, out_time FROM bookings WHERE property_id = ? ORDER BY id`,
		propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRanges(rows)
}

func scanRanges(rows *sql.Rows) ([]booking.DateRange, error) {
	ranges := make([]booking.DateRange, 0)
	for rows.Next() {
		var dr booking.DateRange
		if err := rows.Scan(&dr.Start, &dr.End); err != nil {
			return nil, err
		}
		ranges = append(ranges, dr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ranges, nil
}

// ActiveByUser lists the user's reservations whose out_time is on or
// after today, newest first, joined with the property name.  Activity is
// decided by date, not by the status column.
func (r *BookingRepo) ActiveByUser(ctx context.Context, userID uint64, today time.Time) ([]model.ReservationDetail, error) {
	return r.listByUser(ctx, userID, today, ">=")
}

// PastByUser lists the complement: reservations whose out_time is
// strictly before today.
func (r *BookingRepo) PastByUser(ctx context.Context, userID uint64, today time.Time) ([]model.ReservationDetail, error) {
	return r.listByUser(ctx, userID, today, "<")
}

func (r *BookingRepo) listByUser(ctx context.Context, userID uint64, today time.Time, op string) ([]model.ReservationDetail, error) {
	q := `SELECT b.id, b.property_id, p.name, b.in_time, b.out_time, b.status
	      FROM bookings b
	      JOIN properties p ON p.id = b.property_id
	      WHERE b.user_id = ? AND b.out_time ` + op + ` ?
	      ORDER BY b.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := make([]model.ReservationDetail, 0)
	for rows.Next() {
		var d model.ReservationDetail
		var in, out time.Time
		if err := rows.Scan(&d.ID, &d.PropertyID, &d.PropertyName, &in, &out, &d.Status); err != nil {
			return nil, err
		}
		d.InTime = booking.FormatDate(in)
		d.OutTime = booking.FormatDate(out)
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

// TerminateExpired marks active bookings whose out_time has passed as
// terminated.  Safe to run repeatedly: once a booking is terminated the
// WHERE clause no longer matches it.
func (r *BookingRepo) TerminateExpired(ctx context.Context, today time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = ? WHERE status = ? AND out_time < ?`,
		model.StatusTerminated, model.StatusActive, today)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

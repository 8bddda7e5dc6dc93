package booking

import (
	"context"
	"log"
	"time"

	"github.com/villastay/property-reservation/internal/model"
)

// Store is the durable record of bookings consumed by the Engine.  The
// single shared mutable resource of the service; implementations must
// make Create atomic with respect to concurrent Create calls for the
// same property (check-and-insert under a property-scoped lock) and
// surface a racing insert as ErrOverlap.
type Store interface {
	// Create persists a new booking after verifying, atomically, that its
	// range does not intersect any existing booking for the property.  On
	// success the booking's ID and CreatedAt are populated.  Contract
	// errors: ErrOverlap, ErrPropertyNotFound, ErrUserNotFound.
	Create(ctx context.Context, b *model.Booking) error

	// RangesByProperty returns the date ranges of every booking for the
	// property, regardless of status, in query order.
	RangesByProperty(ctx context.Context, propertyID uint64) ([]DateRange, error)

	// ActiveByUser returns the user's reservations whose out_time is on or
	// after today, joined with the property name.
	ActiveByUser(ctx context.Context, userID uint64, today time.Time) ([]model.ReservationDetail, error)

	// PastByUser returns the complement: reservations whose out_time is
	// strictly before today.
	PastByUser(ctx context.Context, userID uint64, today time.Time) ([]model.ReservationDetail, error)

	// TerminateExpired marks every active booking whose out_time is before
	// today as terminated and returns the number of rows changed.
	TerminateExpired(ctx context.Context, today time.Time) (int64, error)
}

// Engine orchestrates validation, overlap checking and persistence for
// reservations.  It owns no state beyond its collaborators and is safe
// for concurrent use.
type Engine struct {
	store Store
	clock Clock
}

// NewEngine constructs an Engine over the given store and clock.
func NewEngine(store Store, clock Clock) *Engine {
	if store == nil || clock == nil {
		panic("nil dependency passed to NewEngine")
	}
	return &Engine{store: store, clock: clock}
}

// Reserve validates and persists a new booking.  Validation failures are
// reported in a fixed order: date format, past check-in, inverted range.
// The overlap check and the insert happen atomically inside the store.
func (e *Engine) Reserve(ctx context.Context, propertyID, userID uint64, inTime, outTime string) (*model.Booking, error) {
	in, err := ParseDate(inTime)
	if err != nil {
		return nil, ErrInvalidDate
	}
	out, err := ParseDate(outTime)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if in.Before(e.clock.Today()) {
		return nil, ErrPastDate
	}
	if in.After(out) {
		return nil, ErrInvalidRange
	}
	b := &model.Booking{
		PropertyID: propertyID,
		UserID:     userID,
		InTime:     in,
		OutTime:    out,
		Status:     model.StatusActive,
	}
	if err := e.store.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// ReservedDates expands every booking of the property, regardless of
// status, into the full list of occupied calendar days.  Expansions are
// concatenated in the order the store returns them; no deduplication is
// performed because the overlap invariant keeps ranges disjoint.
func (e *Engine) ReservedDates(ctx context.Context, propertyID uint64) ([]string, error) {
	ranges, err := e.store.RangesByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0)
	for _, r := range ranges {
		dates = append(dates, r.Days()...)
	}
	return dates, nil
}

// ActiveReservations lists the user's reservations that have not yet
// ended.  Activity is derived from out_time against today's date, not
// from the stored status column, which may be stale until a sweep runs.
func (e *Engine) ActiveReservations(ctx context.Context, userID uint64) ([]model.ReservationDetail, error) {
	return e.store.ActiveByUser(ctx, userID, e.clock.Today())
}

// PastReservations lists the user's reservations whose out_time has
// passed.
func (e *Engine) PastReservations(ctx context.Context, userID uint64) ([]model.ReservationDetail, error) {
	return e.store.PastByUser(ctx, userID, e.clock.Today())
}

// SweepExpired terminates every active booking whose out_time is strictly
// before today.  The operation is idempotent: repeated sweeps change
// nothing once all eligible bookings are terminated.  It returns the
// number of bookings transitioned.
func (e *Engine) SweepExpired(ctx context.Context) (int64, error) {
	n, err := e.store.TerminateExpired(ctx, e.clock.Today())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Printf("sweep: terminated %d expired booking(s)", n)
	}
	return n, nil
}

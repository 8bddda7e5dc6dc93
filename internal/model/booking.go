package model

import "time"

// Booking statuses.  A booking is created active and is moved to
// terminated exactly once by the expiration sweep.
const (
	StatusActive     = "active"
	StatusTerminated = "terminated"
)

// Booking records a user's reservation of a property over a closed range
// of calendar days.  InTime and OutTime are DATE columns; both endpoints
// are occupied.
//
// Fields:
//  ID         – primary key identifier, assigned by the store.
//  PropertyID – property being reserved.
//  UserID     – user who made the reservation.
//  InTime     – first occupied day.
//  OutTime    – last occupied day; InTime <= OutTime.
//  Status     – active or terminated.
//  CreatedAt  – creation timestamp, immutable.
type Booking struct {
	ID         uint64    // bookings.id
	PropertyID uint64    // bookings.property_id
	UserID     uint64    // bookings.user_id
	InTime     time.Time // bookings.in_time
	OutTime    time.Time // bookings.out_time
	Status     string    // bookings.status
	CreatedAt  time.Time // bookings.created_at
}

// ReservationDetail is the read projection returned by the per-user
// reservation listings.  It joins the booking with its property name and
// renders dates in wire format.  "Active" in these listings is derived
// from OutTime against the current date, not from Status, which may lag
// until the sweep runs.
type ReservationDetail struct {
	ID           uint64 `json:"booking_id"`
	PropertyID   uint64 `json:"property_id"`
	PropertyName string `json:"property_name"`
	InTime       string `json:"in_time"`
	OutTime      string `json:"out_time"`
	Status       string `json:"status"`
}

// Package booking implements the reservation engine: validation and
// creation of bookings, reserved-date enumeration and expiration sweeps.
// The sentinel errors below form the engine's failure taxonomy.  Handlers
// compare against them with errors.Is to pick HTTP status codes; anything
// that does not match is a storage failure and must not leak detail to
// the client.
package booking

import "errors"

// ErrInvalidDate is returned when a date does not parse as YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

// ErrPastDate is returned when a reservation starts before the current date.
var ErrPastDate = errors.New("cannot reserve past dates")

// ErrInvalidRange is returned when the check-in date is after the check-out
// date.
var ErrInvalidRange = errors.New("check-in date is after check-out date")

// ErrOverlap is returned when the requested range intersects an existing
// booking for the same property.  Stores must also surface racing inserts
// as ErrOverlap so concurrent callers observe the same failure mode.
var ErrOverlap = errors.New("property already reserved for these dates")

// ErrPropertyNotFound is returned when the referenced property does not exist.
var ErrPropertyNotFound = errors.New("property not found")

// ErrUserNotFound is returned when the referenced user does not exist.
var ErrUserNotFound = errors.New("user not found")

package booking

import "time"

// Clock supplies the current calendar date.  The engine never calls
// time.Now directly; injecting a Clock keeps every date comparison
// deterministic under test.
type Clock interface {
	Today() time.Time
}

// SystemClock is the production Clock.  It returns the server's current
// calendar date as midnight UTC, the same instant ParseDate produces and
// the database stores, so date comparisons never skew across zones.
type SystemClock struct{}

// Today returns the current date at midnight UTC.
func (SystemClock) Today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package booking

import "time"

// DateLayout is the wire format for all calendar dates handled by the
// engine.
const DateLayout = "2006-01-02"

// DateRange is a closed interval of calendar days.  Both endpoints are
// occupied nights: [Start, End] includes Start, End and every day between.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDate parses a YYYY-MM-DD string into a date at midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a date in YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Intersects reports whether two closed ranges share at least one day.
// Shared endpoints count: [10,12] and [12,14] intersect on the 12th.
func (r DateRange) Intersects(other DateRange) bool {
	return !r.Start.After(other.End) && !r.End.Before(other.Start)
}

// Days expands the range into the full ordered list of dates it spans,
// inclusive of both endpoints, formatted as YYYY-MM-DD strings.
func (r DateRange) Days() []string {
	days := make([]string, 0)
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, FormatDate(d))
	}
	return days
}

// Overlaps is the availability predicate for a property: it returns true
// iff the candidate range intersects any existing range.  Existing ranges
// must include every booking for the property regardless of status, so a
// historical occupancy window can never be double-booked retroactively.
func Overlaps(existing []DateRange, candidate DateRange) bool {
	for _, r := range existing {
		if r.Intersects(candidate) {
			return true
		}
	}
	return false
}

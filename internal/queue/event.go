// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a reservation is successfully
// created.  It carries enough information for downstream consumers to
// log or notify without querying the primary database.
type BookingCreatedEvent struct {
	BookingID  uint64 `json:"booking_id"`
	PropertyID uint64 `json:"property_id"`
	UserID     uint64 `json:"user_id"`
	InTime     string `json:"in_time"`
	OutTime    string `json:"out_time"`
	CreatedAt  string `json:"created_at"`
}

// SweepRequestedEvent asks the background worker to run an expiration
// sweep.  The HTTP caller receives the JobID immediately and never
// observes the sweep's outcome directly.
type SweepRequestedEvent struct {
	JobID       string `json:"job_id"`
	RequestedAt string `json:"requested_at"`
}

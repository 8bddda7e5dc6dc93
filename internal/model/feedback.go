package model

import "time"

// Feedback is a free-text review of a property with a 1..5 rating.
type Feedback struct {
	ID         uint64    `json:"id"`          // feedback.id
	PropertyID uint64    `json:"property_id"` // feedback.property_id
	Comment    string    `json:"comment"`     // feedback.comment
	Rating     int       `json:"rating"`      // feedback.rating
	CreatedAt  time.Time `json:"created_at"`  // feedback.created_at
}

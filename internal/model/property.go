package model

import "time"

// Property is a rentable catalog entry.  The engine only depends on its
// identity; the remaining fields exist for catalog reads and the
// property-name join in reservation listings.
type Property struct {
	ID          uint64    `json:"id"`          // properties.id
	Name        string    `json:"name"`        // properties.name
	Location    string    `json:"location"`    // properties.location
	Price       float64   `json:"price"`       // properties.price
	Description string    `json:"description"` // properties.description
	ImageURL    string    `json:"image_url"`   // properties.image_url
	CreatedAt   time.Time `json:"created_at"`  // properties.created_at
}

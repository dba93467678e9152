package model

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a purchasable item belonging to exactly one venue.
type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	VenueID     uuid.UUID `json:"venueId" db:"venue_id"`
	Name        string    `json:"name" db:"name"`
	Price       float64   `json:"price" db:"price"`
	Description string    `json:"description" db:"description"`
	Image       string    `json:"image" db:"image"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// ProductRequest represents the payload for creating or updating a product.
type ProductRequest struct {
	VenueID     uuid.UUID `json:"venueId"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
}

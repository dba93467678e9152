package model

import (
	"time"

	"github.com/google/uuid"
)

// Venue represents a partner location offering a deal.
// Venues are immutable once created; no update or delete path exists.
type Venue struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	City        string    `json:"city" db:"city"`
	Description string    `json:"description" db:"description"`
	Lat         float64   `json:"lat" db:"lat"`
	Lng         float64   `json:"lng" db:"lng"`
	Deal        string    `json:"deal" db:"deal"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// VenueRequest represents the payload for creating a venue.
type VenueRequest struct {
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Deal        string  `json:"deal"`
}

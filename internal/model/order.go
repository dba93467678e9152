package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus enumerates the order lifecycle states.
type OrderStatus string

const (
	// StatusPlaced is the initial status of every order.
	StatusPlaced OrderStatus = "placed"
	// StatusReady is the terminal status, set when the partner marks the
	// order ready for pickup.
	StatusReady OrderStatus = "ready"
)

// Valid reports whether s is a recognised order status.
func (s OrderStatus) Valid() bool {
	return s == StatusPlaced || s == StatusReady
}

// CanTransitionTo reports whether the transition from s to next is allowed.
// The only permitted transition is placed -> ready.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return s == StatusPlaced && next == StatusReady
}

// Order represents a customer's paid cart, bound to a single venue.
// Total and QRCode are fixed at creation time and never recomputed.
type Order struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	VenueID   uuid.UUID   `json:"venueId" db:"venue_id"`
	Customer  string      `json:"customer,omitempty" db:"customer"`
	Status    OrderStatus `json:"status" db:"status"`
	Total     float64     `json:"total" db:"total"`
	QRCode    string      `json:"qr_code" db:"qr_code"`
	Items     []OrderItem `json:"items"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time   `json:"updatedAt" db:"updated_at"`
}

// OrderItem represents a line item in an order. UnitPrice snapshots the
// stored product price at creation time so the persisted total stays
// auditable even if the product is later changed or deleted.
type OrderItem struct {
	ID        uuid.UUID `json:"-" db:"id"`
	OrderID   uuid.UUID `json:"-" db:"order_id"`
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
	Quantity  int       `json:"qty" db:"quantity"`
	UnitPrice float64   `json:"unitPrice" db:"unit_price"`
}

// OrderRequest represents the request payload for creating an order.
type OrderRequest struct {
	VenueID  uuid.UUID          `json:"venue_id"`
	Customer string             `json:"customer,omitempty"`
	Items    []OrderItemRequest `json:"items"`
}

// OrderItemRequest represents a single item in an order request. Prices are
// deliberately absent: totals are always computed from stored prices.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"qty"`
}

// StatusUpdateRequest represents the payload for a status transition.
type StatusUpdateRequest struct {
	Status OrderStatus `json:"status"`
}

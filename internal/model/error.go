package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeEmptyCart         = "EMPTY_CART"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeInvalidPrice      = "INVALID_PRICE"
	ErrCodeVenueNotFound     = "VENUE_NOT_FOUND"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeProductWrongVenue = "PRODUCT_WRONG_VENUE"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError carries a stable error code alongside a human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrEmptyCart         = NewDomainError(ErrCodeEmptyCart, "Order must contain at least one item")
	ErrInvalidQuantity   = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be at least one")
	ErrInvalidPrice      = NewDomainError(ErrCodeInvalidPrice, "Price must not be negative")
	ErrVenueNotFound     = NewDomainError(ErrCodeVenueNotFound, "Venue not found")
	ErrProductNotFound   = NewDomainError(ErrCodeProductNotFound, "One or more products not found")
	ErrProductWrongVenue = NewDomainError(ErrCodeProductWrongVenue, "Product belongs to a different venue")
	ErrOrderNotFound     = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidTransition = NewDomainError(ErrCodeInvalidTransition, "Order status transition not allowed")
)

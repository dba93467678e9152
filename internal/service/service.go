package service

import (
	"context"

	"dealmap/internal/model"

	"github.com/google/uuid"
)

// CatalogService defines operations for venue and product management.
type CatalogService interface {
	// ListVenues retrieves all venues in creation order.
	ListVenues(ctx context.Context) ([]model.Venue, error)

	// ListProducts retrieves the products of a venue. Fails with
	// ErrVenueNotFound when the venue does not exist; a venue without
	// products yields an empty slice.
	ListProducts(ctx context.Context, venueID uuid.UUID) ([]model.Product, error)

	// ListAllProducts retrieves every product (partner view).
	ListAllProducts(ctx context.Context) ([]model.Product, error)

	// CreateVenue validates and persists a new venue.
	CreateVenue(ctx context.Context, req *model.VenueRequest) (*model.Venue, error)

	// CreateProduct validates and persists a new product.
	CreateProduct(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// UpdateProduct overwrites an existing product's fields.
	UpdateProduct(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error)

	// DeleteProduct removes a product from the catalog. Existing orders
	// keep their line-item snapshots.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// OrderService defines operations for order management.
type OrderService interface {
	// CreateOrder creates a new order from a cart payload. The total is
	// computed from stored prices; client-supplied prices are never used.
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// GetOrder retrieves an order by its ID with all line items.
	GetOrder(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// UpdateStatus applies a status transition. The only allowed
	// transition is placed -> ready.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error)

	// ListOrders retrieves all orders, most recent first (partner view).
	ListOrders(ctx context.Context) ([]model.Order, error)
}

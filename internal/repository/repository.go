package repository

import (
	"context"

	"dealmap/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// VenueRepository defines the interface for venue data access operations.
type VenueRepository interface {
	// GetAll retrieves all venues in creation order.
	GetAll(ctx context.Context) ([]model.Venue, error)

	// GetByID retrieves a single venue by its ID. Returns nil when the
	// venue does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Venue, error)

	// Create inserts a new venue.
	Create(ctx context.Context, venue *model.Venue) error

	// Count returns the number of venues.
	Count(ctx context.Context) (int, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves all products in creation order.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByVenue retrieves all products belonging to the given venue.
	GetByVenue(ctx context.Context, venueID uuid.UUID) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when the
	// product does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetByIDsTx retrieves multiple products by their IDs within the
	// provided transaction, so callers read a consistent price snapshot.
	GetByIDsTx(ctx context.Context, tx pgx.Tx, ids []uuid.UUID) ([]model.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// Update overwrites the mutable fields of an existing product.
	// Returns false when the product does not exist.
	Update(ctx context.Context, product *model.Product) (bool, error)

	// Delete removes a product. Returns false when the product does not
	// exist. Existing order line items are unaffected.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items. Returns
	// nil when the order does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// GetAll retrieves all orders with their items, most recent first.
	GetAll(ctx context.Context) ([]model.Order, error)

	// UpdateStatus transitions an order from one status to another with a
	// single conditional write. Returns false when no row matched, either
	// because the order does not exist or it was not in the expected status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.OrderStatus) (bool, error)
}

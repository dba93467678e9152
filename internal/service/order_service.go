package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"dealmap/internal/model"
	"dealmap/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	venueRepo   repository.VenueRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	venueRepo repository.VenueRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		venueRepo:   venueRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// CreateOrder creates a new order from a cart payload. Prices are read
// inside the creation transaction so the total reflects a consistent
// snapshot of the stored catalog, never client-supplied values.
func (s *orderService) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	if err := s.validateOrderRequest(req); err != nil {
		return nil, err
	}

	venue, err := s.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		s.logger.Error().Err(err).Str("venue_id", req.VenueID.String()).Msg("failed to get venue")
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	if venue == nil {
		return nil, model.ErrVenueNotFound
	}

	productIDs := make([]uuid.UUID, len(req.Items))
	for i, item := range req.Items {
		productIDs[i] = item.ProductID
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	products, err := s.productRepo.GetByIDsTx(ctx, tx, productIDs)
	if err != nil {
		s.logger.Error().Err(err).Int("product_count", len(productIDs)).Msg("failed to load products")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	priceByID := make(map[uuid.UUID]float64, len(products))
	for _, p := range products {
		if p.VenueID != req.VenueID {
			// Single-venue cart: a product under another venue is
			// rejected even though it exists.
			err = model.ErrProductWrongVenue
			s.logger.Warn().
				Str("product_id", p.ID.String()).
				Str("product_venue_id", p.VenueID.String()).
				Str("order_venue_id", req.VenueID.String()).
				Msg("cart references product from another venue")
			return nil, err
		}
		priceByID[p.ID] = p.Price
	}

	now := time.Now()
	order := &model.Order{
		ID:        uuid.New(),
		VenueID:   req.VenueID,
		Customer:  req.Customer,
		Status:    model.StatusPlaced,
		QRCode:    uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	var total float64
	orderItems := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		price, ok := priceByID[item.ProductID]
		if !ok {
			err = model.ErrProductNotFound
			s.logger.Warn().
				Str("product_id", item.ProductID.String()).
				Msg("cart references unknown product")
			return nil, err
		}

		total += price * float64(item.Quantity)
		orderItems[i] = model.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: price,
		}
	}
	order.Total = math.Round(total*100) / 100
	order.Items = orderItems

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("venue_id", order.VenueID.String()).
		Int("item_count", len(orderItems)).
		Float64("total", order.Total).
		Msg("order created successfully")

	return order, nil
}

// GetOrder retrieves an order by its ID with all line items.
func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	return order, nil
}

// UpdateStatus applies a status transition. The only allowed transition is
// placed -> ready; re-applying ready to a ready order is rejected.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, model.NewDomainError(
			model.ErrCodeInvalidTransition,
			fmt.Sprintf("unrecognised status %q", status),
		)
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	if !order.Status.CanTransitionTo(status) {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("from", string(order.Status)).
			Str("to", string(status)).
			Msg("status transition rejected")
		return nil, model.ErrInvalidTransition
	}

	// The conditional write re-checks the current status, so a concurrent
	// transition between the read above and this update loses cleanly.
	updated, err := s.orderRepo.UpdateStatus(ctx, id, order.Status, status)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if !updated {
		return nil, model.ErrInvalidTransition
	}

	order.Status = status
	order.UpdatedAt = time.Now()

	s.logger.Info().
		Str("order_id", id.String()).
		Str("status", string(status)).
		Msg("order status updated")

	return order, nil
}

// ListOrders retrieves all orders, most recent first (partner view).
func (s *orderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	if orders == nil {
		orders = []model.Order{}
	}

	s.logger.Debug().Int("count", len(orders)).Msg("retrieved orders")

	return orders, nil
}

// validateOrderRequest validates the cart payload.
func (s *orderService) validateOrderRequest(req *model.OrderRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeMissingField, "order payload is required")
	}

	if len(req.Items) == 0 {
		return model.ErrEmptyCart
	}

	if req.VenueID == uuid.Nil {
		return model.NewDomainError(model.ErrCodeMissingField, "venue_id is required")
	}

	for i, item := range req.Items {
		if item.ProductID == uuid.Nil {
			return model.NewDomainError(
				model.ErrCodeMissingField,
				fmt.Sprintf("item %d: product_id is required", i),
			)
		}

		if item.Quantity < 1 {
			s.logger.Warn().
				Int("item_index", i).
				Str("product_id", item.ProductID.String()).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}
	}

	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"dealmap/internal/model"
	"dealmap/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	venueRepo   repository.VenueRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	venueRepo repository.VenueRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CatalogService {
	return &catalogService{
		venueRepo:   venueRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// ListVenues retrieves all venues in creation order.
func (s *catalogService) ListVenues(ctx context.Context) ([]model.Venue, error) {
	venues, err := s.venueRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list venues")
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}

	if venues == nil {
		venues = []model.Venue{}
	}

	s.logger.Debug().Int("count", len(venues)).Msg("retrieved venues")

	return venues, nil
}

// ListProducts retrieves the products of a venue.
func (s *catalogService) ListProducts(ctx context.Context, venueID uuid.UUID) ([]model.Product, error) {
	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		s.logger.Error().Err(err).Str("venue_id", venueID.String()).Msg("failed to get venue")
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	if venue == nil {
		return nil, model.ErrVenueNotFound
	}

	products, err := s.productRepo.GetByVenue(ctx, venueID)
	if err != nil {
		s.logger.Error().Err(err).Str("venue_id", venueID.String()).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	// A venue without products is an empty catalogue, not an error.
	if products == nil {
		products = []model.Product{}
	}

	return products, nil
}

// ListAllProducts retrieves every product (partner view).
func (s *catalogService) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list all products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if products == nil {
		products = []model.Product{}
	}

	return products, nil
}

// CreateVenue validates and persists a new venue.
func (s *catalogService) CreateVenue(ctx context.Context, req *model.VenueRequest) (*model.Venue, error) {
	if req == nil {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "venue payload is required")
	}
	if req.Name == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "venue name is required")
	}
	if req.Deal == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "venue deal is required")
	}

	venue := &model.Venue{
		ID:          uuid.New(),
		Name:        req.Name,
		City:        req.City,
		Description: req.Description,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Deal:        req.Deal,
		CreatedAt:   time.Now(),
	}

	if err := s.venueRepo.Create(ctx, venue); err != nil {
		s.logger.Error().Err(err).Str("venue_name", req.Name).Msg("failed to create venue")
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	s.logger.Info().
		Str("venue_id", venue.ID.String()).
		Str("venue_name", venue.Name).
		Msg("venue created")

	return venue, nil
}

// CreateProduct validates and persists a new product.
func (s *catalogService) CreateProduct(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if err := s.validateProductRequest(ctx, req); err != nil {
		return nil, err
	}

	product := &model.Product{
		ID:          uuid.New(),
		VenueID:     req.VenueID,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		CreatedAt:   time.Now(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("product_name", req.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("venue_id", product.VenueID.String()).
		Str("product_name", product.Name).
		Msg("product created")

	return product, nil
}

// UpdateProduct overwrites an existing product's fields.
func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error) {
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if existing == nil {
		return nil, model.ErrProductNotFound
	}

	// An omitted venue_id keeps the product on its current venue.
	if req != nil && req.VenueID == uuid.Nil {
		req.VenueID = existing.VenueID
	}

	if err := s.validateProductRequest(ctx, req); err != nil {
		return nil, err
	}

	product := &model.Product{
		ID:          id,
		VenueID:     req.VenueID,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		CreatedAt:   existing.CreatedAt,
	}

	updated, err := s.productRepo.Update(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if !updated {
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product updated")

	return product, nil
}

// DeleteProduct removes a product from the catalog.
func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !deleted {
		return model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product deleted")

	return nil
}

// validateProductRequest checks the product payload and its venue reference.
func (s *catalogService) validateProductRequest(ctx context.Context, req *model.ProductRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeMissingField, "product payload is required")
	}
	if req.Name == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "product name is required")
	}
	if req.Price < 0 {
		return model.ErrInvalidPrice
	}
	if req.VenueID == uuid.Nil {
		return model.NewDomainError(model.ErrCodeMissingField, "venue_id is required")
	}

	venue, err := s.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		s.logger.Error().Err(err).Str("venue_id", req.VenueID.String()).Msg("failed to get venue")
		return fmt.Errorf("failed to get venue: %w", err)
	}
	if venue == nil {
		return model.ErrVenueNotFound
	}

	return nil
}

package seed

import (
	"context"
	"fmt"
	"time"

	"dealmap/internal/model"
	"dealmap/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Seeder applies a seed catalog document to the data store at startup.
type Seeder struct {
	loader      Loader
	venueRepo   repository.VenueRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewSeeder creates a new catalog seeder.
func NewSeeder(
	loader Loader,
	venueRepo repository.VenueRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) *Seeder {
	return &Seeder{
		loader:      loader,
		venueRepo:   venueRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("component", "seeder").Logger(),
	}
}

// Run loads the catalog document at path and inserts its venues and
// products. Seeding is skipped when the venues table is non-empty, so
// restarts never duplicate the catalog.
func (s *Seeder) Run(ctx context.Context, path string) error {
	count, err := s.venueRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing catalog: %w", err)
	}
	if count > 0 {
		s.logger.Info().Int("venues", count).Msg("catalog already populated, skipping seed")
		return nil
	}

	doc, err := s.loader.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to load seed catalog: %w", err)
	}

	venuesCreated := 0
	productsCreated := 0
	for _, entry := range doc.Venues {
		venue := &model.Venue{
			ID:          uuid.New(),
			Name:        entry.Name,
			City:        entry.City,
			Description: entry.Description,
			Lat:         entry.Lat,
			Lng:         entry.Lng,
			Deal:        entry.Deal,
			CreatedAt:   time.Now(),
		}

		if err := s.venueRepo.Create(ctx, venue); err != nil {
			return fmt.Errorf("failed to seed venue %s: %w", entry.Name, err)
		}
		venuesCreated++

		for _, p := range entry.Products {
			product := &model.Product{
				ID:          uuid.New(),
				VenueID:     venue.ID,
				Name:        p.Name,
				Price:       p.Price,
				Description: p.Description,
				Image:       p.Image,
				CreatedAt:   time.Now(),
			}

			if err := s.productRepo.Create(ctx, product); err != nil {
				return fmt.Errorf("failed to seed product %s: %w", p.Name, err)
			}
			productsCreated++
		}
	}

	s.logger.Info().
		Int("venues", venuesCreated).
		Int("products", productsCreated).
		Msg("catalog seeded")

	return nil
}

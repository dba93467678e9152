package repository

import (
	"context"
	"fmt"

	"dealmap/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// venueRepository implements the VenueRepository interface using PostgreSQL.
type venueRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewVenueRepository creates a new PostgreSQL-backed venue repository.
func NewVenueRepository(pool *pgxpool.Pool, logger zerolog.Logger) VenueRepository {
	return &venueRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "venue").Logger(),
	}
}

// GetAll retrieves all venues in creation order.
func (r *venueRepository) GetAll(ctx context.Context) ([]model.Venue, error) {
	query := `
		SELECT id, name, city, description, lat, lng, deal, created_at
		FROM venues
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query venues")
		return nil, fmt.Errorf("failed to query venues: %w", err)
	}
	defer rows.Close()

	var venues []model.Venue
	for rows.Next() {
		var v model.Venue
		err := rows.Scan(&v.ID, &v.Name, &v.City, &v.Description, &v.Lat, &v.Lng, &v.Deal, &v.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan venue row")
			return nil, fmt.Errorf("failed to scan venue: %w", err)
		}
		venues = append(venues, v)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating venue rows")
		return nil, fmt.Errorf("error iterating venues: %w", err)
	}

	return venues, nil
}

// GetByID retrieves a single venue by its ID.
func (r *venueRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Venue, error) {
	query := `
		SELECT id, name, city, description, lat, lng, deal, created_at
		FROM venues
		WHERE id = $1
	`

	var v model.Venue
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.City, &v.Description, &v.Lat, &v.Lng, &v.Deal, &v.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("venue_id", id.String()).Msg("venue not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("venue_id", id.String()).Msg("failed to query venue")
		return nil, fmt.Errorf("failed to query venue: %w", err)
	}

	return &v, nil
}

// Create inserts a new venue.
func (r *venueRepository) Create(ctx context.Context, venue *model.Venue) error {
	query := `
		INSERT INTO venues (id, name, city, description, lat, lng, deal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		venue.ID, venue.Name, venue.City, venue.Description,
		venue.Lat, venue.Lng, venue.Deal, venue.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("venue_id", venue.ID.String()).Msg("failed to create venue")
		return fmt.Errorf("failed to create venue: %w", err)
	}

	r.logger.Debug().Str("venue_id", venue.ID.String()).Msg("venue created successfully")

	return nil
}

// Count returns the number of venues.
func (r *venueRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM venues`).Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count venues")
		return 0, fmt.Errorf("failed to count venues: %w", err)
	}
	return count, nil
}

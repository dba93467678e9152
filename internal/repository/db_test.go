package repository

import (
	"context"
	"testing"
	"time"

	"dealmap/internal/database"
	"dealmap/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer, applies the schema
// migrations and returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, pool, zerolog.Nop()))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// seedVenue inserts a venue directly and returns it.
func seedVenue(t *testing.T, pool *pgxpool.Pool, name, deal string) *model.Venue {
	t.Helper()

	venue := &model.Venue{
		ID:        uuid.New(),
		Name:      name,
		City:      "Almaty",
		Lat:       43.238949,
		Lng:       76.889709,
		Deal:      deal,
		CreatedAt: time.Now(),
	}

	_, err := pool.Exec(context.Background(), `
		INSERT INTO venues (id, name, city, description, lat, lng, deal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, venue.ID, venue.Name, venue.City, venue.Description, venue.Lat, venue.Lng, venue.Deal, venue.CreatedAt)
	require.NoError(t, err)

	return venue
}

// seedProduct inserts a product directly and returns it.
func seedProduct(t *testing.T, pool *pgxpool.Pool, venueID uuid.UUID, name string, price float64) *model.Product {
	t.Helper()

	product := &model.Product{
		ID:        uuid.New(),
		VenueID:   venueID,
		Name:      name,
		Price:     price,
		CreatedAt: time.Now(),
	}

	_, err := pool.Exec(context.Background(), `
		INSERT INTO products (id, venue_id, name, price, description, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, product.ID, product.VenueID, product.Name, product.Price, product.Description, product.Image, product.CreatedAt)
	require.NoError(t, err)

	return product
}

package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"dealmap/internal/database"
	"dealmap/internal/handler"
	"dealmap/internal/model"
	"dealmap/internal/repository"
	"dealmap/internal/router"
	"dealmap/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestPartnerAPIKey guards the partner routes in integration tests.
const TestPartnerAPIKey = "test-partner-key"

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, runs the schema
// migrations and returns a connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	if err := database.Migrate(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SetupTestServer wires repositories, services, handlers and the router
// the same way cmd/api does.
func SetupTestServer(t *testing.T, testDB *TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	venueRepo := repository.NewVenueRepository(testDB.Pool, logger)
	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)

	catalogService := service.NewCatalogService(venueRepo, productRepo, logger)
	orderService := service.NewOrderService(orderRepo, venueRepo, productRepo, logger)

	catalogHandler := handler.NewCatalogHandler(catalogService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)

	return router.New(catalogHandler, orderHandler, TestPartnerAPIKey, logger)
}

// SeedCatalog inserts a venue with two products and returns them.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) (*model.Venue, []model.Product) {
	t.Helper()

	ctx := context.Background()

	venue := &model.Venue{
		ID:        uuid.New(),
		Name:      "Cafe Aurora",
		City:      "Almaty",
		Lat:       43.238949,
		Lng:       76.889709,
		Deal:      "-30% on pastries after 18:00",
		CreatedAt: time.Now(),
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO venues (id, name, city, description, lat, lng, deal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, venue.ID, venue.Name, venue.City, venue.Description, venue.Lat, venue.Lng, venue.Deal, venue.CreatedAt)
	if err != nil {
		t.Fatalf("failed to seed venue: %v", err)
	}

	products := []model.Product{
		{ID: uuid.New(), VenueID: venue.ID, Name: "Croissant", Price: 150, CreatedAt: time.Now()},
		{ID: uuid.New(), VenueID: venue.ID, Name: "Cheesecake", Price: 300, CreatedAt: time.Now()},
	}

	for _, p := range products {
		_, err := pool.Exec(ctx, `
			INSERT INTO products (id, venue_id, name, price, description, image, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, p.ID, p.VenueID, p.Name, p.Price, p.Description, p.Image, p.CreatedAt)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.Name, err)
		}
	}

	return venue, products
}

// CleanupDB removes all data from the tables, keeping the schema.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "products", "venues"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}

package repository

import (
	"context"
	"testing"
	"time"

	"dealmap/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping repository test")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewProductRepository(pool, logger)

	ctx := context.Background()

	venue := seedVenue(t, pool, "Cafe Aurora", "-30% on pastries")
	other := seedVenue(t, pool, "Burger Spot", "2-for-1 after 20:00")

	t.Run("Create and GetByID", func(t *testing.T) {
		product := &model.Product{
			ID:          uuid.New(),
			VenueID:     venue.ID,
			Name:        "Croissant",
			Price:       150,
			Description: "Butter croissant",
			Image:       "https://img.example.com/croissant.jpg",
			CreatedAt:   time.Now(),
		}

		require.NoError(t, repo.Create(ctx, product))

		got, err := repo.GetByID(ctx, product.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, product.ID, got.ID)
		assert.Equal(t, venue.ID, got.VenueID)
		assert.Equal(t, "Croissant", got.Name)
		assert.Equal(t, 150.0, got.Price)
	})

	t.Run("GetByID returns nil for unknown product", func(t *testing.T) {
		got, err := repo.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("GetByVenue scopes to the venue", func(t *testing.T) {
		mine := seedProduct(t, pool, venue.ID, "Cheesecake", 300)
		theirs := seedProduct(t, pool, other.ID, "Double Burger", 1200)

		products, err := repo.GetByVenue(ctx, venue.ID)
		require.NoError(t, err)

		ids := make(map[uuid.UUID]bool, len(products))
		for _, p := range products {
			assert.Equal(t, venue.ID, p.VenueID)
			ids[p.ID] = true
		}
		assert.True(t, ids[mine.ID])
		assert.False(t, ids[theirs.ID])
	})

	t.Run("GetByVenue returns nothing for unknown venue", func(t *testing.T) {
		products, err := repo.GetByVenue(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("GetByIDsTx reads inside a transaction", func(t *testing.T) {
		a := seedProduct(t, pool, venue.ID, "Latte", 90)
		b := seedProduct(t, pool, venue.ID, "Americano", 70)

		tx, err := pool.Begin(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		products, err := repo.GetByIDsTx(ctx, tx, []uuid.UUID{a.ID, b.ID, uuid.New()})
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("GetByIDsTx with empty ID list", func(t *testing.T) {
		tx, err := pool.Begin(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		products, err := repo.GetByIDsTx(ctx, tx, nil)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Update overwrites mutable fields", func(t *testing.T) {
		product := seedProduct(t, pool, venue.ID, "Flat White", 100)

		product.Name = "Flat White XL"
		product.Price = 130
		product.Description = "Bigger cup"

		updated, err := repo.Update(ctx, product)
		require.NoError(t, err)
		assert.True(t, updated)

		got, err := repo.GetByID(ctx, product.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Flat White XL", got.Name)
		assert.Equal(t, 130.0, got.Price)
		assert.Equal(t, "Bigger cup", got.Description)
	})

	t.Run("Update returns false for unknown product", func(t *testing.T) {
		updated, err := repo.Update(ctx, &model.Product{
			ID:      uuid.New(),
			VenueID: venue.ID,
			Name:    "Ghost",
			Price:   1,
		})
		require.NoError(t, err)
		assert.False(t, updated)
	})

	t.Run("Delete removes the product", func(t *testing.T) {
		product := seedProduct(t, pool, venue.ID, "Espresso", 60)

		deleted, err := repo.Delete(ctx, product.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := repo.GetByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Delete returns false for unknown product", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// migration is a named, ordered schema change applied at startup.
type migration struct {
	Name string
	SQL  string
}

var migrations = []migration{
	{
		Name: "001_create_venues",
		SQL: `
			CREATE TABLE IF NOT EXISTS venues (
				id UUID PRIMARY KEY,
				name TEXT NOT NULL,
				city TEXT NOT NULL DEFAULT '',
				description TEXT NOT NULL DEFAULT '',
				lat DOUBLE PRECISION NOT NULL DEFAULT 0,
				lng DOUBLE PRECISION NOT NULL DEFAULT 0,
				deal TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)
		`,
	},
	{
		Name: "002_create_products",
		SQL: `
			CREATE TABLE IF NOT EXISTS products (
				id UUID PRIMARY KEY,
				venue_id UUID NOT NULL REFERENCES venues(id),
				name TEXT NOT NULL,
				price DOUBLE PRECISION NOT NULL CHECK (price >= 0),
				description TEXT NOT NULL DEFAULT '',
				image TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS idx_products_venue_id ON products (venue_id)
		`,
	},
	{
		Name: "003_create_orders",
		SQL: `
			CREATE TABLE IF NOT EXISTS orders (
				id UUID PRIMARY KEY,
				venue_id UUID NOT NULL REFERENCES venues(id),
				customer TEXT NOT NULL DEFAULT '',
				status TEXT NOT NULL DEFAULT 'placed',
				total DOUBLE PRECISION NOT NULL,
				qr_code TEXT NOT NULL UNIQUE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at DESC)
		`,
	},
	{
		Name: "004_create_order_items",
		SQL: `
			CREATE TABLE IF NOT EXISTS order_items (
				id UUID PRIMARY KEY,
				order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
				product_id UUID NOT NULL,
				quantity INT NOT NULL CHECK (quantity >= 1),
				unit_price DOUBLE PRECISION NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items (order_id)
		`,
	},
}

// Migrate applies all pending schema migrations, recording each applied
// migration in the schema_migrations table.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			name TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	applied := make(map[string]bool)
	rows, err := pool.Query(ctx, `SELECT name FROM schema_migrations`)
	if err != nil {
		return fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("failed to scan migration name: %w", err)
		}
		applied[name] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating applied migrations: %w", err)
	}

	for _, m := range migrations {
		if applied[m.Name] {
			continue
		}

		if _, err := pool.Exec(ctx, m.SQL); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", m.Name, err)
		}

		if _, err := pool.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, m.Name); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", m.Name, err)
		}

		logger.Info().Str("migration", m.Name).Msg("migration applied")
	}

	return nil
}

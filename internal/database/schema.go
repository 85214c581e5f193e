package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// ProductsTable is the name of the table holding product rows.
const ProductsTable = "produtos"

// Schema creates the products table when it does not exist yet.
// The CHECK constraints repeat the validation done by the service so that
// rows written through any other path obey the same rules.
const Schema = `
	CREATE TABLE IF NOT EXISTS produtos (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL CHECK (name <> ''),
		kind VARCHAR(50) NOT NULL CHECK (kind IN ('congelada', 'fresca')),
		quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		out_of_stock BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
`

// Execer is the subset of pgxpool.Pool and pgx.Tx needed to run DDL.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// EnsureSchema applies Schema. It is safe to call on every start.
func EnsureSchema(ctx context.Context, db Execer, logger zerolog.Logger) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		logger.Error().Err(err).Str("table", ProductsTable).Msg("failed to initialise database schema")
		return fmt.Errorf("failed to create %s table: %w", ProductsTable, err)
	}

	logger.Info().Str("table", ProductsTable).Msg("database schema initialised")
	return nil
}

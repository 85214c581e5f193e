package repository

import (
	"context"
	"errors"
	"fmt"

	"estoque/internal/database"
	"estoque/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// checkViolation is the SQLSTATE raised when a CHECK constraint fails.
const checkViolation = "23514"

var productColumns = []string{"id", "name", "kind", "quantity", "out_of_stock", "created_at", "updated_at"}

const returningProduct = "RETURNING id, name, kind, quantity, out_of_stock, created_at, updated_at"

// psql builds statements with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// List retrieves all products ordered by id, newest first.
func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	query, args, err := psql.Select(productColumns...).
		From(database.ProductsTable).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query, args, err := psql.Select(productColumns...).
		From(database.ProductsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get query: %w", err)
	}

	p, err := scanProduct(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return p, nil
}

// Create inserts a product using only the supplied columns.
func (r *productRepository) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	query, args, err := psql.Insert(database.ProductsTable).
		SetMap(input.Changes()).
		Suffix(returningProduct).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	p, err := scanProduct(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if isCheckViolation(err) {
			r.logger.Warn().Err(err).Msg("product rejected by storage constraint")
			return nil, model.ErrInvalidProduct
		}
		r.logger.Error().Err(err).Msg("failed to insert product")
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Debug().Int64("product_id", p.ID).Msg("product created")
	return p, nil
}

// Update applies the supplied fields to the product. Columns that were not
// supplied keep their stored value.
func (r *productRepository) Update(ctx context.Context, id int64, input model.ProductInput) (*model.Product, error) {
	// updated_at must advance even when two writes land in the same clock tick.
	query, args, err := psql.Update(database.ProductsTable).
		SetMap(input.Changes()).
		Set("updated_at", sq.Expr("GREATEST(NOW(), updated_at + INTERVAL '1 microsecond')")).
		Where(sq.Eq{"id": id}).
		Suffix(returningProduct).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update query: %w", err)
	}

	p, err := scanProduct(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product to update not found")
			return nil, nil
		}
		if isCheckViolation(err) {
			r.logger.Warn().Err(err).Int64("product_id", id).Msg("update rejected by storage constraint")
			return nil, model.ErrInvalidProduct
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return p, nil
}

// Delete removes a product permanently.
func (r *productRepository) Delete(ctx context.Context, id int64) (*model.Product, error) {
	query, args, err := psql.Delete(database.ProductsTable).
		Where(sq.Eq{"id": id}).
		Suffix(returningProduct).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build delete query: %w", err)
	}

	p, err := scanProduct(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product to delete not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	return p, nil
}

// scanProduct reads one product from a row in productColumns order.
func scanProduct(row pgx.Row) (*model.Product, error) {
	var (
		p    model.Product
		kind string
	)
	err := row.Scan(&p.ID, &p.Name, &kind, &p.Quantity, &p.OutOfStock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Kind = model.Kind(kind)
	return &p, nil
}

func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == checkViolation
}

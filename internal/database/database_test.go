package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"estoque/internal/config"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// MockExecer is a mock implementation of Execer.
type MockExecer struct {
	mock.Mock
}

func (m *MockExecer) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	called := m.Called(ctx, sql)
	return pgconn.NewCommandTag("CREATE TABLE"), called.Error(0)
}

func TestEnsureSchema(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db := new(MockExecer)
		db.On("Exec", ctx, Schema).Return(nil)

		require.NoError(t, EnsureSchema(ctx, db, logger))
		db.AssertExpectations(t)
	})

	t.Run("Exec error is wrapped", func(t *testing.T) {
		db := new(MockExecer)
		dbErr := errors.New("connection refused")
		db.On("Exec", ctx, Schema).Return(dbErr)

		err := EnsureSchema(ctx, db, logger)
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), ProductsTable)
	})
}

// startPostgres runs a PostgreSQL testcontainer and returns a matching config.
func startPostgres(t *testing.T) config.DatabaseConfig {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("estoque"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pgContainer.Terminate(ctx)
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "postgres",
		Password:        "postgres",
		Database:        "estoque",
		MaxConnections:  5,
		MinConnections:  1,
		MaxConnLifetime: 300,
	}
}

func TestNewPool_AndSchema(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test")
	}

	ctx := context.Background()
	logger := zerolog.Nop()
	cfg := startPostgres(t)

	pool, err := NewPool(ctx, cfg, logger)
	require.NoError(t, err)
	defer pool.Close()

	// Running the schema twice must leave the existing table untouched.
	require.NoError(t, EnsureSchema(ctx, pool, logger))
	_, err = pool.Exec(ctx, `INSERT INTO produtos (name, kind) VALUES ('Nhoque', 'fresca')`)
	require.NoError(t, err)
	require.NoError(t, EnsureSchema(ctx, pool, logger))

	var count int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM produtos`).Scan(&count))
	assert.Equal(t, 1, count)

	t.Run("Defaults are applied", func(t *testing.T) {
		var quantity int
		var outOfStock bool
		var createdAt, updatedAt time.Time
		err := pool.QueryRow(ctx,
			`SELECT quantity, out_of_stock, created_at, updated_at FROM produtos WHERE name = 'Nhoque'`,
		).Scan(&quantity, &outOfStock, &createdAt, &updatedAt)
		require.NoError(t, err)
		assert.Equal(t, 0, quantity)
		assert.False(t, outOfStock)
		assert.Equal(t, createdAt, updatedAt)
	})

	t.Run("Storage rejects invalid kind", func(t *testing.T) {
		_, err := pool.Exec(ctx, `INSERT INTO produtos (name, kind) VALUES ('Podre', 'rotten')`)
		require.Error(t, err)

		var pgErr *pgconn.PgError
		require.True(t, errors.As(err, &pgErr))
		assert.Equal(t, "23514", pgErr.Code)
	})

	t.Run("Storage rejects negative quantity", func(t *testing.T) {
		_, err := pool.Exec(ctx, `INSERT INTO produtos (name, kind, quantity) VALUES ('Talharim', 'congelada', -1)`)
		require.Error(t, err)
	})
}

func TestNewPool_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := config.DatabaseConfig{
		Host:            "127.0.0.1",
		Port:            1,
		User:            "postgres",
		Database:        "estoque",
		MaxConnections:  1,
		MinConnections:  1,
		MaxConnLifetime: 60,
	}

	pool, err := NewPool(ctx, cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Nil(t, pool)
}

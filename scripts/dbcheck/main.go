// Command dbcheck verifies that the configured database is reachable, lists
// the databases on the server and reports the product count.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"estoque/internal/config"
	"estoque/internal/database"
)

func main() {
	envFile := flag.String("env", config.DefaultEnvFile, "env file to load before reading the environment")
	ensure := flag.Bool("ensure-schema", false, "create the products table if it is missing")
	flag.Parse()

	if err := run(*envFile, *ensure); err != nil {
		fmt.Fprintf(os.Stderr, "dbcheck: %v\n", err)
		os.Exit(1)
	}
}

func run(envFile string, ensure bool) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	var dbName string
	if err := pool.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		return fmt.Errorf("failed to query current database: %w", err)
	}
	fmt.Printf("Successfully connected to database: %s\n", dbName)

	rows, err := pool.Query(ctx, "SELECT datname FROM pg_database WHERE datistemplate = false ORDER BY datname")
	if err != nil {
		return fmt.Errorf("failed to list databases: %w", err)
	}
	fmt.Println("\nAvailable databases:")
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan database name: %w", err)
		}
		fmt.Printf("  - %s\n", name)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to list databases: %w", err)
	}

	if ensure {
		if err := database.EnsureSchema(ctx, pool, logger); err != nil {
			return err
		}
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+database.ProductsTable).Scan(&count); err != nil {
		return fmt.Errorf("failed to count products (run with -ensure-schema to create the table): %w", err)
	}
	fmt.Printf("\n%s: %d products\n", database.ProductsTable, count)

	return nil
}

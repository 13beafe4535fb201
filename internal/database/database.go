// Package database opens the connections used by the SQL and Redis slot
// stores and owns the schema of the SQL ones.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"shoplist/internal/config"

	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
)

// NewPool migrates the kv_slots schema and returns a pool for the postgres
// slot store. The pool is sized for a single list owner.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	logger = logger.With().Str("component", "database").Logger()

	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int("max_connections", cfg.MaxConnections).
		Msg("connecting slot database")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := MigratePostgres(cfg.ConnectionString(), logger); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// MigratePostgres applies the embedded postgres migrations to the database
// at connStr. It opens its own connection and closes it before returning.
func MigratePostgres(connStr string, logger zerolog.Logger) error {
	migrateDB, err := sql.Open("pgx", connStr)
	if err != nil {
		return fmt.Errorf("failed to open migration database: %w", err)
	}

	driver, err := postgres.WithInstance(migrateDB, &postgres.Config{})
	if err != nil {
		migrateDB.Close()
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	if err := migrateUp("postgres", driver); err != nil {
		logger.Error().Err(err).Msg("failed to migrate slot schema")
		return err
	}

	logger.Info().Msg("slot schema up to date")
	return nil
}

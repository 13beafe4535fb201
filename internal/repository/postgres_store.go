package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// postgresStore implements SlotStore using PostgreSQL.
type postgresStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresStore creates a PostgreSQL-backed slot store. The kv_slots
// table is created by database.NewPool.
func NewPostgresStore(pool *pgxpool.Pool, logger zerolog.Logger) SlotStore {
	return &postgresStore{
		pool:   pool,
		logger: logger.With().Str("repository", "postgres-slots").Logger(),
	}
}

// Get returns the value stored under key.
func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT value
		FROM kv_slots
		WHERE key = $1
	`

	var value []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Debug().Str("key", key).Msg("slot not found")
			return nil, nil
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to query slot")
		return nil, fmt.Errorf("failed to query slot: %w", err)
	}
	if value == nil {
		value = []byte{}
	}

	return value, nil
}

// PutAll upserts every slot in a single transaction.
func (s *postgresStore) PutAll(ctx context.Context, slots map[string][]byte) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO kv_slots (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	batch := &pgx.Batch{}
	keys := make([]string, 0, len(slots))
	for key, value := range slots {
		if value == nil {
			value = []byte{}
		}
		batch.Queue(query, key, value)
		keys = append(keys, key)
	}

	results := tx.SendBatch(ctx, batch)
	for _, key := range keys {
		if _, err := results.Exec(); err != nil {
			results.Close()
			s.logger.Error().Err(err).Str("key", key).Msg("failed to write slot")
			return fmt.Errorf("failed to write slot %s: %w", key, err)
		}
	}
	if err := results.Close(); err != nil {
		s.logger.Error().Err(err).Msg("failed to close batch")
		return fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to commit slots")
		return fmt.Errorf("failed to commit slots: %w", err)
	}

	s.logger.Debug().Int("slots", len(slots)).Msg("slots written")
	return nil
}

// Close closes the connection pool.
func (s *postgresStore) Close() error {
	s.pool.Close()
	return nil
}

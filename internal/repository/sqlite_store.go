package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// sqliteStore implements SlotStore on the kv_slots table of a SQLite database.
type sqliteStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewSQLiteStore creates a SQLite-backed slot store. The schema must already
// exist; database.OpenSQLite applies it.
func NewSQLiteStore(db *sql.DB, logger zerolog.Logger) SlotStore {
	return &sqliteStore{
		db:     db,
		logger: logger.With().Str("repository", "sqlite-slots").Logger(),
	}
}

// Get returns the value stored under key.
func (s *sqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_slots WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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

// PutAll upserts every slot inside one transaction.
func (s *sqliteStore) PutAll(ctx context.Context, slots map[string][]byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO kv_slots (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	for key, value := range slots {
		if value == nil {
			value = []byte{}
		}
		if _, err := tx.ExecContext(ctx, query, key, value); err != nil {
			s.logger.Error().Err(err).Str("key", key).Msg("failed to write slot")
			return fmt.Errorf("failed to write slot %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error().Err(err).Msg("failed to commit slots")
		return fmt.Errorf("failed to commit slots: %w", err)
	}

	s.logger.Debug().Int("slots", len(slots)).Msg("slots written")
	return nil
}

// Close closes the database.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

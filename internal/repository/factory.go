package repository

import (
	"context"
	"fmt"

	"shoplist/internal/config"
	"shoplist/internal/database"

	"github.com/rs/zerolog"
)

// NewSlotStore opens the slot store selected by cfg.Storage.Backend.
func NewSlotStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (SlotStore, error) {
	logger.Info().Str("backend", cfg.Storage.Backend).Msg("opening slot store")

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), nil

	case config.BackendFile:
		return NewFileStore(cfg.Storage.FilePath, logger)

	case config.BackendSQLite:
		db, err := database.OpenSQLite(cfg.Storage.SQLitePath, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialise sqlite backend: %w", err)
		}
		return NewSQLiteStore(db, logger), nil

	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialise postgres backend: %w", err)
		}
		return NewPostgresStore(pool, logger), nil

	case config.BackendRedis:
		client, err := database.NewRedisClient(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialise redis backend: %w", err)
		}
		return NewRedisStore(client, logger), nil

	case config.BackendS3:
		return NewS3Store(ctx, cfg.S3, cfg.Storage.Namespace+".json", logger)

	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Storage.Backend)
	}
}

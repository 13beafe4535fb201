package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// redisStore implements SlotStore with plain Redis string keys.
type redisStore struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewRedisStore creates a Redis-backed slot store.
func NewRedisStore(client *redis.Client, logger zerolog.Logger) SlotStore {
	return &redisStore{
		client: client,
		logger: logger.With().Str("repository", "redis-slots").Logger(),
	}
}

// Get returns the value stored under key.
func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			s.logger.Debug().Str("key", key).Msg("slot not found")
			return nil, nil
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to get slot")
		return nil, fmt.Errorf("failed to get slot: %w", err)
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

// PutAll writes every slot inside MULTI/EXEC.
func (s *redisStore) PutAll(ctx context.Context, slots map[string][]byte) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for key, value := range slots {
			pipe.Set(ctx, key, value, 0)
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Int("slots", len(slots)).Msg("failed to write slots")
		return fmt.Errorf("failed to write slots: %w", err)
	}

	s.logger.Debug().Int("slots", len(slots)).Msg("slots written")
	return nil
}

// Close closes the client.
func (s *redisStore) Close() error {
	return s.client.Close()
}

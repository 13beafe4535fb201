package repository

import (
	"context"
	"time"

	"shoplist/internal/model"
)

// SlotStore is a durable key-value byte store holding the persisted list.
type SlotStore interface {
	// Get returns the value stored under key, or nil when the slot is empty.
	Get(ctx context.Context, key string) ([]byte, error)

	// PutAll writes every slot as one unit: either all values are stored or
	// none are, leaving the previous contents intact.
	PutAll(ctx context.Context, slots map[string][]byte) error

	// Close releases resources held by the store.
	Close() error
}

// SnapshotRepository persists and restores a whole shopping list.
type SnapshotRepository interface {
	// Save writes products and the custom categories as one snapshot and
	// returns the time recorded as last-saved. Errors wrap model.ErrNotSaved.
	Save(ctx context.Context, products []model.Product, categories []string) (time.Time, error)

	// Load restores the last snapshot. Missing or malformed slots yield an
	// empty snapshot; only store failures are returned as errors.
	Load(ctx context.Context) (*model.Snapshot, error)
}

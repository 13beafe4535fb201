package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shoplist/internal/model"

	"github.com/rs/zerolog"
)

// Slot names, prefixed with the install namespace.
const (
	SlotProducts   = "savedProducts"
	SlotLastSaved  = "lastSaved"
	SlotCategories = "savedCategories"
)

// snapshotRepository implements SnapshotRepository on top of a SlotStore.
type snapshotRepository struct {
	store     SlotStore
	namespace string
	now       func() time.Time
	logger    zerolog.Logger
}

// NewSnapshotRepository creates a repository that keeps its slots under namespace.
func NewSnapshotRepository(store SlotStore, namespace string, logger zerolog.Logger) SnapshotRepository {
	return &snapshotRepository{
		store:     store,
		namespace: namespace,
		now:       time.Now,
		logger:    logger.With().Str("repository", "snapshot").Str("namespace", namespace).Logger(),
	}
}

// SlotKey returns the fully qualified key of slot within namespace.
func SlotKey(namespace, slot string) string {
	return namespace + ":" + slot
}

// Save writes products and the custom categories as one snapshot.
func (r *snapshotRepository) Save(ctx context.Context, products []model.Product, categories []string) (time.Time, error) {
	if products == nil {
		products = []model.Product{}
	}
	if categories == nil {
		categories = []string{}
	}

	productData, err := json.Marshal(products)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to encode products")
		return time.Time{}, fmt.Errorf("%w: failed to encode products: %v", model.ErrNotSaved, err)
	}

	categoryData, err := json.Marshal(categories)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to encode categories")
		return time.Time{}, fmt.Errorf("%w: failed to encode categories: %v", model.ErrNotSaved, err)
	}

	savedAt := r.now().UTC()
	slots := map[string][]byte{
		SlotKey(r.namespace, SlotProducts):   productData,
		SlotKey(r.namespace, SlotCategories): categoryData,
		SlotKey(r.namespace, SlotLastSaved):  []byte(savedAt.Format(time.RFC3339Nano)),
	}

	if err := r.store.PutAll(ctx, slots); err != nil {
		r.logger.Error().Err(err).Int("products", len(products)).Msg("failed to write snapshot")
		return time.Time{}, fmt.Errorf("%w: %v", model.ErrNotSaved, err)
	}

	r.logger.Debug().
		Int("products", len(products)).
		Int("categories", len(categories)).
		Time("saved_at", savedAt).
		Msg("snapshot saved")

	return savedAt, nil
}

// Load restores the last snapshot.
func (r *snapshotRepository) Load(ctx context.Context) (*model.Snapshot, error) {
	snap := &model.Snapshot{
		Products:   []model.Product{},
		Categories: []string{},
	}

	productData, err := r.get(ctx, SlotProducts)
	if err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	if productData != nil {
		var products []model.Product
		if err := json.Unmarshal(productData, &products); err != nil {
			r.warnCorrupt(SlotProducts, err)
		} else if products != nil {
			snap.Products = products
		}
	}

	categoryData, err := r.get(ctx, SlotCategories)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}
	if categoryData != nil {
		var categories []string
		if err := json.Unmarshal(categoryData, &categories); err != nil {
			r.warnCorrupt(SlotCategories, err)
		} else if categories != nil {
			snap.Categories = categories
		}
	}

	savedData, err := r.get(ctx, SlotLastSaved)
	if err != nil {
		return nil, fmt.Errorf("failed to read last-saved time: %w", err)
	}
	if savedData != nil {
		savedAt, err := time.Parse(time.RFC3339Nano, string(savedData))
		if err != nil {
			r.warnCorrupt(SlotLastSaved, err)
		} else {
			snap.SavedAt = savedAt
		}
	}

	r.logger.Debug().
		Int("products", len(snap.Products)).
		Int("categories", len(snap.Categories)).
		Msg("snapshot loaded")

	return snap, nil
}

// get reads one slot. A store document that no longer decodes is treated
// like an empty slot.
func (r *snapshotRepository) get(ctx context.Context, slot string) ([]byte, error) {
	data, err := r.store.Get(ctx, SlotKey(r.namespace, slot))
	if errors.Is(err, model.ErrSnapshotCorrupt) {
		r.warnCorrupt(slot, err)
		return nil, nil
	}
	if err != nil {
		r.logger.Error().Err(err).Str("slot", slot).Msg("failed to read slot")
		return nil, err
	}
	return data, nil
}

func (r *snapshotRepository) warnCorrupt(slot string, err error) {
	if !errors.Is(err, model.ErrSnapshotCorrupt) {
		err = fmt.Errorf("%w: %v", model.ErrSnapshotCorrupt, err)
	}
	r.logger.Warn().
		Err(err).
		Str("slot", slot).
		Msg("ignoring malformed slot")
}

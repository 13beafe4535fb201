package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"shoplist/internal/aggregate"
	"shoplist/internal/category"
	"shoplist/internal/model"
	"shoplist/internal/repository"
	"shoplist/internal/tax"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// listService implements ListService.
type listService struct {
	mu         sync.Mutex
	repo       repository.SnapshotRepository
	table      tax.Table
	products   []model.Product
	categories *category.Registry
	lastSaved  time.Time
	newID      func() string
	logger     zerolog.Logger
}

// NewListService creates a list service seeded from the last saved snapshot.
// A snapshot that cannot be read leaves the list empty.
func NewListService(ctx context.Context, repo repository.SnapshotRepository, table tax.Table, logger zerolog.Logger) ListService {
	s := &listService{
		repo:       repo,
		table:      table,
		products:   []model.Product{},
		categories: category.NewRegistry(),
		newID:      uuid.NewString,
		logger:     logger.With().Str("service", "list").Logger(),
	}

	snap, err := repo.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load saved list, starting empty")
		return s
	}
	if snap.Empty() {
		s.lastSaved = snap.SavedAt
		s.logger.Info().Msg("no saved list, starting empty")
		return s
	}

	s.products = append(s.products, snap.Products...)
	s.categories = category.NewRegistry(snap.Categories...)
	s.lastSaved = snap.SavedAt

	s.logger.Info().
		Int("products", len(s.products)).
		Int("categories", s.categories.Size()).
		Time("saved_at", s.lastSaved).
		Msg("list restored")

	return s
}

// Add validates and appends a new product.
func (s *listService) Add(ctx context.Context, name string, price float64, cat string) (*model.Product, error) {
	name, err := validate(name, price)
	if err != nil {
		s.logger.Debug().Err(err).Msg("rejected product")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product := model.Product{
		ID:       s.uniqueID(),
		Name:     name,
		Price:    price,
		Category: s.resolveCategory(cat),
	}
	s.products = append(s.products, product)

	s.logger.Debug().
		Str("product_id", product.ID).
		Str("category", product.Category).
		Float64("price", product.Price).
		Msg("product added")

	return &product, s.persist(ctx)
}

// Edit replaces the name, price and category of an existing product.
func (s *listService) Edit(ctx context.Context, id, name string, price float64, cat string) (*model.Product, error) {
	name, err := validate(name, price)
	if err != nil {
		s.logger.Debug().Err(err).Str("product_id", id).Msg("rejected edit")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	s.products[i].Name = name
	s.products[i].Price = price
	s.products[i].Category = s.resolveCategory(cat)
	product := s.products[i]

	return &product, s.persist(ctx)
}

// Remove deletes a product by ID.
func (s *listService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return model.ErrProductNotFound
	}
	s.products = append(s.products[:i], s.products[i+1:]...)

	return s.persist(ctx)
}

// RemoveMany deletes every listed product in one save.
func (s *listService) RemoveMany(ctx context.Context, ids []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeIDs(ctx, ids)
}

// RemoveCategory deletes every product filed under category. The group is
// resolved to IDs before anything is removed.
func (s *listService) RemoveCategory(ctx context.Context, cat string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	group := aggregate.GroupByCategory(s.products)[strings.TrimSpace(cat)]
	ids := make([]string, 0, len(group))
	for _, p := range group {
		ids = append(ids, p.ID)
	}
	return s.removeIDs(ctx, ids)
}

// List returns a copy of all products in insertion order.
func (s *listService) List() []model.Product {
	return s.snapshot()
}

// Search returns the products whose name contains query, ignoring case.
func (s *listService) Search(query string) []model.Product {
	return aggregate.Filter(s.snapshot(), query)
}

// Categories returns the built-in categories followed by custom ones.
func (s *listService) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.categories.All()
}

// AddCategory registers a custom category. Blank and existing names are a
// no-op returning false.
func (s *listService) AddCategory(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.categories.Add(name) {
		return false, nil
	}
	s.logger.Debug().Str("category", strings.TrimSpace(name)).Msg("category added")
	return true, s.persist(ctx)
}

// DeleteCategory unregisters a custom category. Built-ins and unknown names
// return false.
func (s *listService) DeleteCategory(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.categories.Remove(name) {
		return false, nil
	}
	s.logger.Debug().Str("category", strings.TrimSpace(name)).Msg("category removed")
	return true, s.persist(ctx)
}

// Summary returns the cost breakdown of the list.
func (s *listService) Summary() model.Summary {
	s.mu.Lock()
	products := append([]model.Product(nil), s.products...)
	savedAt := s.lastSaved
	s.mu.Unlock()

	summary := aggregate.Summarize(products, s.table)
	summary.SavedAt = savedAt
	return summary
}

// CategoryTotals returns per-category spend ordered by category name.
func (s *listService) CategoryTotals() []model.CategoryTotal {
	return aggregate.SortByCategory(aggregate.CategoryTotals(s.snapshot(), s.table))
}

// Groups returns the products partitioned by category.
func (s *listService) Groups() map[string][]model.Product {
	return aggregate.GroupByCategory(s.snapshot())
}

// LastSaved returns when the list was last persisted.
func (s *listService) LastSaved() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastSaved
}

// validate trims name and checks the user-supplied fields of a product.
func validate(name string, price float64) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", model.ErrEmptyName
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return "", model.ErrInvalidPrice
	}
	return name, nil
}

// resolveCategory trims cat, falls back to category.Fallback when blank and
// registers names the registry has not seen. Must be called with mu held.
func (s *listService) resolveCategory(cat string) string {
	cat = strings.TrimSpace(cat)
	if cat == "" {
		return category.Fallback
	}
	if s.categories.Add(cat) {
		s.logger.Debug().Str("category", cat).Msg("category registered from product")
	}
	return cat
}

// uniqueID returns an ID not held by any product. Must be called with mu held.
func (s *listService) uniqueID() string {
	for {
		id := s.newID()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

func (s *listService) indexOf(id string) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// removeIDs filters ids out of the list and saves once if anything changed.
// Must be called with mu held.
func (s *listService) removeIDs(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		if _, ok := drop[p.ID]; !ok {
			kept = append(kept, p)
		}
	}

	removed := len(s.products) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	s.products = kept

	s.logger.Debug().Int("removed", removed).Msg("products removed")
	return removed, s.persist(ctx)
}

// persist saves the current list. Must be called with mu held.
func (s *listService) persist(ctx context.Context) error {
	products := append([]model.Product(nil), s.products...)

	savedAt, err := s.repo.Save(ctx, products, s.categories.Custom())
	if err != nil {
		s.logger.Warn().Err(err).Int("products", len(products)).Msg("list changed but not saved")
		if errors.Is(err, model.ErrNotSaved) {
			return fmt.Errorf("failed to save list: %w", err)
		}
		return fmt.Errorf("%w: %w", model.ErrNotSaved, err)
	}

	s.lastSaved = savedAt
	return nil
}

func (s *listService) snapshot() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]model.Product{}, s.products...)
}

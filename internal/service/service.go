package service

import (
	"context"
	"time"

	"shoplist/internal/model"
)

// ListService defines operations on the shopping list.
//
// Mutations persist the whole list before returning. When the list was
// changed but could not be saved, the returned error wraps model.ErrNotSaved
// and the result values are still meaningful.
type ListService interface {
	// Add validates and appends a new product.
	Add(ctx context.Context, name string, price float64, category string) (*model.Product, error)

	// Edit replaces the name, price and category of an existing product.
	Edit(ctx context.Context, id, name string, price float64, category string) (*model.Product, error)

	// Remove deletes a product by ID.
	Remove(ctx context.Context, id string) error

	// RemoveMany deletes every listed product in one save and returns how
	// many were removed. Unknown IDs are ignored.
	RemoveMany(ctx context.Context, ids []string) (int, error)

	// RemoveCategory deletes every product filed under category.
	RemoveCategory(ctx context.Context, category string) (int, error)

	// List returns a copy of all products in insertion order.
	List() []model.Product

	// Search returns the products whose name contains query.
	Search(query string) []model.Product

	// Categories returns the built-in categories followed by custom ones.
	Categories() []string

	// AddCategory registers a custom category.
	AddCategory(ctx context.Context, name string) (bool, error)

	// DeleteCategory unregisters a custom category. Products are untouched.
	DeleteCategory(ctx context.Context, name string) (bool, error)

	// Summary returns the cost breakdown of the list.
	Summary() model.Summary

	// CategoryTotals returns per-category spend ordered by category name.
	CategoryTotals() []model.CategoryTotal

	// Groups returns the products partitioned by category.
	Groups() map[string][]model.Product

	// LastSaved returns when the list was last persisted.
	LastSaved() time.Time
}

package model

import "time"

// Product is one line item on the shopping list.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// Snapshot is the persisted state of a list: its products, the custom
// categories added by the user, and when it was last written.
type Snapshot struct {
	Products   []Product
	Categories []string
	SavedAt    time.Time
}

// Empty reports whether the snapshot carries nothing worth restoring.
func (s *Snapshot) Empty() bool {
	return s == nil || (len(s.Products) == 0 && len(s.Categories) == 0)
}

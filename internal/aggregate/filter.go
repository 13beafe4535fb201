package aggregate

import (
	"strings"

	"shoplist/internal/model"
)

// Filter returns the products whose name contains query, ignoring case.
// A blank query returns products unchanged. Matches keep their input order.
func Filter(products []model.Product, query string) []model.Product {
	if strings.TrimSpace(query) == "" {
		return products
	}

	needle := strings.ToLower(query)
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Package aggregate derives totals, groupings and search results from a
// snapshot of products. Every function is pure; nothing is cached.
package aggregate

import (
	"sort"

	"shoplist/internal/model"
	"shoplist/internal/tax"
)

// Subtotal returns the pre-tax sum of all prices.
func Subtotal(products []model.Product) float64 {
	var sum float64
	for _, p := range products {
		sum += p.Price
	}
	return sum
}

// TaxTotal returns the tax owed across all products.
func TaxTotal(products []model.Product, table tax.Table) float64 {
	var sum float64
	for _, p := range products {
		sum += p.Price * table.RateFor(p.Category)
	}
	return sum
}

// GrandTotal returns subtotal plus tax.
func GrandTotal(products []model.Product, table tax.Table) float64 {
	return Subtotal(products) + TaxTotal(products, table)
}

// ItemTotal returns the tax-inclusive price of a single product.
func ItemTotal(p model.Product, table tax.Table) float64 {
	return p.Price * (1 + table.RateFor(p.Category))
}

// Summarize builds the cost breakdown of products.
func Summarize(products []model.Product, table tax.Table) model.Summary {
	subtotal := Subtotal(products)
	taxTotal := TaxTotal(products, table)
	return model.Summary{
		ItemCount:  len(products),
		Subtotal:   subtotal,
		TaxTotal:   taxTotal,
		GrandTotal: subtotal + taxTotal,
	}
}

// GroupByCategory partitions products by category. Each group keeps the
// relative order the products had in the input.
func GroupByCategory(products []model.Product) map[string][]model.Product {
	groups := make(map[string][]model.Product)
	for _, p := range products {
		groups[p.Category] = append(groups[p.Category], p)
	}
	return groups
}

// CategoryTotals returns one entry per distinct category, in the order each
// category first appears in products. Use SortByCategory for display order.
func CategoryTotals(products []model.Product, table tax.Table) []model.CategoryTotal {
	subtotal := Subtotal(products)
	index := make(map[string]int)
	var out []model.CategoryTotal

	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(out)
			index[p.Category] = i
			out = append(out, model.CategoryTotal{Category: p.Category})
		}
		out[i].Total += p.Price
		out[i].Tax += p.Price * table.RateFor(p.Category)
		out[i].Products = append(out[i].Products, p)
	}

	if subtotal > 0 {
		for i := range out {
			out[i].Share = out[i].Total / subtotal
		}
	}
	return out
}

// SortByCategory orders totals by category name in place and returns them.
func SortByCategory(totals []model.CategoryTotal) []model.CategoryTotal {
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Category < totals[j].Category
	})
	return totals
}

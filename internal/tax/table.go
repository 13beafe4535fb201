// Package tax maps product categories to the tax rate charged on them.
package tax

// DefaultRate applies to any category the table does not list.
const DefaultRate = 0.13

// Table is an immutable category to rate mapping.
type Table struct {
	rates       map[string]float64
	defaultRate float64
}

// Default returns the built-in rates for the seeded categories.
func Default() Table {
	return New(map[string]float64{
		"Food":       0.05,
		"Medication": 0.00,
		"Cleaning":   0.13,
		"Other":      0.13,
	}, DefaultRate)
}

// New builds a table from rates. The map is copied.
func New(rates map[string]float64, defaultRate float64) Table {
	cp := make(map[string]float64, len(rates))
	for k, v := range rates {
		cp[k] = v
	}
	return Table{rates: cp, defaultRate: defaultRate}
}

// RateFor returns the rate for category, falling back to the default rate.
// Lookup is case-sensitive.
func (t Table) RateFor(category string) float64 {
	if rate, ok := t.rates[category]; ok {
		return rate
	}
	return t.defaultRate
}

// DefaultRate returns the fallback rate.
func (t Table) DefaultRate() float64 {
	return t.defaultRate
}

// Has reports whether category has an explicit rate.
func (t Table) Has(category string) bool {
	_, ok := t.rates[category]
	return ok
}

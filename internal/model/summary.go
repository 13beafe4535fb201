package model

import "time"

// Summary is the cost breakdown of a list.
type Summary struct {
	ItemCount  int       `json:"itemCount"`
	Subtotal   float64   `json:"subtotal"`
	TaxTotal   float64   `json:"taxTotal"`
	GrandTotal float64   `json:"grandTotal"`
	SavedAt    time.Time `json:"savedAt,omitempty"`
}

// CategoryTotal is the spend of a single category.
// Total is pre-tax; Share is Total as a fraction of the list subtotal.
type CategoryTotal struct {
	Category string    `json:"category"`
	Total    float64   `json:"total"`
	Tax      float64   `json:"tax"`
	Share    float64   `json:"share"`
	Products []Product `json:"products"`
}

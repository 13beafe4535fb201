package handler

import (
	"net/http"

	"shoplist/internal/model"
	"shoplist/internal/money"
	"shoplist/internal/service"

	"github.com/rs/zerolog"
)

// SummaryResponse is the cost breakdown with display strings in the
// configured currency.
type SummaryResponse struct {
	model.Summary
	Currency string            `json:"currency"`
	Display  map[string]string `json:"display"`
}

// CategoryTotalResponse is one row of the per-category breakdown.
type CategoryTotalResponse struct {
	model.CategoryTotal
	Percent string `json:"percent"`
	Display string `json:"display"`
}

// SummaryHandler serves the read-only aggregate views of the list.
type SummaryHandler struct {
	service  service.ListService
	currency string
	logger   zerolog.Logger
}

// NewSummaryHandler creates a new summary handler rendering amounts in currency.
func NewSummaryHandler(service service.ListService, currency string, logger zerolog.Logger) *SummaryHandler {
	return &SummaryHandler{
		service:  service,
		currency: currency,
		logger:   logger.With().Str("handler", "summary").Logger(),
	}
}

// Summary handles GET /api/summary.
func (h *SummaryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary := h.service.Summary()

	writeJSON(w, http.StatusOK, SummaryResponse{
		Summary:  summary,
		Currency: h.currency,
		Display: map[string]string{
			"subtotal":   money.Format(summary.Subtotal, h.currency),
			"taxTotal":   money.Format(summary.TaxTotal, h.currency),
			"grandTotal": money.Format(summary.GrandTotal, h.currency),
		},
	})
}

// CategoryTotals handles GET /api/categories/totals.
func (h *SummaryHandler) CategoryTotals(w http.ResponseWriter, r *http.Request) {
	totals := h.service.CategoryTotals()

	rows := make([]CategoryTotalResponse, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, CategoryTotalResponse{
			CategoryTotal: t,
			Percent:       money.Percent(t.Share),
			Display:       money.Format(t.Total, h.currency),
		})
	}
	writeJSON(w, http.StatusOK, rows)
}

// Groups handles GET /api/groups.
func (h *SummaryHandler) Groups(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Groups())
}

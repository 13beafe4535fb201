package handler

import (
	"net/http"
	"strings"

	"shoplist/internal/model"
	"shoplist/internal/service"

	"github.com/rs/zerolog"
)

// ProductRequest is the body of create and update requests.
type ProductRequest struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Category string   `json:"category"`
}

// ProductResponse is returned by create and update requests.
type ProductResponse struct {
	Product model.Product `json:"product"`
	SaveStatus
}

// DeleteRequest selects products to delete, either by ID or by category.
type DeleteRequest struct {
	IDs      []string `json:"ids"`
	Category string   `json:"category"`
}

// DeleteResponse is returned by delete requests.
type DeleteResponse struct {
	Removed int `json:"removed"`
	SaveStatus
}

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ListService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ListService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products, optionally filtered by ?q=.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusOK, h.service.List())
		return
	}
	writeJSON(w, http.StatusOK, h.service.Search(query))
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if !decodeBody(w, r, &req, h.logger) {
		return
	}
	if req.Price == nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "price is required", h.logger)
		return
	}

	product, err := h.service.Add(r.Context(), req.Name, *req.Price, req.Category)
	h.writeProduct(w, http.StatusCreated, product, err)
}

// Update handles PUT /api/products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "product ID is required", h.logger)
		return
	}

	var req ProductRequest
	if !decodeBody(w, r, &req, h.logger) {
		return
	}
	if req.Price == nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "price is required", h.logger)
		return
	}

	product, err := h.service.Edit(r.Context(), id, req.Name, *req.Price, req.Category)
	h.writeProduct(w, http.StatusOK, product, err)
}

// Delete handles DELETE /api/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "product ID is required", h.logger)
		return
	}

	status, err := saveStatus(h.service.Remove(r.Context(), id))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, DeleteResponse{Removed: 1, SaveStatus: status})
}

// DeleteMany handles POST /api/products/delete with either a list of IDs or
// a category whose products should all be removed.
func (h *ProductHandler) DeleteMany(w http.ResponseWriter, r *http.Request) {
	var req DeleteRequest
	if !decodeBody(w, r, &req, h.logger) {
		return
	}

	category := strings.TrimSpace(req.Category)
	var (
		removed int
		err     error
	)
	switch {
	case len(req.IDs) > 0 && category != "":
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "specify either ids or category, not both", h.logger)
		return
	case len(req.IDs) > 0:
		removed, err = h.service.RemoveMany(r.Context(), req.IDs)
	case category != "":
		removed, err = h.service.RemoveCategory(r.Context(), category)
	default:
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "ids or category is required", h.logger)
		return
	}

	status, err := saveStatus(err)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, DeleteResponse{Removed: removed, SaveStatus: status})
}

func (h *ProductHandler) writeProduct(w http.ResponseWriter, code int, product *model.Product, err error) {
	status, err := saveStatus(err)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, code, ProductResponse{Product: *product, SaveStatus: status})
}

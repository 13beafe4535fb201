package handler

import (
	"net/http"
	"strings"

	"shoplist/internal/model"
	"shoplist/internal/service"

	"github.com/rs/zerolog"
)

// CategoryRequest is the body of POST /api/categories.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse reports the outcome of a category change. Changed is
// false when the request was a no-op.
type CategoryResponse struct {
	Category string `json:"category"`
	Changed  bool   `json:"changed"`
	SaveStatus
}

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	service service.ListService
	logger  zerolog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(service service.ListService, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger.With().Str("handler", "category").Logger(),
	}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Categories())
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !decodeBody(w, r, &req, h.logger) {
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "category name is required", h.logger)
		return
	}

	added, err := h.service.AddCategory(r.Context(), name)
	status, err := saveStatus(err)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	code := http.StatusOK
	if added {
		code = http.StatusCreated
	}
	writeJSON(w, code, CategoryResponse{Category: name, Changed: added, SaveStatus: status})
}

// Delete handles DELETE /api/categories/{name}. Built-in categories are
// never removed.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("name"))
	if name == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "category name is required", h.logger)
		return
	}

	removed, err := h.service.DeleteCategory(r.Context(), name)
	status, err := saveStatus(err)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, CategoryResponse{Category: name, Changed: removed, SaveStatus: status})
}

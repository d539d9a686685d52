package handlers

import (
	"net/http"

	"wordscramble/internal/service"
)

// CategoryHandler serves the public category list
type CategoryHandler struct {
	contentService *service.ContentService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(contentService *service.ContentService) *CategoryHandler {
	return &CategoryHandler{contentService: contentService}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.contentService.Categories()
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"wordscramble/internal/service"
	"wordscramble/internal/validation"
)

// AdminHandler handles the admin content management endpoints
type AdminHandler struct {
	contentService     *service.ContentService
	leaderboardService *service.LeaderboardService
	userService        *service.UserService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(contentService *service.ContentService, leaderboardService *service.LeaderboardService, userService *service.UserService) *AdminHandler {
	return &AdminHandler{
		contentService:     contentService,
		leaderboardService: leaderboardService,
		userService:        userService,
	}
}

type createWordRequest struct {
	Text       string `json:"text"`
	Meaning    string `json:"meaning"`
	CategoryID int64  `json:"category"`
	Difficulty string `json:"difficulty"`
}

type createCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListWords handles GET /api/admin/words
func (h *AdminHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	words, err := h.contentService.Words()
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, words)
}

// CreateWord handles POST /api/admin/words
func (h *AdminHandler) CreateWord(w http.ResponseWriter, r *http.Request) {
	var req createWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrInvalidRequestBody, err)
		return
	}

	word, err := h.contentService.CreateWord(req.CategoryID, req.Text, req.Meaning, req.Difficulty)
	if err != nil {
		var validationErr validation.ValidationError
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			respondError(w, http.StatusBadRequest, "Category not found", nil)
		case errors.As(err, &validationErr):
			respondError(w, http.StatusBadRequest, validationErr.Message, nil)
		default:
			respondError(w, http.StatusInternalServerError, ErrInternalServerError, err)
		}
		return
	}

	respondJSON(w, http.StatusCreated, word)
}

// DeleteWord handles DELETE /api/admin/words/{id}
func (h *AdminHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid id", nil)
		return
	}

	if err := h.contentService.DeleteWord(id); err != nil {
		respondError(w, http.StatusInternalServerError, ErrInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// CreateCategory handles POST /api/admin/categories
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrInvalidRequestBody, err)
		return
	}

	category, err := h.contentService.CreateCategory(req.Name, req.Description)
	if err != nil {
		var validationErr validation.ValidationError
		switch {
		case errors.Is(err, service.ErrCategoryExists):
			respondError(w, http.StatusBadRequest, "Category already exists", nil)
		case errors.As(err, &validationErr):
			respondError(w, http.StatusBadRequest, validationErr.Message, nil)
		default:
			respondError(w, http.StatusInternalServerError, ErrInternalServerError, err)
		}
		return
	}

	respondJSON(w, http.StatusCreated, category)
}

// DeleteCategory handles DELETE /api/admin/categories/{id}
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid id", nil)
		return
	}

	if err := h.contentService.DeleteCategory(id); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondError(w, http.StatusNotFound, "Category not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, ErrInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DeleteLeaderboardEntry handles DELETE /api/admin/leaderboard/{id}
func (h *AdminHandler) DeleteLeaderboardEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid id", nil)
		return
	}

	if err := h.leaderboardService.RemoveEntry(id); err != nil {
		respondError(w, http.StatusInternalServerError, ErrInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers()
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// DeleteUser handles DELETE /api/admin/users/{id}
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid id", nil)
		return
	}

	if err := h.userService.DeleteUser(claims.UserID, id); err != nil {
		switch {
		case errors.Is(err, service.ErrSelfDelete):
			respondError(w, http.StatusBadRequest, "Cannot delete your own account", nil)
		case errors.Is(err, service.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "User not found", nil)
		default:
			respondError(w, http.StatusInternalServerError, ErrInternalServerError, err)
		}
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// pathID parses the {id} path value as an int64
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

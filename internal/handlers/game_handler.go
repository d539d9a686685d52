package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"wordscramble/internal/service"
)

// GameHandler handles the game lifecycle endpoints
type GameHandler struct {
	gameService *service.GameService
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

type finishRequest struct {
	GameID string                    `json:"gameId"`
	Rounds []service.RoundSubmission `json:"rounds"`
}

// StartGame handles GET /api/games/start?category=<id>&difficulty=<tier>
func (h *GameHandler) StartGame(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	categoryParam := r.URL.Query().Get("category")
	difficulty := r.URL.Query().Get("difficulty")
	if categoryParam == "" || difficulty == "" {
		respondError(w, http.StatusBadRequest, "Category and difficulty required", nil)
		return
	}

	categoryID, err := strconv.ParseInt(categoryParam, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category", nil)
		return
	}

	session, err := h.gameService.StartGame(claims.UserID, categoryID, difficulty)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDifficulty):
			respondError(w, http.StatusBadRequest, "Invalid difficulty", nil)
		case errors.Is(err, service.ErrCategoryNotFound):
			respondError(w, http.StatusBadRequest, "Category not found", nil)
		case errors.Is(err, service.ErrInsufficientWords):
			respondError(w, http.StatusBadRequest, "Not enough words in this category/difficulty", nil)
		default:
			respondError(w, http.StatusInternalServerError, ErrInternalServerError, err)
		}
		return
	}

	respondJSON(w, http.StatusOK, session)
}

// FinishGame handles POST /api/games/finish
func (h *GameHandler) FinishGame(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	var req finishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrInvalidRequestBody, err)
		return
	}
	if req.GameID == "" {
		respondError(w, http.StatusBadRequest, "gameId is required", nil)
		return
	}

	result, err := h.gameService.FinishGame(claims.UserID, req.GameID, req.Rounds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			respondError(w, http.StatusNotFound, "Game session not found", nil)
		case errors.Is(err, service.ErrSessionExpired):
			respondError(w, http.StatusNotFound, "Game session expired", nil)
		case errors.Is(err, service.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "User not found", nil)
		case errors.Is(err, service.ErrInvalidRounds):
			respondError(w, http.StatusBadRequest, "Submitted rounds do not match the game", nil)
		default:
			respondError(w, http.StatusInternalServerError, ErrInternalServerError, err)
		}
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Recent handles GET /api/games/recent
func (h *GameHandler) Recent(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	results, err := h.gameService.RecentResults(claims.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, results)
}

// History handles GET /api/games/history
func (h *GameHandler) History(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	results, err := h.gameService.History(claims.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, results)
}

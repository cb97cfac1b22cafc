package handlers

import (
	"net/http"
	"strconv"

	"github.com/ritikapurwa08/english-mastery/internal/models"
	"github.com/ritikapurwa08/english-mastery/internal/service"
)

// ProgressHandler handles per-word learning progress updates
type ProgressHandler struct {
	progressService *service.ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

type updateStatusRequest struct {
	Status models.ProgressStatus `json:"status"`
}

// UpdateStatus sets the mastery status of a word for the caller and credits
// the day's activity toward their streak
func (h *ProgressHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	wordID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid word id", nil)
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.progressService.UpdateStatus(user.ID, wordID, req.Status); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"wordId": wordID,
		"status": req.Status,
	})
}

// ToggleFavorite flips the favorite flag on a word for the caller
func (h *ProgressHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	wordID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid word id", nil)
		return
	}

	progress, err := h.progressService.ToggleFavorite(user.ID, wordID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, progress)
}

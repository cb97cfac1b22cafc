package handlers

import (
	"net/http"

	"github.com/ritikapurwa08/english-mastery/internal/service"
)

// StatsHandler serves dashboard and profile summaries and user settings
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Dashboard returns today's and this week's activity against the user's goals
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	stats, err := h.statsService.GetDashboard(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// Profile returns the user's all-time test history summary
func (h *StatsHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	stats, err := h.statsService.GetProfile(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

type updateSettingsRequest struct {
	DailyGoal  int `json:"dailyGoal"`
	WeeklyGoal int `json:"weeklyGoal"`
}

// UpdateSettings updates the user's daily and weekly goals
func (h *StatsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var req updateSettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	updated, err := h.statsService.UpdateSettings(user.ID, req.DailyGoal, req.WeeklyGoal)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, userResponse{User: updated})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/ritikapurwa08/english-mastery/internal/service"
)

// TestHandler handles test generation, submission and history
type TestHandler struct {
	testService *service.TestService
}

// NewTestHandler creates a new test handler
func NewTestHandler(testService *service.TestService) *TestHandler {
	return &TestHandler{testService: testService}
}

type generateTestRequest struct {
	Categories    []string `json:"categories"`
	QuestionCount int      `json:"questionCount"`
}

type submitTestRequest struct {
	Answers         []service.AnswerSubmission `json:"answers"`
	DurationSeconds int                        `json:"durationSeconds"`
}

// Generate builds a randomized test from the requested categories
func (h *TestHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateTestRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	test, err := h.testService.GenerateTest(req.Categories, req.QuestionCount)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, test)
}

// Submit grades a completed test, archives the result, and credits the
// user's daily streak
func (h *TestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var req submitTestRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.testService.SubmitTest(user.ID, req.Answers, req.DurationSeconds)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// History lists the user's most recent test results, newest first
func (h *TestHandler) History(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	results, err := h.testService.GetHistory(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

// Result returns one archived test result with its category breakdown
// and mistakes
func (h *TestHandler) Result(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	resultID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid result id", nil)
		return
	}

	result, err := h.testService.GetResult(user.ID, resultID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

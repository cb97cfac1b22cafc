package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/ritikapurwa08/english-mastery/internal/service"
	"github.com/ritikapurwa08/english-mastery/internal/validation"
)

// errorResponse is the JSON body of every non-2xx response
type errorResponse struct {
	Error string `json:"error"`
}

// respondWithError writes a JSON error response and logs the underlying error
func respondWithError(w http.ResponseWriter, status int, userMsg string, err error) {
	if err != nil {
		log.Printf("%s: %v", userMsg, err)
	}
	respondJSON(w, status, errorResponse{Error: userMsg})
}

// respondServiceError maps service errors onto HTTP statuses. Validation
// errors and ErrInvalidArgument become 400 with the error text, the rest of
// the taxonomy maps by sentinel, and anything unrecognized is a 500.
func respondServiceError(w http.ResponseWriter, err error) {
	var validationErr validation.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Error()})
	case errors.Is(err, service.ErrInvalidArgument):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrEmailTaken):
		respondJSON(w, http.StatusConflict, errorResponse{Error: "An account with this email already exists"})
	case errors.Is(err, service.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid email or password"})
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrSessionExpired):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "Authentication required"})
	case errors.Is(err, service.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "Not found"})
	case errors.Is(err, service.ErrPersistence):
		log.Printf("Persistence error: %v", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "Your changes could not be saved"})
	default:
		log.Printf("Internal error: %v", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}
}

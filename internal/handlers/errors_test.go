package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ritikapurwa08/english-mastery/internal/service"
	"github.com/ritikapurwa08/english-mastery/internal/validation"
)

func TestRespondWithErrorWritesStatusAndBody(t *testing.T) {
	recorder := httptest.NewRecorder()

	respondWithError(recorder, http.StatusTeapot, "Teapot", nil)

	if recorder.Code != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", recorder.Code)
	}

	var body errorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body.Error != "Teapot" {
		t.Fatalf("expected error 'Teapot', got %q", body.Error)
	}
}

func TestRespondWithErrorLogsMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := log.Default()
	originalOutput := logger.Writer()
	logger.SetOutput(&buf)
	defer logger.SetOutput(originalOutput)

	recorder := httptest.NewRecorder()
	err := errors.New("boom")

	respondWithError(recorder, http.StatusInternalServerError, "Internal server error", err)

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Internal server error") {
		t.Fatalf("expected log to include user message, got %q", logOutput)
	}
	if !strings.Contains(logOutput, "boom") {
		t.Fatalf("expected log to include error, got %q", logOutput)
	}
}

func TestRespondServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid argument", fmt.Errorf("%w: bad category", service.ErrInvalidArgument), http.StatusBadRequest},
		{"validation error", validation.ValidationError{Field: "email", Message: "required"}, http.StatusBadRequest},
		{"email taken", service.ErrEmailTaken, http.StatusConflict},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthenticated", service.ErrUnauthenticated, http.StatusUnauthorized},
		{"session expired", service.ErrSessionExpired, http.StatusUnauthorized},
		{"not found", fmt.Errorf("%w: result 9", service.ErrNotFound), http.StatusNotFound},
		{"persistence", fmt.Errorf("%w: disk full", service.ErrPersistence), http.StatusInternalServerError},
		{"unknown", errors.New("mystery"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respondServiceError(recorder, tt.err)

			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
			var body errorResponse
			if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
				t.Fatalf("body is not JSON: %v", err)
			}
			if body.Error == "" {
				t.Error("error body is empty")
			}
		})
	}
}

func TestRespondServiceErrorHidesInternals(t *testing.T) {
	recorder := httptest.NewRecorder()
	respondServiceError(recorder, errors.New("pq: connection refused on 10.0.0.5"))

	if strings.Contains(recorder.Body.String(), "10.0.0.5") {
		t.Errorf("internal error detail leaked to client: %s", recorder.Body.String())
	}
}

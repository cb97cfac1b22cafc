package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/ritikapurwa08/english-mastery/internal/config"
	"github.com/ritikapurwa08/english-mastery/internal/database"
	"github.com/ritikapurwa08/english-mastery/internal/models"
	"github.com/ritikapurwa08/english-mastery/internal/repository"
	"github.com/ritikapurwa08/english-mastery/internal/service"
)

// TestWordListCategoryToken checks that the browser-facing category token is
// translated to the stored one before filtering
func TestWordListCategoryToken(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := "test_word_list.db"
	defer os.Remove(dbPath)

	cfg := &config.Config{
		DatabaseType: "sqlite",
		DatabasePath: dbPath,
	}
	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()
	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	wordRepo := repository.NewWordRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	handler := NewWordHandler(service.NewWordService(wordRepo, progressRepo))

	user, err := userRepo.CreateUser("browse@example.com", "hashedpass", "Browse")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	words := []*models.Word{
		{Text: "give up", Definition: "to stop trying", Category: "phrasal verbs", Difficulty: "B1"},
		{Text: "meticulous", Definition: "showing great attention to detail", Category: "vocabulary", Difficulty: "C1"},
	}
	for _, word := range words {
		if _, err := wordRepo.Create(word); err != nil {
			t.Fatalf("Failed to create word: %v", err)
		}
	}

	listWords := func(category string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/words?category="+category, nil)
		req = req.WithContext(context.WithValue(req.Context(), UserContextKey, user))
		recorder := httptest.NewRecorder()
		handler.List(recorder, req)
		return recorder
	}

	recorder := listWords("phrasal-verbs")
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}
	var listing service.WordListing
	if err := json.Unmarshal(recorder.Body.Bytes(), &listing); err != nil {
		t.Fatalf("Body is not JSON: %v", err)
	}
	if len(listing.Words) != 1 {
		t.Fatalf("Expected 1 word for phrasal-verbs, got %d", len(listing.Words))
	}
	if listing.Words[0].Text != "give up" {
		t.Errorf("Expected %q, got %q", "give up", listing.Words[0].Text)
	}

	if recorder := listWords("nonsense"); recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for an unknown category, got %d", recorder.Code)
	}
}

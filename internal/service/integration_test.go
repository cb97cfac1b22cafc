package service

import (
	"os"
	"testing"

	"github.com/ritikapurwa08/english-mastery/internal/config"
	"github.com/ritikapurwa08/english-mastery/internal/database"
	"github.com/ritikapurwa08/english-mastery/internal/models"
	"github.com/ritikapurwa08/english-mastery/internal/repository"
)

const testMigrationsPath = "../../migrations"

func openTestDB(t *testing.T, dbPath string) *database.DB {
	t.Helper()

	cfg := &config.Config{
		DatabaseType: "sqlite",
		DatabasePath: dbPath,
	}
	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	if err := db.RunMigrations(testMigrationsPath); err != nil {
		db.Close()
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

// TestFavoriteToggleLifecycle drives the favorite toggle and status updates
// against a real SQLite database
func TestFavoriteToggleLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := "test_favorite_toggle.db"
	defer os.Remove(dbPath)

	db := openTestDB(t, dbPath)
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	wordRepo := repository.NewWordRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	progressService := NewProgressService(progressRepo, wordRepo, userRepo)

	user, err := userRepo.CreateUser("toggle@example.com", "hashedpass", "Toggle")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	wordID, err := wordRepo.Create(&models.Word{
		Text:       "meticulous",
		Definition: "showing great attention to detail",
		Category:   "vocabulary",
		Difficulty: "C1",
	})
	if err != nil {
		t.Fatalf("Failed to create word: %v", err)
	}

	// First toggle creates the record lazily with the flag set
	first, err := progressService.ToggleFavorite(user.ID, wordID)
	if err != nil {
		t.Fatalf("First toggle failed: %v", err)
	}
	if !first.IsFavorite {
		t.Error("Expected isFavorite=true after first toggle")
	}
	if first.Status != models.StatusNew {
		t.Errorf("Expected status %q, got %q", models.StatusNew, first.Status)
	}

	// Second toggle flips the same record back instead of creating another
	second, err := progressService.ToggleFavorite(user.ID, wordID)
	if err != nil {
		t.Fatalf("Second toggle failed: %v", err)
	}
	if second.IsFavorite {
		t.Error("Expected isFavorite=false after second toggle")
	}
	if second.ID != first.ID {
		t.Errorf("Expected the same progress record, got %d and %d", first.ID, second.ID)
	}
	if second.Status != models.StatusNew {
		t.Errorf("Expected status %q after double toggle, got %q", models.StatusNew, second.Status)
	}

	// Favorite-only changes never touch the streak
	fresh, err := userRepo.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("Failed to reload user: %v", err)
	}
	if fresh.Streak != 0 {
		t.Errorf("Expected streak 0 after favorite toggles, got %d", fresh.Streak)
	}
	if fresh.LastActivity != nil {
		t.Errorf("Expected no activity timestamp, got %v", fresh.LastActivity)
	}

	// A status update credits the streak
	if err := progressService.UpdateStatus(user.ID, wordID, models.StatusLearning); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	fresh, err = userRepo.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("Failed to reload user: %v", err)
	}
	if fresh.Streak != 1 {
		t.Errorf("Expected streak 1 after status update, got %d", fresh.Streak)
	}
	if fresh.LastActivity == nil {
		t.Fatal("Expected an activity timestamp after status update")
	}

	// A second update the same day does not double-credit
	if err := progressService.UpdateStatus(user.ID, wordID, models.StatusMastered); err != nil {
		t.Fatalf("Second UpdateStatus failed: %v", err)
	}
	fresh, err = userRepo.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("Failed to reload user: %v", err)
	}
	if fresh.Streak != 1 {
		t.Errorf("Expected streak to stay 1 on the same day, got %d", fresh.Streak)
	}

	progress, err := progressRepo.Get(user.ID, wordID)
	if err != nil {
		t.Fatalf("Failed to get progress: %v", err)
	}
	if progress.Status != models.StatusMastered {
		t.Errorf("Expected status %q, got %q", models.StatusMastered, progress.Status)
	}
}

// TestGenerateSubmitFlow runs the full generate, grade and archive cycle
// against a real SQLite database
func TestGenerateSubmitFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := "test_generate_submit.db"
	defer os.Remove(dbPath)

	db := openTestDB(t, dbPath)
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	wordRepo := repository.NewWordRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	resultRepo := repository.NewResultRepository(db)
	progressService := NewProgressService(progressRepo, wordRepo, userRepo)
	testService := NewTestService(questionRepo, resultRepo, progressService)

	user, err := userRepo.CreateUser("quiz@example.com", "hashedpass", "Quiz")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	wordID, err := wordRepo.Create(&models.Word{
		Text:       "give up",
		Definition: "to stop trying",
		Category:   "phrasal verbs",
		Difficulty: "B1",
	})
	if err != nil {
		t.Fatalf("Failed to create word: %v", err)
	}

	seed := []*models.Question{
		{
			Type:          models.MultipleChoice,
			Category:      "vocabulary",
			Difficulty:    "B2",
			Question:      "Which word means showing great attention to detail?",
			Options:       []string{"meticulous", "careless", "hasty"},
			CorrectAnswer: "meticulous",
		},
		{
			Type:          models.MultipleChoice,
			Category:      "vocabulary",
			Difficulty:    "B2",
			Question:      "Which word means lasting a very short time?",
			Options:       []string{"eternal", "ephemeral", "durable"},
			CorrectAnswer: "ephemeral",
			Explanation:   "Ephemeral describes something fleeting.",
		},
		{
			Type:          models.FillBlank,
			Category:      "phrasal verbs",
			Difficulty:    "B1",
			Question:      "Don't ___ on your dreams.",
			Options:       []string{"give up", "give in", "give out"},
			CorrectAnswer: "give up",
			WordID:        &wordID,
		},
		{
			Type:          models.MultipleChoice,
			Category:      "phrasal verbs",
			Difficulty:    "B1",
			Question:      "To ___ means to tolerate something.",
			Options:       []string{"put up with", "put off", "put down"},
			CorrectAnswer: "put up with",
		},
	}
	for _, q := range seed {
		if _, err := questionRepo.Create(q); err != nil {
			t.Fatalf("Failed to seed question: %v", err)
		}
	}

	test, err := testService.GenerateTest([]string{"vocabulary", "phrasal-verbs"}, 10)
	if err != nil {
		t.Fatalf("GenerateTest failed: %v", err)
	}
	if test.TestID == "" {
		t.Error("Expected a test id")
	}
	if len(test.Questions) != len(seed) {
		t.Fatalf("Expected %d questions, got %d", len(seed), len(test.Questions))
	}

	// Answer the first question wrong, skip the second, get the rest right
	submissions := make([]AnswerSubmission, len(test.Questions))
	for i, q := range test.Questions {
		answer := q.CorrectAnswer
		switch i {
		case 0:
			answer = "an answer that matches nothing"
		case 1:
			answer = ""
		}
		submissions[i] = AnswerSubmission{QuestionID: q.ID, Answer: answer}
	}

	result, err := testService.SubmitTest(user.ID, submissions, 90)
	if err != nil {
		t.Fatalf("SubmitTest failed: %v", err)
	}
	if result.Score != 50 {
		t.Errorf("Expected score 50, got %d", result.Score)
	}
	if result.QuestionsAttempted != 4 || result.QuestionsCorrect != 2 {
		t.Errorf("Expected 2/4 correct, got %d/%d", result.QuestionsCorrect, result.QuestionsAttempted)
	}
	if len(result.Mistakes) != 2 {
		t.Fatalf("Expected 2 mistakes, got %d", len(result.Mistakes))
	}
	if result.Mistakes[1].UserAnswer != SkippedAnswer {
		t.Errorf("Expected the skipped question to record %q, got %q", SkippedAnswer, result.Mistakes[1].UserAnswer)
	}

	// The archived copy matches the returned one
	stored, err := testService.GetResult(user.ID, result.ID)
	if err != nil {
		t.Fatalf("GetResult failed: %v", err)
	}
	if stored.Score != result.Score || stored.DurationSeconds != 90 {
		t.Errorf("Stored result does not match: score %d, duration %d", stored.Score, stored.DurationSeconds)
	}
	var total, correct int
	for _, cat := range stored.CategoryBreakdown {
		total += cat.Total
		correct += cat.Correct
	}
	if total != stored.QuestionsAttempted || correct != stored.QuestionsCorrect {
		t.Errorf("Breakdown sums %d/%d do not reconcile with %d/%d",
			correct, total, stored.QuestionsCorrect, stored.QuestionsAttempted)
	}
	if len(stored.Mistakes) != 2 {
		t.Errorf("Expected 2 stored mistakes, got %d", len(stored.Mistakes))
	}

	history, err := testService.GetHistory(user.ID)
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(history) != 1 || history[0].ID != result.ID {
		t.Errorf("Expected the submitted result in history, got %+v", history)
	}

	// Submission credits the streak and the per-word counters
	fresh, err := userRepo.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("Failed to reload user: %v", err)
	}
	if fresh.Streak != 1 {
		t.Errorf("Expected streak 1 after submission, got %d", fresh.Streak)
	}
	progress, err := progressRepo.Get(user.ID, wordID)
	if err != nil {
		t.Fatalf("Failed to get progress: %v", err)
	}
	if progress == nil {
		t.Fatal("Expected a progress record for the question's word")
	}
	if progress.CorrectCount+progress.IncorrectCount != 1 {
		t.Errorf("Expected one recorded answer, got %d correct and %d incorrect",
			progress.CorrectCount, progress.IncorrectCount)
	}
}

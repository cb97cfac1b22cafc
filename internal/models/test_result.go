package models

import "time"

// CategoryScore is the per-category slice of a graded test
type CategoryScore struct {
	Category string `json:"category"`
	Correct  int    `json:"correct"`
	Total    int    `json:"total"`
}

// Mistake records one incorrectly answered (or skipped) question,
// in original question order.
type Mistake struct {
	WordID        *int64 `json:"wordId,omitempty"`
	Category      string `json:"category,omitempty"`
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation,omitempty"`
}

// TestResult is the persisted outcome of one completed test session.
// Append-only: one record per submission, never updated.
type TestResult struct {
	ID                 int64           `json:"id"`
	UserID             int64           `json:"userId"`
	TakenAt            time.Time       `json:"takenAt"`
	DurationSeconds    int             `json:"duration"`
	Score              int             `json:"score"` // percentage 0-100
	Status             string          `json:"status"`
	QuestionsAttempted int             `json:"questionsAttempted"`
	QuestionsCorrect   int             `json:"questionsCorrect"`
	CategoryBreakdown  []CategoryScore `json:"categoryBreakdown"`
	Mistakes           []Mistake       `json:"mistakes"`
}

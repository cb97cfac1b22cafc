package models

import "time"

// ProgressStatus enumerates the mastery states of a word for a user
type ProgressStatus string

const (
	StatusNew      ProgressStatus = "new"
	StatusLearning ProgressStatus = "learning"
	StatusMastered ProgressStatus = "mastered"
)

// IsValid reports whether s is a known progress status
func (s ProgressStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusLearning, StatusMastered:
		return true
	}
	return false
}

// WordProgress is the per-(user, word) learning state. At most one record
// exists per pair; it is created lazily on the first favorite toggle or
// status update and never deleted.
type WordProgress struct {
	ID             int64          `json:"id"`
	UserID         int64          `json:"userId"`
	WordID         int64          `json:"wordId"`
	Status         ProgressStatus `json:"status"`
	IsFavorite     bool           `json:"isFavorite"`
	CorrectCount   int            `json:"correctCount"`
	IncorrectCount int            `json:"incorrectCount"`
	LastReviewed   time.Time      `json:"lastReviewed"`
	NextReview     *time.Time     `json:"nextReview,omitempty"` // reserved for spaced repetition
}

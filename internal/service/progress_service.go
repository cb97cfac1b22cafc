package service

import (
	"fmt"
	"time"

	"github.com/ritikapurwa08/english-mastery/internal/models"
	"github.com/ritikapurwa08/english-mastery/internal/repository"
)

// ProgressService maintains per-word learning state and the daily streak
type ProgressService struct {
	progressRepo *repository.ProgressRepository
	wordRepo     *repository.WordRepository
	userRepo     *repository.UserRepository

	// now is replaceable in tests
	now func() time.Time
}

// NewProgressService creates a new progress service
func NewProgressService(progressRepo *repository.ProgressRepository, wordRepo *repository.WordRepository, userRepo *repository.UserRepository) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		wordRepo:     wordRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
}

// UpdateStatus sets the mastery status of a word for a user, creating the
// progress record lazily on first interaction, and credits the streak.
func (s *ProgressService) UpdateStatus(userID, wordID int64, status models.ProgressStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, status)
	}

	word, err := s.wordRepo.GetByID(wordID)
	if err != nil {
		return fmt.Errorf("failed to check word: %w", err)
	}
	if word == nil {
		return fmt.Errorf("%w: word %d", ErrNotFound, wordID)
	}

	now := s.now()
	existing, err := s.progressRepo.Get(userID, wordID)
	if err != nil {
		return fmt.Errorf("failed to get progress: %w", err)
	}

	if existing != nil {
		if err := s.progressRepo.UpdateStatus(existing.ID, status, now); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	} else {
		_, err := s.progressRepo.Create(&models.WordProgress{
			UserID:       userID,
			WordID:       wordID,
			Status:       status,
			LastReviewed: now,
		})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}

	return s.CreditActivity(userID)
}

// ToggleFavorite flips the favorite flag of a word for a user, creating the
// record lazily with status "new" and the flag set. Favorite-only changes
// never touch the streak.
func (s *ProgressService) ToggleFavorite(userID, wordID int64) (*models.WordProgress, error) {
	word, err := s.wordRepo.GetByID(wordID)
	if err != nil {
		return nil, fmt.Errorf("failed to check word: %w", err)
	}
	if word == nil {
		return nil, fmt.Errorf("%w: word %d", ErrNotFound, wordID)
	}

	existing, err := s.progressRepo.Get(userID, wordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	if existing != nil {
		if err := s.progressRepo.UpdateFavorite(existing.ID, !existing.IsFavorite); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		existing.IsFavorite = !existing.IsFavorite
		return existing, nil
	}

	progress := &models.WordProgress{
		UserID:       userID,
		WordID:       wordID,
		Status:       models.StatusNew,
		IsFavorite:   true,
		LastReviewed: s.now(),
	}
	id, err := s.progressRepo.Create(progress)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	progress.ID = id

	return progress, nil
}

// RecordAnswer updates the per-word answer counters after a graded test
// question, creating the progress record lazily with status "learning".
// The streak is credited separately, once per submission.
func (s *ProgressService) RecordAnswer(userID, wordID int64, correct bool) error {
	now := s.now()
	existing, err := s.progressRepo.Get(userID, wordID)
	if err != nil {
		return fmt.Errorf("failed to get progress: %w", err)
	}

	if existing != nil {
		if err := s.progressRepo.IncrementCounts(existing.ID, correct, now); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return nil
	}

	progress := &models.WordProgress{
		UserID:       userID,
		WordID:       wordID,
		Status:       models.StatusLearning,
		LastReviewed: now,
	}
	if correct {
		progress.CorrectCount = 1
	} else {
		progress.IncorrectCount = 1
	}
	if _, err := s.progressRepo.Create(progress); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// CreditActivity applies the day-boundary streak rules for a user and
// persists the outcome. Day boundaries are UTC. The write is guarded on the
// previously read activity timestamp; losing that race means another request
// already credited the day.
func (s *ProgressService) CreditActivity(userID int64) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	now := s.now()
	newStreak, credited := nextStreak(user.Streak, user.LastActivity, now)
	if !credited {
		return nil
	}

	if _, err := s.userRepo.UpdateStreak(userID, newStreak, now, user.LastActivity); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// nextStreak computes the streak transition for activity at now. Returns
// the new streak value and whether a write is needed. Rules, on UTC
// calendar days: same day is a no-op; yesterday extends the streak by one;
// anything else, including first-ever activity, resets it to one.
func nextStreak(current int, lastActivity *time.Time, now time.Time) (int, bool) {
	today := now.UTC().Truncate(24 * time.Hour)

	if lastActivity == nil {
		return 1, true
	}

	lastDay := lastActivity.UTC().Truncate(24 * time.Hour)
	switch {
	case lastDay.Equal(today):
		return current, false
	case lastDay.Equal(today.Add(-24 * time.Hour)):
		return current + 1, true
	default:
		return 1, true
	}
}

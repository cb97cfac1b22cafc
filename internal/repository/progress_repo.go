package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ritikapurwa08/english-mastery/internal/database"
	"github.com/ritikapurwa08/english-mastery/internal/models"
)

// ProgressRepository handles database operations for per-user word progress
type ProgressRepository struct {
	db *database.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *database.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

const progressColumns = `id, user_id, word_id, status, is_favorite,
	correct_count, incorrect_count, last_reviewed, next_review`

func scanProgress(row interface{ Scan(...interface{}) error }) (*models.WordProgress, error) {
	progress := &models.WordProgress{}
	var nextReview sql.NullTime

	err := row.Scan(
		&progress.ID,
		&progress.UserID,
		&progress.WordID,
		&progress.Status,
		&progress.IsFavorite,
		&progress.CorrectCount,
		&progress.IncorrectCount,
		&progress.LastReviewed,
		&nextReview,
	)
	if err != nil {
		return nil, err
	}

	if nextReview.Valid {
		progress.NextReview = &nextReview.Time
	}

	return progress, nil
}

// Get retrieves the progress record for a (user, word) pair, or nil if the
// user has never interacted with the word.
func (r *ProgressRepository) Get(userID, wordID int64) (*models.WordProgress, error) {
	query := "SELECT " + progressColumns + " FROM word_progress WHERE user_id = ? AND word_id = ?"
	progress, err := scanProgress(r.db.QueryRow(query, userID, wordID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return progress, nil
}

// GetForWords retrieves progress records for a set of words in one query,
// keyed by word ID. Words without a record are simply absent from the map;
// callers treat that as status "new".
func (r *ProgressRepository) GetForWords(userID int64, wordIDs []int64) (map[int64]*models.WordProgress, error) {
	result := make(map[int64]*models.WordProgress, len(wordIDs))
	if len(wordIDs) == 0 {
		return result, nil
	}

	placeholders := make([]string, len(wordIDs))
	args := make([]interface{}, 0, len(wordIDs)+1)
	args = append(args, userID)
	for i, id := range wordIDs {
		placeholders[i] = "?"
		args = append(args, id)
	}

	query := "SELECT " + progressColumns + " FROM word_progress WHERE user_id = ? AND word_id IN (" +
		strings.Join(placeholders, ", ") + ")"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		progress, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		result[progress.WordID] = progress
	}

	return result, rows.Err()
}

// Create inserts a new progress record and returns its ID
func (r *ProgressRepository) Create(progress *models.WordProgress) (int64, error) {
	query := `
		INSERT INTO word_progress (user_id, word_id, status, is_favorite,
			correct_count, incorrect_count, last_reviewed)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		progress.UserID, progress.WordID, string(progress.Status), progress.IsFavorite,
		progress.CorrectCount, progress.IncorrectCount, progress.LastReviewed)
	if err != nil {
		return 0, fmt.Errorf("failed to create progress: %w", err)
	}
	return id, nil
}

// UpdateStatus sets the status and last-reviewed timestamp of a record
func (r *ProgressRepository) UpdateStatus(id int64, status models.ProgressStatus, lastReviewed time.Time) error {
	query := `
		UPDATE word_progress
		SET status = ?, last_reviewed = ?
		WHERE id = ?
	`
	_, err := r.db.Exec(query, string(status), lastReviewed, id)
	return err
}

// IncrementCounts bumps one of the per-word answer counters and refreshes
// the last-reviewed timestamp
func (r *ProgressRepository) IncrementCounts(id int64, correct bool, lastReviewed time.Time) error {
	column := "incorrect_count"
	if correct {
		column = "correct_count"
	}
	query := "UPDATE word_progress SET " + column + " = " + column + " + 1, last_reviewed = ? WHERE id = ?"
	_, err := r.db.Exec(query, lastReviewed, id)
	return err
}

// UpdateFavorite flips the favorite flag of a record
func (r *ProgressRepository) UpdateFavorite(id int64, isFavorite bool) error {
	_, err := r.db.Exec("UPDATE word_progress SET is_favorite = ? WHERE id = ?", isFavorite, id)
	return err
}

// CountReviewedSince counts records the user touched at or after the cutoff
func (r *ProgressRepository) CountReviewedSince(userID int64, since time.Time) (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM word_progress WHERE user_id = ? AND last_reviewed >= ?"
	err := r.db.QueryRow(query, userID, since).Scan(&count)
	return count, err
}

// CountByStatus counts the user's records in a given status
func (r *ProgressRepository) CountByStatus(userID int64, status models.ProgressStatus) (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM word_progress WHERE user_id = ? AND status = ?"
	err := r.db.QueryRow(query, userID, string(status)).Scan(&count)
	return count, err
}

// ListFavorites returns the user's favorited progress records
func (r *ProgressRepository) ListFavorites(userID int64) ([]models.WordProgress, error) {
	query := "SELECT " + progressColumns + ` FROM word_progress
		WHERE user_id = ? AND is_favorite = ?
		ORDER BY last_reviewed DESC`

	rows, err := r.db.Query(query, userID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var records []models.WordProgress
	for rows.Next() {
		progress, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *progress)
	}

	return records, rows.Err()
}

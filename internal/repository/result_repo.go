package repository

import (
	"database/sql"
	"fmt"

	"github.com/ritikapurwa08/english-mastery/internal/database"
	"github.com/ritikapurwa08/english-mastery/internal/models"
)

// ResultRepository handles database operations for the test result archive.
// Results are append-only: written once per completed test, never updated.
type ResultRepository struct {
	db *database.DB
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *database.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// Create persists a graded test result with its category breakdown and
// mistakes in one transaction, returning the new result ID.
func (r *ResultRepository) Create(result *models.TestResult) (int64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	resultID, err := tx.ExecReturningID(`
		INSERT INTO test_results (user_id, taken_at, duration_seconds, score, status,
			questions_attempted, questions_correct)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, result.UserID, result.TakenAt, result.DurationSeconds, result.Score,
		result.Status, result.QuestionsAttempted, result.QuestionsCorrect)
	if err != nil {
		return 0, fmt.Errorf("failed to insert result: %w", err)
	}

	for _, cat := range result.CategoryBreakdown {
		_, err := tx.Exec(`
			INSERT INTO test_result_categories (result_id, category, correct, total)
			VALUES (?, ?, ?, ?)
		`, resultID, cat.Category, cat.Correct, cat.Total)
		if err != nil {
			return 0, fmt.Errorf("failed to insert category breakdown: %w", err)
		}
	}

	for i, mistake := range result.Mistakes {
		var wordID interface{}
		if mistake.WordID != nil {
			wordID = *mistake.WordID
		}
		_, err := tx.Exec(`
			INSERT INTO test_result_mistakes (result_id, position, word_id, category,
				question, user_answer, correct_answer, explanation)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, resultID, i, wordID, mistake.Category, mistake.Question,
			mistake.UserAnswer, mistake.CorrectAnswer, mistake.Explanation)
		if err != nil {
			return 0, fmt.Errorf("failed to insert mistake: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit result: %w", err)
	}

	return resultID, nil
}

// GetByID retrieves a result with its breakdown and mistakes, or nil if absent
func (r *ResultRepository) GetByID(resultID int64) (*models.TestResult, error) {
	query := `
		SELECT id, user_id, taken_at, duration_seconds, score, status,
			questions_attempted, questions_correct
		FROM test_results
		WHERE id = ?
	`
	result := &models.TestResult{}
	err := r.db.QueryRow(query, resultID).Scan(
		&result.ID,
		&result.UserID,
		&result.TakenAt,
		&result.DurationSeconds,
		&result.Score,
		&result.Status,
		&result.QuestionsAttempted,
		&result.QuestionsCorrect,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	if result.CategoryBreakdown, err = r.getCategories(resultID); err != nil {
		return nil, err
	}
	if result.Mistakes, err = r.getMistakes(resultID); err != nil {
		return nil, err
	}

	return result, nil
}

// ListByUser retrieves the user's most recent results, newest first,
// without the per-result children.
func (r *ResultRepository) ListByUser(userID int64, limit int) ([]models.TestResult, error) {
	query := `
		SELECT id, user_id, taken_at, duration_seconds, score, status,
			questions_attempted, questions_correct
		FROM test_results
		WHERE user_id = ?
		ORDER BY taken_at DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var results []models.TestResult
	for rows.Next() {
		var result models.TestResult
		err := rows.Scan(
			&result.ID,
			&result.UserID,
			&result.TakenAt,
			&result.DurationSeconds,
			&result.Score,
			&result.Status,
			&result.QuestionsAttempted,
			&result.QuestionsCorrect,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// UserAggregates summarizes a user's whole test history
type UserAggregates struct {
	TotalTests     int
	ScoreSum       int
	QuestionsTotal int
	CorrectTotal   int
}

// GetUserAggregates computes history-wide totals for a user
func (r *ResultRepository) GetUserAggregates(userID int64) (*UserAggregates, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(score), 0),
			COALESCE(SUM(questions_attempted), 0), COALESCE(SUM(questions_correct), 0)
		FROM test_results
		WHERE user_id = ?
	`
	agg := &UserAggregates{}
	err := r.db.QueryRow(query, userID).Scan(
		&agg.TotalTests,
		&agg.ScoreSum,
		&agg.QuestionsTotal,
		&agg.CorrectTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate results: %w", err)
	}
	return agg, nil
}

// GetCategoryTotals sums per-category correct/total across a user's history
func (r *ResultRepository) GetCategoryTotals(userID int64) ([]models.CategoryScore, error) {
	query := `
		SELECT c.category, COALESCE(SUM(c.correct), 0), COALESCE(SUM(c.total), 0)
		FROM test_result_categories c
		JOIN test_results t ON t.id = c.result_id
		WHERE t.user_id = ?
		GROUP BY c.category
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category totals: %w", err)
	}
	defer rows.Close()

	var totals []models.CategoryScore
	for rows.Next() {
		var score models.CategoryScore
		if err := rows.Scan(&score.Category, &score.Correct, &score.Total); err != nil {
			return nil, err
		}
		totals = append(totals, score)
	}

	return totals, rows.Err()
}

func (r *ResultRepository) getCategories(resultID int64) ([]models.CategoryScore, error) {
	query := `
		SELECT category, correct, total
		FROM test_result_categories
		WHERE result_id = ?
		ORDER BY category
	`

	rows, err := r.db.Query(query, resultID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category breakdown: %w", err)
	}
	defer rows.Close()

	var categories []models.CategoryScore
	for rows.Next() {
		var score models.CategoryScore
		if err := rows.Scan(&score.Category, &score.Correct, &score.Total); err != nil {
			return nil, err
		}
		categories = append(categories, score)
	}

	return categories, rows.Err()
}

func (r *ResultRepository) getMistakes(resultID int64) ([]models.Mistake, error) {
	query := `
		SELECT word_id, COALESCE(category, ''), question, user_answer,
			correct_answer, COALESCE(explanation, '')
		FROM test_result_mistakes
		WHERE result_id = ?
		ORDER BY position
	`

	rows, err := r.db.Query(query, resultID)
	if err != nil {
		return nil, fmt.Errorf("failed to get mistakes: %w", err)
	}
	defer rows.Close()

	var mistakes []models.Mistake
	for rows.Next() {
		var mistake models.Mistake
		var wordID sql.NullInt64
		err := rows.Scan(
			&wordID,
			&mistake.Category,
			&mistake.Question,
			&mistake.UserAnswer,
			&mistake.CorrectAnswer,
			&mistake.Explanation,
		)
		if err != nil {
			return nil, err
		}
		if wordID.Valid {
			mistake.WordID = &wordID.Int64
		}
		mistakes = append(mistakes, mistake)
	}

	return mistakes, rows.Err()
}

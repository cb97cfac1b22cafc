package repository

import (
	"database/sql"
	"fmt"

	"github.com/ritikapurwa08/english-mastery/internal/database"
	"github.com/ritikapurwa08/english-mastery/internal/models"
)

// QuestionRepository handles database operations for the question bank
type QuestionRepository struct {
	db *database.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *database.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

const questionColumns = `id, type, category, difficulty, question, options,
	correct_answer, COALESCE(explanation, ''), word_id, created_at`

func scanQuestion(row interface{ Scan(...interface{}) error }) (*models.Question, error) {
	question := &models.Question{}
	var options string
	var wordID sql.NullInt64

	err := row.Scan(
		&question.ID,
		&question.Type,
		&question.Category,
		&question.Difficulty,
		&question.Question,
		&options,
		&question.CorrectAnswer,
		&question.Explanation,
		&wordID,
		&question.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if question.Options, err = unmarshalStrings(options); err != nil {
		return nil, fmt.Errorf("question %d: bad options column: %w", question.ID, err)
	}
	if wordID.Valid {
		question.WordID = &wordID.Int64
	}

	return question, nil
}

// GetByID retrieves a question by ID, or nil if it does not exist
func (r *QuestionRepository) GetByID(id int64) (*models.Question, error) {
	query := "SELECT " + questionColumns + " FROM questions WHERE id = ?"
	question, err := scanQuestion(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return question, nil
}

// GetByCategory returns up to limit questions tagged with the given storage
// category token. A category with no questions yields an empty slice.
func (r *QuestionRepository) GetByCategory(category string, limit int) ([]models.Question, error) {
	query := "SELECT " + questionColumns + " FROM questions WHERE category = ? LIMIT ?"

	rows, err := r.db.Query(query, category, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *question)
	}

	return questions, rows.Err()
}

// Create inserts a new question and returns its ID
func (r *QuestionRepository) Create(question *models.Question) (int64, error) {
	options, err := marshalStrings(question.Options)
	if err != nil {
		return 0, err
	}

	var wordID interface{}
	if question.WordID != nil {
		wordID = *question.WordID
	}

	query := `
		INSERT INTO questions (type, category, difficulty, question, options,
			correct_answer, explanation, word_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		string(question.Type), question.Category, question.Difficulty,
		question.Question, options, question.CorrectAnswer, question.Explanation, wordID)
	if err != nil {
		return 0, fmt.Errorf("failed to create question: %w", err)
	}
	return id, nil
}

// CountByCategory returns the number of questions per storage category
func (r *QuestionRepository) CountByCategory() (map[string]int, error) {
	rows, err := r.db.Query("SELECT category, COUNT(*) FROM questions GROUP BY category")
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		counts[category] = count
	}

	return counts, rows.Err()
}

package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/ritikapurwa08/english-mastery/internal/database"
	"github.com/ritikapurwa08/english-mastery/internal/models"
)

// MaxPageSize bounds a single word-browsing page
const MaxPageSize = 50

// WordRepository handles database operations for the word catalog
type WordRepository struct {
	db *database.DB
}

// NewWordRepository creates a new word repository
func NewWordRepository(db *database.DB) *WordRepository {
	return &WordRepository{db: db}
}

// WordFilter narrows a word listing. Zero values mean "no filter".
type WordFilter struct {
	Category   string
	Difficulty string
	Search     string // substring match on word text

	// ExcludeMasteredFor skips words the given user has mastered (study mode)
	ExcludeMasteredFor int64

	Limit  int
	Offset int
}

const wordColumns = `id, text, definition, COALESCE(pronunciation, ''), category,
	difficulty, step, examples, english_synonyms, hindi_synonyms, antonyms, created_at`

func scanWord(row interface{ Scan(...interface{}) error }) (*models.Word, error) {
	word := &models.Word{}
	var examples, engSyn, hinSyn, antonyms string

	err := row.Scan(
		&word.ID,
		&word.Text,
		&word.Definition,
		&word.Pronunciation,
		&word.Category,
		&word.Difficulty,
		&word.Step,
		&examples,
		&engSyn,
		&hinSyn,
		&antonyms,
		&word.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if word.Examples, err = unmarshalExamples(examples); err != nil {
		return nil, fmt.Errorf("word %d: bad examples column: %w", word.ID, err)
	}
	if word.EnglishSynonyms, err = unmarshalStrings(engSyn); err != nil {
		return nil, fmt.Errorf("word %d: bad english_synonyms column: %w", word.ID, err)
	}
	if word.HindiSynonyms, err = unmarshalStrings(hinSyn); err != nil {
		return nil, fmt.Errorf("word %d: bad hindi_synonyms column: %w", word.ID, err)
	}
	if word.Antonyms, err = unmarshalStrings(antonyms); err != nil {
		return nil, fmt.Errorf("word %d: bad antonyms column: %w", word.ID, err)
	}

	return word, nil
}

// GetByID retrieves a word by ID, or nil if it does not exist
func (r *WordRepository) GetByID(id int64) (*models.Word, error) {
	query := "SELECT " + wordColumns + " FROM words WHERE id = ?"
	word, err := scanWord(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word: %w", err)
	}
	return word, nil
}

// GetByText retrieves a word by its exact text, or nil if absent
func (r *WordRepository) GetByText(text string) (*models.Word, error) {
	query := "SELECT " + wordColumns + " FROM words WHERE text = ?"
	word, err := scanWord(r.db.QueryRow(query, text))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word by text: %w", err)
	}
	return word, nil
}

// List returns a page of words matching the filter, plus whether more pages
// exist. The search filter is a substring scan; there is no search index.
func (r *WordRepository) List(filter WordFilter) ([]models.Word, bool, error) {
	limit := filter.Limit
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}

	var conditions []string
	var args []interface{}

	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Difficulty != "" {
		conditions = append(conditions, "difficulty = ?")
		args = append(args, filter.Difficulty)
	}
	if filter.Search != "" {
		conditions = append(conditions, "text LIKE ?")
		args = append(args, "%"+filter.Search+"%")
	}
	if filter.ExcludeMasteredFor != 0 {
		conditions = append(conditions, `NOT EXISTS (
			SELECT 1 FROM word_progress wp
			WHERE wp.user_id = ? AND wp.word_id = words.id AND wp.status = 'mastered'
		)`)
		args = append(args, filter.ExcludeMasteredFor)
	}

	query := "SELECT " + wordColumns + " FROM words"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	// Fetch one extra row to detect whether another page exists
	query += " ORDER BY step, id LIMIT ? OFFSET ?"
	args = append(args, limit+1, filter.Offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("failed to list words: %w", err)
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, false, err
		}
		words = append(words, *word)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}

	hasMore := len(words) > limit
	if hasMore {
		words = words[:limit]
	}

	return words, hasMore, nil
}

// Create inserts a new word and returns its ID
func (r *WordRepository) Create(word *models.Word) (int64, error) {
	examples, err := marshalExamples(word.Examples)
	if err != nil {
		return 0, err
	}
	engSyn, err := marshalStrings(word.EnglishSynonyms)
	if err != nil {
		return 0, err
	}
	hinSyn, err := marshalStrings(word.HindiSynonyms)
	if err != nil {
		return 0, err
	}
	antonyms, err := marshalStrings(word.Antonyms)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO words (text, definition, pronunciation, category, difficulty, step,
			examples, english_synonyms, hindi_synonyms, antonyms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		word.Text, word.Definition, word.Pronunciation, word.Category,
		word.Difficulty, word.Step, examples, engSyn, hinSyn, antonyms)
	if err != nil {
		return 0, fmt.Errorf("failed to create word: %w", err)
	}
	return id, nil
}

// Update replaces the content fields of an existing word
func (r *WordRepository) Update(word *models.Word) error {
	examples, err := marshalExamples(word.Examples)
	if err != nil {
		return err
	}
	engSyn, err := marshalStrings(word.EnglishSynonyms)
	if err != nil {
		return err
	}
	hinSyn, err := marshalStrings(word.HindiSynonyms)
	if err != nil {
		return err
	}
	antonyms, err := marshalStrings(word.Antonyms)
	if err != nil {
		return err
	}

	query := `
		UPDATE words
		SET definition = ?, pronunciation = ?, category = ?, difficulty = ?, step = ?,
			examples = ?, english_synonyms = ?, hindi_synonyms = ?, antonyms = ?
		WHERE id = ?
	`
	_, err = r.db.Exec(query,
		word.Definition, word.Pronunciation, word.Category, word.Difficulty, word.Step,
		examples, engSyn, hinSyn, antonyms, word.ID)
	if err != nil {
		return fmt.Errorf("failed to update word: %w", err)
	}
	return nil
}

package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ritikapurwa08/english-mastery/internal/models"
	"github.com/ritikapurwa08/english-mastery/internal/repository"
)

// ImportQuestions loads pre-authored quiz questions from a JSON file. Rows
// whose correct answer is not among the options are rejected, so the grader
// can rely on that invariant.
func ImportQuestions(questionRepo *repository.QuestionRepository, wordRepo *repository.WordRepository, filePath string) (*ImportResult, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read questions file: %w", err)
	}

	var questions []questionRow
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to parse questions file: %w", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	for i, row := range questions {
		result.TotalProcessed++
		if err := importQuestion(questionRepo, wordRepo, row); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Question %d: %v", i+1, err))
			continue
		}
		result.Created++
	}

	return result, nil
}

type questionRow struct {
	Type          models.QuestionType `json:"type"`
	Category      string              `json:"category"`
	Difficulty    string              `json:"difficulty"`
	Question      string              `json:"question"`
	Options       []string            `json:"options"`
	CorrectAnswer string              `json:"correctAnswer"`
	Explanation   string              `json:"explanation"`
	RelatedWord   string              `json:"relatedWord"`
}

func importQuestion(questionRepo *repository.QuestionRepository, wordRepo *repository.WordRepository, row questionRow) error {
	if !row.Type.IsValid() {
		return fmt.Errorf("unknown question type %q", row.Type)
	}
	if strings.TrimSpace(row.Question) == "" {
		return fmt.Errorf("question text cannot be empty")
	}
	if strings.TrimSpace(row.Category) == "" {
		return fmt.Errorf("category cannot be empty")
	}
	if len(row.Options) < 2 {
		return fmt.Errorf("at least two options are required")
	}
	if !contains(row.Options, row.CorrectAnswer) {
		return fmt.Errorf("correct answer is not among the options")
	}

	question := &models.Question{
		Type:          row.Type,
		Category:      strings.ToLower(strings.TrimSpace(row.Category)),
		Difficulty:    strings.ToUpper(strings.TrimSpace(row.Difficulty)),
		Question:      row.Question,
		Options:       row.Options,
		CorrectAnswer: row.CorrectAnswer,
		Explanation:   row.Explanation,
	}

	if row.RelatedWord != "" {
		word, err := wordRepo.GetByText(row.RelatedWord)
		if err != nil {
			return fmt.Errorf("failed to look up related word: %w", err)
		}
		if word == nil {
			return fmt.Errorf("related word %q not found", row.RelatedWord)
		}
		question.WordID = &word.ID
	}

	if _, err := questionRepo.Create(question); err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

func contains(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}

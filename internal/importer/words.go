package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ritikapurwa08/english-mastery/internal/models"
	"github.com/ritikapurwa08/english-mastery/internal/repository"
)

// WordImportConfig maps spreadsheet columns onto word fields. Multi-valued
// cells (examples, synonyms, antonyms) use ";" between entries; an example
// entry may carry a translation after "|".
type WordImportConfig struct {
	FilePath          string
	SheetName         string
	StartRow          int // 1-based, rows before it are skipped

	TextColumn          string
	DefinitionColumn    string
	PronunciationColumn string
	CategoryColumn      string
	DifficultyColumn    string
	StepColumn          string
	ExamplesColumn      string
	EnglishSynsColumn   string
	HindiSynsColumn     string
	AntonymsColumn      string
}

// DefaultWordImportConfig returns the column layout the stock seed files use
func DefaultWordImportConfig() WordImportConfig {
	return WordImportConfig{
		SheetName:           "Sheet1",
		StartRow:            2,
		TextColumn:          "A",
		DefinitionColumn:    "B",
		PronunciationColumn: "C",
		CategoryColumn:      "D",
		DifficultyColumn:    "E",
		StepColumn:          "F",
		ExamplesColumn:      "G",
		EnglishSynsColumn:   "H",
		HindiSynsColumn:     "I",
		AntonymsColumn:      "J",
	}
}

// ImportResult summarizes an import run
type ImportResult struct {
	TotalProcessed int
	Created        int
	Updated        int
	Errors         []string
}

// ImportWords loads words from an Excel or CSV file into the catalog,
// updating rows whose text already exists.
func ImportWords(wordRepo *repository.WordRepository, config WordImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importWordsFromCSV(wordRepo, config)
	}
	return importWordsFromExcel(wordRepo, config)
}

func importWordsFromExcel(wordRepo *repository.WordRepository, config WordImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++
		if err := processWordRow(wordRepo, row, config, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}

	return result, nil
}

func importWordsFromCSV(wordRepo *repository.WordRepository, config WordImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	result := &ImportResult{Errors: make([]string, 0)}
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}

		rowNum++
		if rowNum < config.StartRow {
			continue
		}

		result.TotalProcessed++
		if err := processWordRow(wordRepo, row, config, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}

	return result, nil
}

func processWordRow(wordRepo *repository.WordRepository, row []string, config WordImportConfig, result *ImportResult) error {
	cell := func(column string) string {
		if column == "" {
			return ""
		}
		if idx := columnToIndex(column); idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	text := cell(config.TextColumn)
	if text == "" {
		return fmt.Errorf("word text cannot be empty")
	}
	definition := cell(config.DefinitionColumn)
	if definition == "" {
		return fmt.Errorf("definition cannot be empty")
	}

	step := 0
	if raw := cell(config.StepColumn); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid step %q", raw)
		}
		step = n
	}

	word := &models.Word{
		Text:            text,
		Definition:      definition,
		Pronunciation:   cell(config.PronunciationColumn),
		Category:        strings.ToLower(cell(config.CategoryColumn)),
		Difficulty:      strings.ToUpper(cell(config.DifficultyColumn)),
		Step:            step,
		Examples:        parseExamples(cell(config.ExamplesColumn)),
		EnglishSynonyms: splitList(cell(config.EnglishSynsColumn)),
		HindiSynonyms:   splitList(cell(config.HindiSynsColumn)),
		Antonyms:        splitList(cell(config.AntonymsColumn)),
	}

	existing, err := wordRepo.GetByText(text)
	if err != nil {
		return fmt.Errorf("failed to look up existing word: %w", err)
	}

	if existing != nil {
		word.ID = existing.ID
		if err := wordRepo.Update(word); err != nil {
			return fmt.Errorf("failed to update word: %w", err)
		}
		result.Updated++
		return nil
	}

	if _, err := wordRepo.Create(word); err != nil {
		return fmt.Errorf("failed to create word: %w", err)
	}
	result.Created++
	return nil
}

// parseExamples splits "sentence|translation; sentence" into example entries
func parseExamples(raw string) []models.Example {
	var examples []models.Example
	for _, entry := range splitList(raw) {
		parts := strings.SplitN(entry, "|", 2)
		example := models.Example{Sentence: strings.TrimSpace(parts[0])}
		if len(parts) == 2 {
			example.Translation = strings.TrimSpace(parts[1])
		}
		if example.Sentence != "" {
			examples = append(examples, example)
		}
	}
	return examples
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(raw, ";") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	index := 0
	for i := 0; i < len(column); i++ {
		if column[i] < 'A' || column[i] > 'Z' {
			return -1
		}
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}

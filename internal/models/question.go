package models

import "time"

// QuestionType enumerates the supported quiz question formats
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	FillBlank      QuestionType = "fill-blank"
	Boolean        QuestionType = "boolean"
)

// IsValid reports whether t is a known question type
func (t QuestionType) IsValid() bool {
	switch t {
	case MultipleChoice, FillBlank, Boolean:
		return true
	}
	return false
}

// Question represents a pre-authored quiz question. The correct answer is
// always one of the options; the seed tooling rejects rows that violate this.
type Question struct {
	ID            int64        `json:"id"`
	Type          QuestionType `json:"type"`
	Category      string       `json:"category"`
	Difficulty    string       `json:"difficulty"`
	Question      string       `json:"question"`
	Options       []string     `json:"options"`
	CorrectAnswer string       `json:"correctAnswer"`
	Explanation   string       `json:"explanation,omitempty"`
	WordID        *int64       `json:"relatedWordId,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// GeneratedTest is an ephemeral, shuffled batch of questions. It is handed
// to the client and never persisted; a result record is written only when
// the answered test is submitted.
type GeneratedTest struct {
	TestID    string     `json:"testId"`
	Questions []Question `json:"questions"`
}

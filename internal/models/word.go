package models

import "time"

// Example is a usage sentence attached to a word
type Example struct {
	Sentence    string `json:"sentence"`
	Translation string `json:"translation,omitempty"`
}

// Word represents an entry in the word catalog. Words are written by the
// seed tooling and are read-only to the rest of the application.
type Word struct {
	ID              int64     `json:"id"`
	Text            string    `json:"text"`
	Definition      string    `json:"definition"`
	Pronunciation   string    `json:"pronunciation,omitempty"`
	Category        string    `json:"category"`
	Difficulty      string    `json:"difficulty"` // CEFR level: B1, B2, C1, C2
	Step            int       `json:"step"`
	Examples        []Example `json:"examples,omitempty"`
	EnglishSynonyms []string  `json:"englishSynonyms,omitempty"`
	HindiSynonyms   []string  `json:"hindiSynonyms,omitempty"`
	Antonyms        []string  `json:"antonyms,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// WordWithProgress pairs a word with the calling user's progress record.
// Progress is nil when the user has never interacted with the word.
type WordWithProgress struct {
	Word
	Progress *WordProgress `json:"userProgress,omitempty"`
}

package repository

import (
	"encoding/json"

	"github.com/ritikapurwa08/english-mastery/internal/models"
)

// Small word-list and example-list fields are stored as JSON-encoded TEXT
// columns rather than join tables; they are bounded, opaque to queries, and
// always read and written whole.

func marshalStrings(values []string) (string, error) {
	if len(values) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalStrings(data string) ([]string, error) {
	if data == "" {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values, nil
}

func marshalExamples(examples []models.Example) (string, error) {
	if len(examples) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(examples)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalExamples(data string) ([]models.Example, error) {
	if data == "" {
		return nil, nil
	}
	var examples []models.Example
	if err := json.Unmarshal([]byte(data), &examples); err != nil {
		return nil, err
	}
	if len(examples) == 0 {
		return nil, nil
	}
	return examples, nil
}

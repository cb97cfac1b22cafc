package importer

import (
	"reflect"
	"testing"

	"github.com/ritikapurwa08/english-mastery/internal/models"
)

func TestColumnToIndex(t *testing.T) {
	tests := []struct {
		column string
		want   int
	}{
		{"A", 0},
		{"B", 1},
		{"Z", 25},
		{"AA", 26},
		{"AB", 27},
		{"a", 0},
		{" C ", 2},
		{"", -1},
		{"A1", -1},
		{"?", -1},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			if got := columnToIndex(tt.column); got != tt.want {
				t.Errorf("columnToIndex(%q) = %d, want %d", tt.column, got, tt.want)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"single", "quick", []string{"quick"}},
		{"multiple", "quick; fast;rapid", []string{"quick", "fast", "rapid"}},
		{"blank entries dropped", "quick;; ;fast", []string{"quick", "fast"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitList(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseExamples(t *testing.T) {
	got := parseExamples("She runs fast.|वह तेज़ दौड़ती है।; He is quick.")
	want := []models.Example{
		{Sentence: "She runs fast.", Translation: "वह तेज़ दौड़ती है।"},
		{Sentence: "He is quick."},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseExamples() = %v, want %v", got, want)
	}

	if parseExamples("") != nil {
		t.Error("parseExamples(\"\") should be nil")
	}
	if parseExamples(" ; |translation only") != nil {
		t.Error("entries without a sentence should be dropped")
	}
}

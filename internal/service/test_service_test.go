package service

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/ritikapurwa08/english-mastery/internal/models"
)

func TestScorePercentage(t *testing.T) {
	tests := []struct {
		name     string
		correct  int
		total    int
		expected int
	}{
		{"perfect", 10, 10, 100},
		{"zero correct", 0, 10, 0},
		{"empty test", 0, 0, 0},
		{"seven of ten", 7, 10, 70},
		{"one third rounds down", 1, 3, 33},
		{"two thirds rounds up", 2, 3, 67},
		{"eighth rounds half up", 1, 8, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scorePercentage(tt.correct, tt.total); got != tt.expected {
				t.Errorf("scorePercentage(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.expected)
			}
		})
	}
}

func TestGradeQuestions(t *testing.T) {
	questions := []models.Question{
		{ID: 1, Category: "vocabulary", Question: "Q1", CorrectAnswer: "alpha"},
		{ID: 2, Category: "vocabulary", Question: "Q2", CorrectAnswer: "beta"},
		{ID: 3, Category: "idioms", Question: "Q3", CorrectAnswer: "gamma", Explanation: "because"},
		{ID: 4, Category: "", Question: "Q4", CorrectAnswer: "delta"},
	}
	answers := []string{"alpha", "wrong", "", "delta"}

	graded := gradeQuestions(questions, answers)

	if graded.QuestionsAttempted != 4 {
		t.Errorf("QuestionsAttempted = %d, want 4", graded.QuestionsAttempted)
	}
	if graded.QuestionsCorrect != 2 {
		t.Errorf("QuestionsCorrect = %d, want 2", graded.QuestionsCorrect)
	}
	if graded.Score != 50 {
		t.Errorf("Score = %d, want 50", graded.Score)
	}

	if len(graded.Mistakes) != 2 {
		t.Fatalf("len(Mistakes) = %d, want 2", len(graded.Mistakes))
	}
	if graded.Mistakes[0].Question != "Q2" || graded.Mistakes[0].UserAnswer != "wrong" {
		t.Errorf("first mistake = %+v, want Q2/wrong", graded.Mistakes[0])
	}
	if graded.Mistakes[1].UserAnswer != SkippedAnswer {
		t.Errorf("skipped answer recorded as %q, want %q", graded.Mistakes[1].UserAnswer, SkippedAnswer)
	}
	if graded.Mistakes[1].Explanation != "because" {
		t.Errorf("mistake explanation = %q, want %q", graded.Mistakes[1].Explanation, "because")
	}
}

func TestGradeQuestionsCategoryBreakdown(t *testing.T) {
	questions := []models.Question{
		{ID: 1, Category: "grammar", Question: "Q1", CorrectAnswer: "a"},
		{ID: 2, Category: "idioms", Question: "Q2", CorrectAnswer: "b"},
		{ID: 3, Category: "grammar", Question: "Q3", CorrectAnswer: "c"},
		{ID: 4, Category: "", Question: "Q4", CorrectAnswer: "d"},
	}
	answers := []string{"a", "x", "c", ""}

	graded := gradeQuestions(questions, answers)

	// Categories appear in first-appearance order
	want := []models.CategoryScore{
		{Category: "grammar", Correct: 2, Total: 2},
		{Category: "idioms", Correct: 0, Total: 1},
		{Category: "General", Correct: 0, Total: 1},
	}
	if len(graded.CategoryBreakdown) != len(want) {
		t.Fatalf("len(CategoryBreakdown) = %d, want %d", len(graded.CategoryBreakdown), len(want))
	}
	for i, w := range want {
		got := graded.CategoryBreakdown[i]
		if got != w {
			t.Errorf("breakdown[%d] = %+v, want %+v", i, got, w)
		}
	}

	// Breakdown totals reconcile with the headline numbers
	sumTotal, sumCorrect := 0, 0
	for _, cat := range graded.CategoryBreakdown {
		sumTotal += cat.Total
		sumCorrect += cat.Correct
	}
	if sumTotal != graded.QuestionsAttempted || sumCorrect != graded.QuestionsCorrect {
		t.Errorf("breakdown sums (%d, %d) do not match attempted/correct (%d, %d)",
			sumTotal, sumCorrect, graded.QuestionsAttempted, graded.QuestionsCorrect)
	}
}

func TestGradeQuestionsDuplicateText(t *testing.T) {
	// Two questions share text; only the wrongly answered one becomes a
	// mistake and the breakdown still counts both.
	questions := []models.Question{
		{ID: 1, Category: "vocabulary", Question: "same text", CorrectAnswer: "a"},
		{ID: 2, Category: "vocabulary", Question: "same text", CorrectAnswer: "b"},
	}
	graded := gradeQuestions(questions, []string{"a", "nope"})

	if graded.QuestionsCorrect != 1 {
		t.Errorf("QuestionsCorrect = %d, want 1", graded.QuestionsCorrect)
	}
	if len(graded.Mistakes) != 1 {
		t.Fatalf("len(Mistakes) = %d, want 1", len(graded.Mistakes))
	}
	if graded.CategoryBreakdown[0].Total != 2 || graded.CategoryBreakdown[0].Correct != 1 {
		t.Errorf("breakdown = %+v, want Total 2 Correct 1", graded.CategoryBreakdown[0])
	}
}

func TestGradeQuestionsMissingAnswersAreSkips(t *testing.T) {
	questions := []models.Question{
		{ID: 1, Question: "Q1", CorrectAnswer: "a"},
		{ID: 2, Question: "Q2", CorrectAnswer: "b"},
	}
	graded := gradeQuestions(questions, []string{"a"})

	if graded.QuestionsCorrect != 1 {
		t.Errorf("QuestionsCorrect = %d, want 1", graded.QuestionsCorrect)
	}
	if len(graded.Mistakes) != 1 || graded.Mistakes[0].UserAnswer != SkippedAnswer {
		t.Errorf("missing answer should grade as skip, got %+v", graded.Mistakes)
	}
}

func TestShuffleQuestionsIsPermutation(t *testing.T) {
	questions := make([]models.Question, 30)
	for i := range questions {
		questions[i] = models.Question{ID: int64(i + 1)}
	}

	rng := rand.New(rand.NewSource(42))
	shuffleQuestions(questions, rng.Intn)

	if len(questions) != 30 {
		t.Fatalf("len changed to %d", len(questions))
	}
	seen := make(map[int64]bool, len(questions))
	for _, q := range questions {
		if seen[q.ID] {
			t.Fatalf("duplicate ID %d after shuffle", q.ID)
		}
		seen[q.ID] = true
	}
	for id := int64(1); id <= 30; id++ {
		if !seen[id] {
			t.Errorf("ID %d lost in shuffle", id)
		}
	}
}

func TestShuffleQuestionsDeterministicWithSeed(t *testing.T) {
	build := func() []models.Question {
		qs := make([]models.Question, 10)
		for i := range qs {
			qs[i] = models.Question{ID: int64(i)}
		}
		return qs
	}

	first := build()
	second := build()
	shuffleQuestions(first, rand.New(rand.NewSource(7)).Intn)
	shuffleQuestions(second, rand.New(rand.NewSource(7)).Intn)

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("same seed produced different orders at %d: %d vs %d", i, first[i].ID, second[i].ID)
		}
	}
}

func TestShuffleQuestionsSmallSlices(t *testing.T) {
	// Zero and one element slices must not panic
	shuffleQuestions(nil, rand.Intn)
	one := []models.Question{{ID: 1}}
	shuffleQuestions(one, rand.Intn)
	if one[0].ID != 1 {
		t.Errorf("single element changed: %d", one[0].ID)
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		ui      string
		storage string
		wantErr bool
	}{
		{"vocabulary", "vocabulary", false},
		{"idioms", "idioms", false},
		{"grammar", "grammar", false},
		{"antonyms", "antonyms", false},
		{"phrasal-verbs", "phrasal verbs", false},
		{"phrasal verbs", "", true},
		{"Vocabulary", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.ui, func(t *testing.T) {
			got, err := NormalizeCategory(tt.ui)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("NormalizeCategory(%q) error = %v, want ErrInvalidArgument", tt.ui, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeCategory(%q) unexpected error: %v", tt.ui, err)
			}
			if got != tt.storage {
				t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.ui, got, tt.storage)
			}
		})
	}
}

func TestCategoryRoundTrip(t *testing.T) {
	for _, ui := range SupportedCategories() {
		storage, err := NormalizeCategory(ui)
		if err != nil {
			t.Fatalf("NormalizeCategory(%q): %v", ui, err)
		}
		if back := DisplayCategory(storage); back != ui {
			t.Errorf("round trip %q -> %q -> %q", ui, storage, back)
		}
	}
}

func TestDisplayCategoryPassthrough(t *testing.T) {
	if got := DisplayCategory("General"); got != "General" {
		t.Errorf("DisplayCategory(General) = %q, want General", got)
	}
}

package service

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/ritikapurwa08/english-mastery/internal/models"
	"github.com/ritikapurwa08/english-mastery/internal/repository"
	"github.com/ritikapurwa08/english-mastery/internal/security"
)

const (
	// questionsPerCategory caps each category's candidate pool before mixing,
	// bounding both fetch latency and per-category dominance.
	questionsPerCategory = 20

	// maxQuestionCount bounds a single generated test
	maxQuestionCount = 50

	// historyLimit bounds the test history listing
	historyLimit = 20

	// SkippedAnswer is the sentinel recorded for unanswered questions
	SkippedAnswer = "Skipped"

	// generalCategory labels questions that carry no category tag
	generalCategory = "General"
)

// TestService generates, grades and archives vocabulary tests
type TestService struct {
	questionRepo    *repository.QuestionRepository
	resultRepo      *repository.ResultRepository
	progressService *ProgressService

	// intn returns a uniform random int in [0, n); tests inject a seeded one
	intn func(n int) int
}

// NewTestService creates a new test service
func NewTestService(questionRepo *repository.QuestionRepository, resultRepo *repository.ResultRepository, progressService *ProgressService) *TestService {
	return &TestService{
		questionRepo:    questionRepo,
		resultRepo:      resultRepo,
		progressService: progressService,
		intn:            rand.Intn,
	}
}

// GenerateTest builds a shuffled test of at most questionCount questions
// drawn from the selected UI category tokens. Pure read plus shuffle:
// nothing is persisted until the answered test is submitted.
func (s *TestService) GenerateTest(categories []string, questionCount int) (*models.GeneratedTest, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: at least one category is required", ErrInvalidArgument)
	}
	if questionCount <= 0 {
		return nil, fmt.Errorf("%w: question count must be positive", ErrInvalidArgument)
	}
	if questionCount > maxQuestionCount {
		questionCount = maxQuestionCount
	}

	var pool []models.Question
	for _, category := range categories {
		storage, err := NormalizeCategory(category)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidArgument, category)
		}

		// A category with no questions contributes nothing; not an error
		questions, err := s.questionRepo.GetByCategory(storage, questionsPerCategory)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s questions: %w", storage, err)
		}
		pool = append(pool, questions...)
	}

	shuffleQuestions(pool, s.intn)

	if len(pool) > questionCount {
		pool = pool[:questionCount]
	}

	return &models.GeneratedTest{
		TestID:    security.GenerateTestID(),
		Questions: pool,
	}, nil
}

// shuffleQuestions performs an in-place Fisher-Yates shuffle: iterate from
// the last index down, swapping with a uniformly random index in [0, i].
func shuffleQuestions(questions []models.Question, intn func(n int) int) {
	for i := len(questions) - 1; i > 0; i-- {
		j := intn(i + 1)
		questions[i], questions[j] = questions[j], questions[i]
	}
}

// AnswerSubmission pairs a question with the user's submitted answer.
// An empty answer means the question was skipped.
type AnswerSubmission struct {
	QuestionID int64  `json:"questionId"`
	Answer     string `json:"answer"`
}

// GradedTest is the computed outcome of a test before archiving
type GradedTest struct {
	QuestionsAttempted int                    `json:"questionsAttempted"`
	QuestionsCorrect   int                    `json:"questionsCorrect"`
	Score              int                    `json:"score"`
	CategoryBreakdown  []models.CategoryScore `json:"categoryBreakdown"`
	Mistakes           []models.Mistake       `json:"mistakes"`
}

// gradeQuestions grades answered questions in order. Correctness is exact
// string equality with the stored correct answer; a skipped question is
// always incorrect and recorded with the Skipped sentinel. The category
// breakdown is derived from per-question correctness, never from mistake
// list membership, so duplicate question texts cannot skew it.
func gradeQuestions(questions []models.Question, answers []string) GradedTest {
	graded := GradedTest{QuestionsAttempted: len(questions)}

	breakdownIndex := make(map[string]int)

	for i, question := range questions {
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}

		correct := answer != "" && answer == question.CorrectAnswer
		if correct {
			graded.QuestionsCorrect++
		}

		category := question.Category
		if category == "" {
			category = generalCategory
		}
		idx, ok := breakdownIndex[category]
		if !ok {
			idx = len(graded.CategoryBreakdown)
			breakdownIndex[category] = idx
			graded.CategoryBreakdown = append(graded.CategoryBreakdown, models.CategoryScore{Category: category})
		}
		graded.CategoryBreakdown[idx].Total++
		if correct {
			graded.CategoryBreakdown[idx].Correct++
		}

		if !correct {
			if answer == "" {
				answer = SkippedAnswer
			}
			graded.Mistakes = append(graded.Mistakes, models.Mistake{
				WordID:        question.WordID,
				Category:      category,
				Question:      question.Question,
				UserAnswer:    answer,
				CorrectAnswer: question.CorrectAnswer,
				Explanation:   question.Explanation,
			})
		}
	}

	graded.Score = scorePercentage(graded.QuestionsCorrect, graded.QuestionsAttempted)
	return graded
}

// scorePercentage rounds half away from zero: 1/8 scores 13, 1/3 scores 33.
func scorePercentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

// SubmitTest grades the submitted answers against the stored questions,
// archives one result record, and credits the user's activity streak.
// If archiving fails the graded result is still returned alongside
// ErrPersistence so the caller can retry submission without regrading.
func (s *TestService) SubmitTest(userID int64, submissions []AnswerSubmission, durationSeconds int) (*models.TestResult, error) {
	if len(submissions) == 0 {
		return nil, fmt.Errorf("%w: no answers submitted", ErrInvalidArgument)
	}
	if durationSeconds < 0 {
		return nil, fmt.Errorf("%w: negative duration", ErrInvalidArgument)
	}

	questions := make([]models.Question, 0, len(submissions))
	answers := make([]string, 0, len(submissions))
	for _, submission := range submissions {
		question, err := s.questionRepo.GetByID(submission.QuestionID)
		if err != nil {
			return nil, fmt.Errorf("failed to load question %d: %w", submission.QuestionID, err)
		}
		if question == nil {
			return nil, fmt.Errorf("%w: question %d", ErrNotFound, submission.QuestionID)
		}
		questions = append(questions, *question)
		answers = append(answers, submission.Answer)
	}

	graded := gradeQuestions(questions, answers)

	result := &models.TestResult{
		UserID:             userID,
		TakenAt:            time.Now(),
		DurationSeconds:    durationSeconds,
		Score:              graded.Score,
		Status:             "completed",
		QuestionsAttempted: graded.QuestionsAttempted,
		QuestionsCorrect:   graded.QuestionsCorrect,
		CategoryBreakdown:  graded.CategoryBreakdown,
		Mistakes:           graded.Mistakes,
	}

	resultID, err := s.resultRepo.Create(result)
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	result.ID = resultID

	// Per-word counters and the streak are side effects of a submission that
	// was already archived; failures here must not fail it.
	for i, question := range questions {
		if question.WordID == nil {
			continue
		}
		correct := answers[i] != "" && answers[i] == question.CorrectAnswer
		if err := s.progressService.RecordAnswer(userID, *question.WordID, correct); err != nil {
			log.Printf("Failed to record answer for word %d: %v", *question.WordID, err)
		}
	}
	if err := s.progressService.CreditActivity(userID); err != nil {
		log.Printf("Failed to credit streak for user %d: %v", userID, err)
	}

	return result, nil
}

// GetHistory returns the user's most recent test results, newest first
func (s *TestService) GetHistory(userID int64) ([]models.TestResult, error) {
	results, err := s.resultRepo.ListByUser(userID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return results, nil
}

// GetResult returns one of the user's results with breakdown and mistakes
func (s *TestService) GetResult(userID, resultID int64) (*models.TestResult, error) {
	result, err := s.resultRepo.GetByID(resultID)
	if err != nil {
		return nil, fmt.Errorf("failed to load result: %w", err)
	}
	if result == nil || result.UserID != userID {
		return nil, fmt.Errorf("%w: result %d", ErrNotFound, resultID)
	}
	return result, nil
}

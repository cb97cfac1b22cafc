package service

import (
	"fmt"
	"math"
	"time"

	"github.com/ritikapurwa08/english-mastery/internal/models"
	"github.com/ritikapurwa08/english-mastery/internal/repository"
	"github.com/ritikapurwa08/english-mastery/internal/validation"
)

const recentResultLimit = 3

// StatsService aggregates learning activity into dashboard and profile views
type StatsService struct {
	userRepo     *repository.UserRepository
	progressRepo *repository.ProgressRepository
	resultRepo   *repository.ResultRepository

	now func() time.Time
}

// NewStatsService creates a new stats service
func NewStatsService(userRepo *repository.UserRepository, progressRepo *repository.ProgressRepository, resultRepo *repository.ResultRepository) *StatsService {
	return &StatsService{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		resultRepo:   resultRepo,
		now:          time.Now,
	}
}

// DashboardStats summarizes today's and this week's activity against the
// user's goals
type DashboardStats struct {
	Streak        int `json:"streak"`
	DailyGoal     int `json:"dailyGoal"`
	WeeklyGoal    int `json:"weeklyGoal"`
	WordsToday    int `json:"wordsToday"`
	WordsThisWeek int `json:"wordsThisWeek"`
	Mastered      int `json:"mastered"`
	Learning      int `json:"learning"`
}

// ProfileStats summarizes the user's whole test history
type ProfileStats struct {
	TotalTests          int                    `json:"totalTests"`
	AverageScore        int                    `json:"averageScore"`
	Accuracy            int                    `json:"accuracy"`
	CategoryPerformance []models.CategoryScore `json:"categoryPerformance"`
	RecentResults       []models.TestResult    `json:"recentResults"`
}

// GetDashboard builds the dashboard summary for a user. Day and week
// boundaries use UTC, matching how the streak is tracked.
func (s *StatsService) GetDashboard(userID int64) (*DashboardStats, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	now := s.now().UTC()
	dayStart := now.Truncate(24 * time.Hour)
	weekStart := startOfWeek(now)

	wordsToday, err := s.progressRepo.CountReviewedSince(userID, dayStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's reviews: %w", err)
	}
	wordsThisWeek, err := s.progressRepo.CountReviewedSince(userID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count this week's reviews: %w", err)
	}
	mastered, err := s.progressRepo.CountByStatus(userID, models.StatusMastered)
	if err != nil {
		return nil, fmt.Errorf("failed to count mastered words: %w", err)
	}
	learning, err := s.progressRepo.CountByStatus(userID, models.StatusLearning)
	if err != nil {
		return nil, fmt.Errorf("failed to count learning words: %w", err)
	}

	return &DashboardStats{
		Streak:        user.Streak,
		DailyGoal:     user.DailyGoal,
		WeeklyGoal:    user.WeeklyGoal,
		WordsToday:    wordsToday,
		WordsThisWeek: wordsThisWeek,
		Mastered:      mastered,
		Learning:      learning,
	}, nil
}

// GetProfile builds the all-time test history summary for a user
func (s *StatsService) GetProfile(userID int64) (*ProfileStats, error) {
	aggregates, err := s.resultRepo.GetUserAggregates(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get result aggregates: %w", err)
	}

	stats := &ProfileStats{
		TotalTests:          aggregates.TotalTests,
		CategoryPerformance: []models.CategoryScore{},
		RecentResults:       []models.TestResult{},
	}
	if aggregates.TotalTests > 0 {
		stats.AverageScore = int(math.Round(float64(aggregates.ScoreSum) / float64(aggregates.TotalTests)))
	}
	if aggregates.QuestionsTotal > 0 {
		stats.Accuracy = int(math.Round(100 * float64(aggregates.CorrectTotal) / float64(aggregates.QuestionsTotal)))
	}

	categories, err := s.resultRepo.GetCategoryTotals(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}
	for _, category := range categories {
		category.Category = DisplayCategory(category.Category)
		stats.CategoryPerformance = append(stats.CategoryPerformance, category)
	}

	recent, err := s.resultRepo.ListByUser(userID, recentResultLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent results: %w", err)
	}
	stats.RecentResults = append(stats.RecentResults, recent...)

	return stats, nil
}

// UpdateSettings updates the user's daily and weekly goals
func (s *StatsService) UpdateSettings(userID int64, dailyGoal, weeklyGoal int) (*models.User, error) {
	if err := validation.ValidateGoal("daily goal", dailyGoal); err != nil {
		return nil, err
	}
	if err := validation.ValidateGoal("weekly goal", weeklyGoal); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateGoals(userID, dailyGoal, weeklyGoal); err != nil {
		return nil, fmt.Errorf("failed to update goals: %w", err)
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	return user, nil
}

// startOfWeek returns the most recent Monday at 00:00 UTC
func startOfWeek(now time.Time) time.Time {
	day := now.Truncate(24 * time.Hour)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

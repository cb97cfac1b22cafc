package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/ritikapurwa08/english-mastery/internal/repository"
	"github.com/ritikapurwa08/english-mastery/internal/service"
)

// Scheduler manages the background jobs: expired credential cleanup and the
// daily streak reminder email.
type Scheduler struct {
	scheduler    *gocron.Scheduler
	authService  *service.AuthService
	emailService *service.EmailService
	userRepo     *repository.UserRepository
	reminderHour int
}

// New creates a new scheduler instance. All jobs run on UTC time.
func New(authService *service.AuthService, emailService *service.EmailService, userRepo *repository.UserRepository, reminderHour int) *Scheduler {
	return &Scheduler{
		scheduler:    gocron.NewScheduler(time.UTC),
		authService:  authService,
		emailService: emailService,
		userRepo:     userRepo,
		reminderHour: reminderHour,
	}
}

// Start schedules all jobs and begins running them asynchronously
func (s *Scheduler) Start() {
	if _, err := s.scheduler.Every(1).Hour().Do(s.cleanupExpiredCredentials); err != nil {
		log.Printf("Error scheduling cleanup job: %v", err)
	}

	if s.emailService != nil && s.emailService.IsEnabled() {
		reminderAt := fmt.Sprintf("%02d:00", s.reminderHour)
		if _, err := s.scheduler.Every(1).Day().At(reminderAt).Do(s.sendStreakReminders); err != nil {
			log.Printf("Error scheduling streak reminder job: %v", err)
		}
	}

	s.scheduler.StartAsync()
}

// Stop terminates all scheduled jobs
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) cleanupExpiredCredentials() {
	if err := s.authService.CleanupExpiredSessions(); err != nil {
		log.Printf("Error cleaning up sessions: %v", err)
	}
	if err := s.authService.CleanupExpiredPasswordResetTokens(); err != nil {
		log.Printf("Error cleaning up reset tokens: %v", err)
	}
}

// sendStreakReminders emails users who practiced yesterday but not yet
// today, since their streak resets at the next UTC midnight.
func (s *Scheduler) sendStreakReminders() {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	yesterday := today.AddDate(0, 0, -1)

	users, err := s.userRepo.GetUsersWithLapsingStreak(yesterday, today)
	if err != nil {
		log.Printf("Error finding users with lapsing streaks: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	sent := 0
	for _, user := range users {
		if user.Streak == 0 {
			continue
		}
		if err := s.emailService.SendStreakReminderEmail(ctx, user.Email, user.Name, user.Streak); err != nil {
			log.Printf("Error sending streak reminder to user %d: %v", user.ID, err)
			continue
		}
		sent++
	}

	if sent > 0 {
		log.Printf("Sent %d streak reminder emails", sent)
	}
}

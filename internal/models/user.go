package models

import "time"

// User represents a learner account
type User struct {
	ID            int64      `json:"id"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"`
	Name          string     `json:"name"`
	OAuthProvider string     `json:"-"`
	OAuthSubject  string     `json:"-"`
	IsAdmin       bool       `json:"isAdmin"`
	DailyGoal     int        `json:"dailyGoal"`
	WeeklyGoal    int        `json:"weeklyGoal"`
	Streak        int        `json:"streak"`
	LastActivity  *time.Time `json:"lastActivity,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Session represents an authenticated session
type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// PasswordResetToken represents a token for password reset
type PasswordResetToken struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
	Used      bool
}

// IsExpired checks if the reset token has expired
func (t *PasswordResetToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ritikapurwa08/english-mastery/internal/database"
	"github.com/ritikapurwa08/english-mastery/internal/models"
)

// UserRepository handles database operations for users, sessions and reset tokens
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, password_hash, name,
	COALESCE(oauth_provider, ''), COALESCE(oauth_subject, ''), is_admin,
	daily_goal, weekly_goal, streak, last_activity, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	user := &models.User{}
	var lastActivity sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.OAuthProvider,
		&user.OAuthSubject,
		&user.IsAdmin,
		&user.DailyGoal,
		&user.WeeklyGoal,
		&user.Streak,
		&lastActivity,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastActivity.Valid {
		user.LastActivity = &lastActivity.Time
	}

	return user, nil
}

// CreateUser inserts a new user into the database.
// The first registered user becomes an admin.
func (r *UserRepository) CreateUser(email, passwordHash, name string) (*models.User, error) {
	var userCount int
	err := r.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&userCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	isAdmin := userCount == 0

	query := `
		INSERT INTO users (email, password_hash, name, is_admin, daily_goal, weekly_goal, streak)
		VALUES (?, ?, ?, ?, 10, 50, 0)
	`
	id, err := r.db.ExecReturningID(query, email, passwordHash, name, isAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &models.User{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		IsAdmin:      isAdmin,
		DailyGoal:    10,
		WeeklyGoal:   50,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}

// GetUserByEmail retrieves a user by email address
func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE email = ?"
	user, err := scanUser(r.db.QueryRow(query, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(id int64) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = ?"
	user, err := scanUser(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByOAuth retrieves a user by OAuth provider and subject
func (r *UserRepository) GetUserByOAuth(provider, subject string) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE oauth_provider = ? AND oauth_subject = ?"
	user, err := scanUser(r.db.QueryRow(query, provider, subject))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get oauth user: %w", err)
	}
	return user, nil
}

// LinkOAuthProvider attaches an OAuth identity to an existing user
func (r *UserRepository) LinkOAuthProvider(userID int64, provider, subject string) error {
	query := `
		UPDATE users
		SET oauth_provider = ?, oauth_subject = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, provider, subject, userID)
	return err
}

// UpdatePassword updates a user's password hash
func (r *UserRepository) UpdatePassword(userID int64, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, passwordHash, userID)
	return err
}

// UpdateGoals updates a user's daily and weekly goal targets
func (r *UserRepository) UpdateGoals(userID int64, dailyGoal, weeklyGoal int) error {
	query := `
		UPDATE users
		SET daily_goal = ?, weekly_goal = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query, dailyGoal, weeklyGoal, userID)
	return err
}

// UpdateStreak writes a new streak value and activity timestamp, guarded on
// the previously observed last_activity so a concurrent update from another
// device loses cleanly instead of double counting. Returns false when the
// guard did not match (someone else already credited the day).
func (r *UserRepository) UpdateStreak(userID int64, streak int, now time.Time, prev *time.Time) (bool, error) {
	var result sql.Result
	var err error

	if prev == nil {
		query := `
			UPDATE users
			SET streak = ?, last_activity = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ? AND last_activity IS NULL
		`
		result, err = r.db.Exec(query, streak, now, userID)
	} else {
		query := `
			UPDATE users
			SET streak = ?, last_activity = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ? AND last_activity = ?
		`
		result, err = r.db.Exec(query, streak, now, userID, *prev)
	}
	if err != nil {
		return false, fmt.Errorf("failed to update streak: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

// GetUsersWithLapsingStreak returns users with an active streak whose last
// activity falls inside [from, to) — i.e. the streak lapses unless they act
// today. Used by the daily reminder job.
func (r *UserRepository) GetUsersWithLapsingStreak(from, to time.Time) ([]models.User, error) {
	query := "SELECT " + userColumns + ` FROM users
		WHERE streak >= 1 AND last_activity >= ? AND last_activity < ?`

	rows, err := r.db.Query(query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query lapsing streaks: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}

	return users, rows.Err()
}

// CreateSession creates a new session for a user
func (r *UserRepository) CreateSession(sessionID string, userID int64, expiresAt time.Time) (*models.Session, error) {
	query := `
		INSERT INTO sessions (id, user_id, expires_at)
		VALUES (?, ?, ?)
	`
	_, err := r.db.Exec(query, sessionID, userID, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &models.Session{
		ID:        sessionID,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}, nil
}

// GetSession retrieves a session by ID
func (r *UserRepository) GetSession(sessionID string) (*models.Session, error) {
	query := `
		SELECT id, user_id, expires_at, created_at
		FROM sessions
		WHERE id = ?
	`
	session := &models.Session{}
	err := r.db.QueryRow(query, sessionID).Scan(
		&session.ID,
		&session.UserID,
		&session.ExpiresAt,
		&session.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// DeleteSession removes a session
func (r *UserRepository) DeleteSession(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE id = ?", sessionID)
	return err
}

// DeleteExpiredSessions removes all expired sessions
func (r *UserRepository) DeleteExpiredSessions() error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE expires_at < ?", time.Now())
	return err
}

// CreatePasswordResetToken stores a password reset token
func (r *UserRepository) CreatePasswordResetToken(token string, userID int64, expiresAt time.Time) error {
	query := `
		INSERT INTO password_reset_tokens (token, user_id, expires_at, used)
		VALUES (?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, token, userID, expiresAt, false)
	return err
}

// GetPasswordResetToken retrieves a reset token
func (r *UserRepository) GetPasswordResetToken(token string) (*models.PasswordResetToken, error) {
	query := `
		SELECT token, user_id, expires_at, created_at, used
		FROM password_reset_tokens
		WHERE token = ?
	`
	resetToken := &models.PasswordResetToken{}
	err := r.db.QueryRow(query, token).Scan(
		&resetToken.Token,
		&resetToken.UserID,
		&resetToken.ExpiresAt,
		&resetToken.CreatedAt,
		&resetToken.Used,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reset token: %w", err)
	}

	return resetToken, nil
}

// MarkPasswordResetTokenAsUsed marks a reset token as consumed
func (r *UserRepository) MarkPasswordResetTokenAsUsed(token string) error {
	_, err := r.db.Exec("UPDATE password_reset_tokens SET used = ? WHERE token = ?", true, token)
	return err
}

// DeleteUserPasswordResetTokens removes all reset tokens for a user
func (r *UserRepository) DeleteUserPasswordResetTokens(userID int64) error {
	_, err := r.db.Exec("DELETE FROM password_reset_tokens WHERE user_id = ?", userID)
	return err
}

// DeleteExpiredPasswordResetTokens removes expired reset tokens
func (r *UserRepository) DeleteExpiredPasswordResetTokens() error {
	_, err := r.db.Exec("DELETE FROM password_reset_tokens WHERE expires_at < ?", time.Now())
	return err
}

package service

import (
	"testing"
	"time"
)

func TestNextStreak(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	earlierToday := time.Date(2025, 3, 10, 1, 5, 0, 0, time.UTC)
	fiveDaysAgo := now.AddDate(0, 0, -5)

	tests := []struct {
		name         string
		current      int
		lastActivity *time.Time
		wantStreak   int
		wantCredited bool
	}{
		{"first ever activity", 0, nil, 1, true},
		{"already active today", 3, &earlierToday, 3, false},
		{"consecutive day extends", 4, &yesterday, 5, true},
		{"gap resets to one", 10, &fiveDaysAgo, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			streak, credited := nextStreak(tt.current, tt.lastActivity, now)
			if streak != tt.wantStreak || credited != tt.wantCredited {
				t.Errorf("nextStreak(%d, %v) = (%d, %v), want (%d, %v)",
					tt.current, tt.lastActivity, streak, credited, tt.wantStreak, tt.wantCredited)
			}
		})
	}
}

func TestNextStreakDayBoundary(t *testing.T) {
	// 23:59 yesterday and 00:01 today are adjacent wall-clock minutes but
	// different UTC days, so the streak extends.
	lastNight := time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC)
	justAfterMidnight := time.Date(2025, 3, 10, 0, 1, 0, 0, time.UTC)

	streak, credited := nextStreak(2, &lastNight, justAfterMidnight)
	if streak != 3 || !credited {
		t.Errorf("nextStreak across midnight = (%d, %v), want (3, true)", streak, credited)
	}
}

func TestNextStreakNonUTCInput(t *testing.T) {
	// Activity timestamps stored in another zone still compare on UTC days
	ist := time.FixedZone("IST", 5*3600+1800)
	lastActivity := time.Date(2025, 3, 10, 3, 0, 0, 0, ist) // 2025-03-09 21:30 UTC
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	streak, credited := nextStreak(6, &lastActivity, now)
	if streak != 7 || !credited {
		t.Errorf("nextStreak with zoned input = (%d, %v), want (7, true)", streak, credited)
	}
}

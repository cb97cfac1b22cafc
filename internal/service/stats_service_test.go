package service

import (
	"testing"
	"time"
)

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"monday maps to itself",
			time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC),
			time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			"wednesday maps back to monday",
			time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			"sunday maps back six days",
			time.Date(2025, 6, 8, 23, 59, 0, 0, time.UTC),
			time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			"week spanning a month boundary",
			time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := startOfWeek(tt.now); !got.Equal(tt.want) {
				t.Errorf("startOfWeek(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

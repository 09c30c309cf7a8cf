package models

import (
	"testing"
	"time"
)

// TestSameDay verifies day-granularity comparison ignores time-of-day.
func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			name: "midnight and evening",
			a:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC),
			want: true,
		},
		{
			name: "adjacent days",
			a:    time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "same day different year",
			a:    time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDay(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	in := time.Date(2025, 3, 10, 17, 45, 12, 99, loc)

	got := Day(in)

	want := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("Day: got %v, want %v", got, want)
	}
	if got.Location() != loc {
		t.Errorf("Day should keep the location, got %v", got.Location())
	}
}

func TestCalendarEventKey(t *testing.T) {
	ev := CalendarEvent{Date: time.Date(2025, 1, 5, 9, 30, 0, 0, time.UTC)}
	if got := ev.Key(); got != "2025-01-05" {
		t.Errorf("Key: got %q, want %q", got, "2025-01-05")
	}
}

package service

import (
	"testing"
	"time"

	"github.com/almvdev/receiving-api/internal/domain/enum"
)

func day(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestClassifyDelivery(t *testing.T) {
	today := *day("2025-09-04")

	cases := []struct {
		name      string
		scheduled *time.Time
		status    enum.LineStatus
		daysLate  int
	}{
		{"no committed date", nil, enum.LineStatusUnscheduled, 0},
		{"due today", day("2025-09-04"), enum.LineStatusOnTime, 0},
		{"due tomorrow", day("2025-09-05"), enum.LineStatusOnTime, 0},
		{"due next week", day("2025-09-10"), enum.LineStatusOnTime, 0},
		{"one day late", day("2025-09-03"), enum.LineStatusLate, 1},
		{"five days late", day("2025-08-30"), enum.LineStatusLate, 5},
		{"across month boundary", day("2025-08-20"), enum.LineStatusLate, 15},
		{"a year late", day("2024-09-04"), enum.LineStatusLate, 365},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyDelivery(tc.scheduled, today)
			if got.Status != tc.status {
				t.Fatalf("status = %s, want %s", got.Status, tc.status)
			}
			if got.DaysLate != tc.daysLate {
				t.Fatalf("days late = %d, want %d", got.DaysLate, tc.daysLate)
			}
		})
	}
}

func TestClassifyDeliveryIgnoresTimeOfDay(t *testing.T) {
	// A late-evening reference must not add a day to the count.
	scheduled := time.Date(2025, 9, 1, 23, 50, 0, 0, time.UTC)
	today := time.Date(2025, 9, 4, 0, 10, 0, 0, time.UTC)

	got := ClassifyDelivery(&scheduled, today)
	if got.Status != enum.LineStatusLate {
		t.Fatalf("status = %s, want %s", got.Status, enum.LineStatusLate)
	}
	if got.DaysLate != 3 {
		t.Fatalf("days late = %d, want 3", got.DaysLate)
	}
}

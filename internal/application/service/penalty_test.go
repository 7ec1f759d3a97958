package service

import (
	"testing"

	"github.com/almvdev/receiving-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

func TestComputePenaltyTiers(t *testing.T) {
	price := decimal.RequireFromString("10.00")

	cases := []struct {
		name     string
		daysLate int
		amount   string
	}{
		{"first tier lower bound", 1, "3.00"},
		{"first tier upper bound", 5, "3.00"},
		{"second tier lower bound", 6, "6.00"},
		{"second tier upper bound", 10, "6.00"},
		{"third tier lower bound", 11, "10.00"},
		{"deep into third tier", 90, "10.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputePenalty(enum.LineStatusLate, tc.daysLate, 10, price)
			want := decimal.RequireFromString(tc.amount)
			if !got.Amount.Equal(want) {
				t.Fatalf("amount = %s, want %s", got.Amount, want)
			}
			if got.Justification == "" {
				t.Fatalf("expected a justification for a late line")
			}
		})
	}
}

func TestComputePenaltyOnlyAppliesToLateReceivedLines(t *testing.T) {
	price := decimal.RequireFromString("4.90")

	cases := []struct {
		name     string
		status   enum.LineStatus
		daysLate int
		qty      int
	}{
		{"on time", enum.LineStatusOnTime, 0, 100},
		{"unscheduled", enum.LineStatusUnscheduled, 0, 100},
		{"late but nothing received", enum.LineStatusLate, 7, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputePenalty(tc.status, tc.daysLate, tc.qty, price)
			if !got.Amount.IsZero() {
				t.Fatalf("amount = %s, want 0", got.Amount)
			}
			if got.Justification != "" {
				t.Fatalf("unexpected justification %q", got.Justification)
			}
		})
	}
}

func TestComputePenaltyWorkedExample(t *testing.T) {
	// 2200 units at 4.90, fifteen days late: 10% of 10780.00.
	got := ComputePenalty(enum.LineStatusLate, 15, 2200, decimal.RequireFromString("4.90"))

	want := decimal.RequireFromString("1078.00")
	if !got.Amount.Equal(want) {
		t.Fatalf("amount = %s, want %s", got.Amount, want)
	}
	if got.Justification != "Late by 15 day(s). 10% applied." {
		t.Fatalf("justification = %q", got.Justification)
	}
}

func TestComputePenaltyRoundsToCents(t *testing.T) {
	// 3 units at 3.33 is 9.99; 3% of that is 0.2997, rounded to 0.30.
	got := ComputePenalty(enum.LineStatusLate, 2, 3, decimal.RequireFromString("3.33"))

	want := decimal.RequireFromString("0.30")
	if !got.Amount.Equal(want) {
		t.Fatalf("amount = %s, want %s", got.Amount, want)
	}
}

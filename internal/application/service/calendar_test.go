package service

import (
	"testing"
	"time"

	"github.com/almvdev/receiving-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func calendarTestOrder() *entity.PurchaseOrder {
	price := decimal.RequireFromString("10.00")
	return &entity.PurchaseOrder{
		OrderNo:  "10401651",
		Year:     2025,
		Supplier: "PANIFICADORA DEL CENTRO",
		Lines: []entity.PurchaseOrderLine{
			{ItemCode: "A-1", OrderedQty: 10, UnitPrice: price, ScheduledDate: day("2025-09-01")},
			{ItemCode: "A-2", OrderedQty: 20, UnitPrice: price, ScheduledDate: day("2025-09-01")},
			{ItemCode: "A-3", OrderedQty: 30, UnitPrice: price, ScheduledDate: day("2025-09-10")},
			{ItemCode: "A-4", OrderedQty: 40, UnitPrice: price, ScheduledDate: nil},
		},
	}
}

func TestBuildCalendarGridShape(t *testing.T) {
	today := *day("2025-09-04")

	cases := []struct {
		name    string
		year    int
		month   time.Month
		start   string
		inMonth int
	}{
		{"september 2025", 2025, time.September, "2025-08-31", 30},
		{"leap february", 2024, time.February, "2024-01-28", 29},
		{"short february", 2025, time.February, "2025-01-26", 28},
		{"december wraps into january", 2025, time.December, "2025-11-30", 31},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grid := BuildCalendar(calendarTestOrder(), tc.year, tc.month, today)
			if len(grid) != CalendarGridSize {
				t.Fatalf("grid size = %d, want %d", len(grid), CalendarGridSize)
			}

			if !grid[0].Date.Equal(*day(tc.start)) {
				t.Fatalf("grid starts %s, want %s", grid[0].Date.Format("2006-01-02"), tc.start)
			}
			if grid[0].Date.Weekday() != time.Sunday {
				t.Fatalf("grid starts on %s, want Sunday", grid[0].Date.Weekday())
			}

			inMonth := 0
			for _, cell := range grid {
				if cell.InMonth {
					inMonth++
				}
			}
			if inMonth != tc.inMonth {
				t.Fatalf("in-month cells = %d, want %d", inMonth, tc.inMonth)
			}
		})
	}
}

func TestBuildCalendarMarksDeliveriesAndToday(t *testing.T) {
	today := *day("2025-09-04")
	grid := BuildCalendar(calendarTestOrder(), 2025, time.September, today)

	byDay := make(map[string]entity.CalendarDay)
	for _, cell := range grid {
		byDay[cell.Date.Format("2006-01-02")] = cell
	}

	if got := byDay["2025-09-01"].Deliveries; got != 2 {
		t.Fatalf("deliveries on Sep 1 = %d, want 2", got)
	}
	if got := byDay["2025-09-10"].Deliveries; got != 1 {
		t.Fatalf("deliveries on Sep 10 = %d, want 1", got)
	}
	if got := byDay["2025-09-02"].Deliveries; got != 0 {
		t.Fatalf("deliveries on Sep 2 = %d, want 0", got)
	}

	if !byDay["2025-09-04"].IsToday {
		t.Fatalf("expected Sep 4 to be marked as today")
	}
	if byDay["2025-09-05"].IsToday {
		t.Fatalf("Sep 5 must not be marked as today")
	}
}

func TestScheduledOn(t *testing.T) {
	order := calendarTestOrder()

	lines := ScheduledOn(order, *day("2025-09-01"))
	if len(lines) != 2 {
		t.Fatalf("lines on Sep 1 = %d, want 2", len(lines))
	}

	if lines := ScheduledOn(order, *day("2025-09-02")); len(lines) != 0 {
		t.Fatalf("lines on Sep 2 = %d, want 0", len(lines))
	}
}

func TestBuildCalendarNilOrder(t *testing.T) {
	grid := BuildCalendar(nil, 2025, time.September, *day("2025-09-04"))
	if len(grid) != CalendarGridSize {
		t.Fatalf("grid size = %d, want %d", len(grid), CalendarGridSize)
	}
	for _, cell := range grid {
		if cell.Deliveries != 0 {
			t.Fatalf("nil order must produce an empty calendar")
		}
	}
}

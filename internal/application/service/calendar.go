package service

import (
	"time"

	"github.com/almvdev/receiving-api/internal/domain/entity"
	"github.com/almvdev/receiving-api/pkg/clock"
)

// CalendarGridSize is the fixed number of cells in the delivery
// calendar: six full Sunday-to-Saturday weeks, whatever the month shape.
const CalendarGridSize = 42

// BuildCalendar produces the 42-cell delivery grid for one order and one
// displayed month. The grid starts on the Sunday on or before the 1st
// and runs six weeks, so short months and leap Februaries tile the same
// way. Each cell carries the number of order lines scheduled on that
// day, independent of what has been received. The grid is rebuilt in
// full on every navigation; month boundaries and leap years make
// incremental updates not worth the risk.
func BuildCalendar(order *entity.PurchaseOrder, year int, month time.Month, today time.Time) []entity.CalendarDay {
	byDate := deliveriesByDate(order)
	ref := clock.Midnight(today)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	grid := make([]entity.CalendarDay, 0, CalendarGridSize)
	for i := 0; i < CalendarGridSize; i++ {
		day := start.AddDate(0, 0, i)
		grid = append(grid, entity.CalendarDay{
			Date:       day,
			DayOfMonth: day.Day(),
			InMonth:    day.Month() == month && day.Year() == year,
			IsToday:    day.Equal(ref),
			Deliveries: len(byDate[day]),
		})
	}

	return grid
}

// ScheduledOn returns the order lines whose delivery is scheduled on the
// given day. Backs the per-day detail of the calendar view.
func ScheduledOn(order *entity.PurchaseOrder, day time.Time) []entity.PurchaseOrderLine {
	var lines []entity.PurchaseOrderLine
	for _, line := range deliveriesByDate(order)[clock.Midnight(day)] {
		lines = append(lines, *line)
	}
	return lines
}

func deliveriesByDate(order *entity.PurchaseOrder) map[time.Time][]*entity.PurchaseOrderLine {
	byDate := make(map[time.Time][]*entity.PurchaseOrderLine)
	if order == nil {
		return byDate
	}
	for i := range order.Lines {
		line := &order.Lines[i]
		if line.ScheduledDate == nil {
			continue
		}
		key := clock.Midnight(*line.ScheduledDate)
		byDate[key] = append(byDate[key], line)
	}
	return byDate
}

package entity

import "time"

// CalendarDay is one cell of the delivery calendar grid. Recomputed on
// every navigation, never persisted.
type CalendarDay struct {
	Date       time.Time `json:"date"`
	DayOfMonth int       `json:"day_of_month"`
	InMonth    bool      `json:"in_month"`
	IsToday    bool      `json:"is_today"`
	Deliveries int       `json:"deliveries"`
}

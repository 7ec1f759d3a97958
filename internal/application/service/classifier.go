package service

import (
	"time"

	"github.com/almvdev/receiving-api/internal/domain/enum"
	"github.com/almvdev/receiving-api/pkg/clock"
)

// Classification is the derived compliance state of a scheduled delivery.
type Classification struct {
	Status   enum.LineStatus
	DaysLate int
}

// ClassifyDelivery derives the compliance status of a line from its
// scheduled date and the reference day. A nil scheduled date means the
// supplier never committed to one. A date on or after the reference day
// is on time; anything earlier is late by the whole-day difference.
// Both dates are normalized to midnight so time components cannot shift
// the day count.
func ClassifyDelivery(scheduled *time.Time, today time.Time) Classification {
	if scheduled == nil {
		return Classification{Status: enum.LineStatusUnscheduled}
	}

	sched := clock.Midnight(*scheduled)
	ref := clock.Midnight(today)

	if !sched.Before(ref) {
		return Classification{Status: enum.LineStatusOnTime}
	}

	days := int(ref.Sub(sched).Hours() / 24)
	return Classification{Status: enum.LineStatusLate, DaysLate: days}
}

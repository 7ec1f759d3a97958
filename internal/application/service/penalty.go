package service

import (
	"fmt"

	"github.com/almvdev/receiving-api/internal/domain/entity"
	"github.com/almvdev/receiving-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Late-delivery penalty bands, as a percentage of the received value.
var (
	penaltyRateTier1 = decimal.NewFromInt(3)  // 1-5 days
	penaltyRateTier2 = decimal.NewFromInt(6)  // 6-10 days
	penaltyRateTier3 = decimal.NewFromInt(10) // 11+ days
	hundred          = decimal.NewFromInt(100)
)

// penaltyRate returns the percentage applied for a given day count.
func penaltyRate(daysLate int) decimal.Decimal {
	switch {
	case daysLate >= 11:
		return penaltyRateTier3
	case daysLate >= 6:
		return penaltyRateTier2
	case daysLate >= 1:
		return penaltyRateTier1
	default:
		return decimal.Zero
	}
}

// ComputePenalty derives the monetary deduction for one line. Only late
// lines with goods actually received carry a penalty; everything else is
// zero with no justification. Pure: safe to re-run on every field edit.
func ComputePenalty(status enum.LineStatus, daysLate int, receivedQty int, unitPrice decimal.Decimal) entity.Penalty {
	if status != enum.LineStatusLate || receivedQty <= 0 {
		return entity.ZeroPenalty()
	}

	rate := penaltyRate(daysLate)
	if rate.IsZero() {
		return entity.ZeroPenalty()
	}

	value := unitPrice.Mul(decimal.NewFromInt(int64(receivedQty)))
	amount := value.Mul(rate).Div(hundred).Round(2)

	return entity.Penalty{
		Amount:        amount,
		Justification: fmt.Sprintf("Late by %d day(s). %s%% applied.", daysLate, rate.String()),
	}
}

// reconcileLine refreshes the derived fields of a reconciliation line
// after any mutation of its inputs.
func reconcileLine(line *entity.ReconciliationLine) {
	line.Penalty = ComputePenalty(line.Status, line.DaysLate, line.ReceivedQty, line.OrderLine.UnitPrice)
}

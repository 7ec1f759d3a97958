package entity

import (
	"time"

	"github.com/almvdev/receiving-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Penalty is the computed late-delivery deduction for one line.
type Penalty struct {
	Amount        decimal.Decimal `json:"amount"`
	Justification string          `json:"justification,omitempty"`
}

// ZeroPenalty returns an empty penalty.
func ZeroPenalty() Penalty {
	return Penalty{Amount: decimal.Zero}
}

// ReconciliationLine is the working row of a reception session: one
// per purchase-order line, holding the receiving clerk's mutable input
// next to the immutable order data it is reconciled against.
type ReconciliationLine struct {
	OrderLine *PurchaseOrderLine `json:"order_line"`

	ReceivedQty int             `json:"received_qty"`
	Lot         string          `json:"lot,omitempty"`
	Expiry      *time.Time      `json:"expiry,omitempty"`
	Status      enum.LineStatus `json:"status"`
	DaysLate    int             `json:"days_late"`
	Penalty     Penalty         `json:"penalty"`
}

// ReconciliationSession is the per-request working set built when an
// order is loaded and discarded after registration. It is never persisted.
type ReconciliationSession struct {
	ID           uuid.UUID            `json:"id"`
	State        enum.SessionState    `json:"state"`
	Year         int                  `json:"year"`
	OrderNo      string               `json:"order_no"`
	Supplier     string               `json:"supplier"`
	Warehouse    string               `json:"warehouse"`
	InvoiceFolio string               `json:"invoice_folio,omitempty"`
	InvoiceDate  *time.Time           `json:"invoice_date,omitempty"`
	Order        *PurchaseOrder       `json:"-"`
	Lines        []ReconciliationLine `json:"lines"`
}

// LineByCode returns the reconciliation line for the given item code, or nil.
func (s *ReconciliationSession) LineByCode(code string) *ReconciliationLine {
	for i := range s.Lines {
		if s.Lines[i].OrderLine.ItemCode == code {
			return &s.Lines[i]
		}
	}
	return nil
}

// TotalPenalty sums the computed penalties across all lines.
func (s *ReconciliationSession) TotalPenalty() decimal.Decimal {
	total := decimal.Zero
	for i := range s.Lines {
		total = total.Add(s.Lines[i].Penalty.Amount)
	}
	return total
}

// HasReceivedQuantities reports whether any line has a positive received
// quantity. Registration is rejected when none does.
func (s *ReconciliationSession) HasReceivedQuantities() bool {
	for i := range s.Lines {
		if s.Lines[i].ReceivedQty > 0 {
			return true
		}
	}
	return false
}

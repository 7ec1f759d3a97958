package entity

import (
	"fmt"
	"time"

	"github.com/almvdev/receiving-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FolioPrefix is the human-readable prefix of warehouse reception folios.
const FolioPrefix = "RB"

// FormatFolio renders a sequence number as a zero-padded reception folio,
// e.g. 12346 -> "RB-012346".
func FormatFolio(n int64) string {
	return fmt.Sprintf("%s-%06d", FolioPrefix, n)
}

// GoodsReceipt is the finalized reception record emitted when a session
// is registered. Immutable once created.
type GoodsReceipt struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Folio        string          `gorm:"size:20;unique;not null" json:"folio"`
	FolioNumber  int64           `gorm:"not null;index" json:"folio_number"`
	Warehouse    string          `gorm:"size:100;not null" json:"warehouse"`
	OrderNo      string          `gorm:"size:50;not null;index" json:"order_no"`
	InvoiceFolio string          `gorm:"size:100" json:"invoice_folio,omitempty"`
	InvoiceDate  *time.Time      `gorm:"type:date" json:"invoice_date,omitempty"`
	TotalPenalty decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_penalty"`
	CreatedAt    time.Time       `json:"created_at"`

	// Relationships
	Lines []GoodsReceiptLine `gorm:"foreignKey:ReceiptID" json:"lines"`
}

// BeforeCreate generates a UUID before creating a new goods receipt
func (r *GoodsReceipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the GoodsReceipt model
func (GoodsReceipt) TableName() string {
	return "goods_receipts"
}

// GoodsReceiptLine is one received item of a registered receipt. Only
// lines with a positive received quantity make it into the record.
type GoodsReceiptLine struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	ItemCode    string          `gorm:"size:50;not null" json:"item_code"`
	Description string          `gorm:"size:255;not null" json:"description"`
	OrderedQty  int             `gorm:"not null" json:"ordered_qty"`
	ReceivedQty int             `gorm:"not null" json:"received_qty"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Lot         string          `gorm:"size:100" json:"lot,omitempty"`
	Expiry      *time.Time      `gorm:"type:date" json:"expiry,omitempty"`
	Status      enum.LineStatus `gorm:"default:0" json:"status"`
	DaysLate    int             `gorm:"default:0" json:"days_late"`
	Penalty     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"penalty"`
	PenaltyNote string          `gorm:"size:255" json:"penalty_note,omitempty"`
}

// BeforeCreate generates a UUID before creating a new goods receipt line
func (l *GoodsReceiptLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the GoodsReceiptLine model
func (GoodsReceiptLine) TableName() string {
	return "goods_receipt_lines"
}

// FolioSequence is the single shared counter behind folio issuance.
// Rows are only ever updated through an increment-and-read inside the
// registration transaction; a plain read-then-write on this table is a
// lost-update race under concurrent registrations.
type FolioSequence struct {
	ID         int   `gorm:"primaryKey" json:"id"`
	LastNumber int64 `gorm:"not null" json:"last_number"`
}

// TableName returns the table name for the FolioSequence model
func (FolioSequence) TableName() string {
	return "folio_sequences"
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseOrder is one order from the procurement catalog. Catalog rows are
// loaded by the seeder or an upstream import and are never mutated here.
type PurchaseOrder struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderNo   string    `gorm:"size:50;not null;uniqueIndex:idx_order_year_no" json:"order_no"`
	Year      int       `gorm:"not null;uniqueIndex:idx_order_year_no" json:"year"`
	Supplier  string    `gorm:"size:255;not null" json:"supplier"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Lines []PurchaseOrderLine `gorm:"foreignKey:OrderID" json:"lines"`
}

// BeforeCreate generates a UUID before creating a new purchase order
func (o *PurchaseOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrder model
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// LineByCode returns the line with the given item code, or nil.
func (o *PurchaseOrder) LineByCode(code string) *PurchaseOrderLine {
	for i := range o.Lines {
		if o.Lines[i].ItemCode == code {
			return &o.Lines[i]
		}
	}
	return nil
}

// PurchaseOrderLine is one item of a purchase order. ScheduledDate is nil
// when the supplier has no committed delivery date for the item.
type PurchaseOrderLine struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	ItemCode      string          `gorm:"size:50;not null" json:"item_code"`
	Description   string          `gorm:"size:255;not null" json:"description"`
	OrderedQty    int             `gorm:"not null" json:"ordered_qty"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	ScheduledDate *time.Time      `gorm:"type:date" json:"scheduled_date,omitempty"`

	Order PurchaseOrder `gorm:"foreignKey:OrderID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new purchase order line
func (l *PurchaseOrderLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrderLine model
func (PurchaseOrderLine) TableName() string {
	return "purchase_order_lines"
}

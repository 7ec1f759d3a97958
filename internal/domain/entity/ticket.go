package entity

import "time"

// TicketItemUpdate is one per-item receipt update carried by a dock ticket.
type TicketItemUpdate struct {
	ItemCode string     `json:"item_code"`
	Quantity int        `json:"quantity"`
	Lot      string     `json:"lot,omitempty"`
	Expiry   *time.Time `json:"expiry,omitempty"`
}

// DecodedTicket is the parsed form of a compact dock-slip payload.
// Transient: produced by the decoder, applied to a session, discarded.
type DecodedTicket struct {
	OrderNo     string             `json:"order_no"`
	InvoiceRef  string             `json:"invoice_ref"`
	ReceiptDate time.Time          `json:"receipt_date"`
	Items       []TicketItemUpdate `json:"items"`
}

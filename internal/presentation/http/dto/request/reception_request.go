package request

// CreateSessionRequest opens a reconciliation session for an order
type CreateSessionRequest struct {
	Year    int    `json:"year" binding:"required,min=2000,max=2100"`
	OrderNo string `json:"order_no" binding:"required,max=50"`
}

// UpdateLineRequest represents a partial edit of one reconciliation line
type UpdateLineRequest struct {
	ReceivedQty *int    `json:"received_qty" binding:"omitempty,min=0"`
	Lot         *string `json:"lot" binding:"omitempty,max=100"`
	Expiry      *string `json:"expiry" binding:"omitempty,len=10"` // YYYY-MM-DD
}

// ApplyTicketRequest carries a raw dock-slip payload to apply to a session
type ApplyTicketRequest struct {
	Payload string `json:"payload" binding:"required"`
}

// DecodeTicketRequest carries a raw dock-slip payload for decode-only inspection
type DecodeTicketRequest struct {
	Payload string `json:"payload" binding:"required"`
}

// RegisterReceiptRequest finalizes a session into a goods receipt
type RegisterReceiptRequest struct {
	Warehouse string `json:"warehouse" binding:"omitempty,max=100"`
}

package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/almvdev/receiving-api/internal/domain/entity"
	"github.com/almvdev/receiving-api/pkg/apperror"
)

// Dock-slip wire format, e.g. scanned off a printed QR at the dock:
//
//	<order>]<receipt date>]<invoice>Ç<item>Ç<item>...
//	item := <code>|<qty>|<lot>|<expiry>
//
// The delimiter stack is inherited from the label printers in the field;
// it is isolated here so the wire format can be swapped without touching
// reconciliation logic.
const (
	ticketSegmentSep = "]"
	ticketItemSep    = "Ç"
	ticketFieldSep   = "|"
	ticketDateLayout = "2006-01-02"

	ticketItemFields = 4
)

// DecodeTicket parses a raw dock-slip payload into a DecodedTicket.
// Structural violations (wrong segment or field counts, unparseable
// receipt date) reject the whole ticket with a DecodeError and no
// partial result. A quantity that fails to parse degrades that one item
// to zero instead of failing the batch. Item codes are not checked
// against any order here; unknown codes are dropped at application time.
func DecodeTicket(raw string) (*entity.DecodedTicket, error) {
	segments := strings.Split(raw, ticketSegmentSep)
	if len(segments) != 3 {
		return nil, apperror.NewDecodeError(fmt.Sprintf("expected 3 segments, got %d", len(segments)))
	}

	orderNo := strings.TrimSpace(segments[0])
	if orderNo == "" {
		return nil, apperror.NewDecodeError("empty order reference")
	}

	receiptDate, err := time.Parse(ticketDateLayout, strings.TrimSpace(segments[1]))
	if err != nil {
		return nil, apperror.NewDecodeError("invalid receipt date " + strconv.Quote(segments[1]))
	}

	parts := strings.Split(segments[2], ticketItemSep)
	if len(parts) < 2 {
		return nil, apperror.NewDecodeError("missing item entries")
	}

	ticket := &entity.DecodedTicket{
		OrderNo:     orderNo,
		InvoiceRef:  strings.TrimSpace(parts[0]),
		ReceiptDate: receiptDate,
		Items:       make([]entity.TicketItemUpdate, 0, len(parts)-1),
	}

	for _, part := range parts[1:] {
		fields := strings.Split(part, ticketFieldSep)
		if len(fields) != ticketItemFields {
			return nil, apperror.NewDecodeError(fmt.Sprintf("item entry has %d fields, want %d", len(fields), ticketItemFields))
		}

		code := strings.TrimSpace(fields[0])
		if code == "" {
			continue
		}

		// A bad quantity degrades the one item, not the whole ticket.
		qty, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil || qty < 0 {
			qty = 0
		}

		update := entity.TicketItemUpdate{
			ItemCode: code,
			Quantity: qty,
			Lot:      strings.TrimSpace(fields[2]),
		}
		if expiry, err := time.Parse(ticketDateLayout, strings.TrimSpace(fields[3])); err == nil {
			update.Expiry = &expiry
		}

		ticket.Items = append(ticket.Items, update)
	}

	return ticket, nil
}

// EncodeTicket renders a DecodedTicket back into the dock-slip wire
// format. Used when printing dock slips and by round-trip tests.
func EncodeTicket(t *entity.DecodedTicket) string {
	var b strings.Builder
	b.WriteString(t.OrderNo)
	b.WriteString(ticketSegmentSep)
	b.WriteString(t.ReceiptDate.Format(ticketDateLayout))
	b.WriteString(ticketSegmentSep)
	b.WriteString(t.InvoiceRef)

	for _, item := range t.Items {
		expiry := ""
		if item.Expiry != nil {
			expiry = item.Expiry.Format(ticketDateLayout)
		}
		b.WriteString(ticketItemSep)
		b.WriteString(strings.Join([]string{
			item.ItemCode,
			strconv.Itoa(item.Quantity),
			item.Lot,
			expiry,
		}, ticketFieldSep))
	}

	return b.String()
}

package service

import (
	"context"
	"time"

	"github.com/almvdev/receiving-api/internal/domain/entity"
	"github.com/almvdev/receiving-api/internal/domain/enum"
	"github.com/almvdev/receiving-api/internal/domain/repository"
	"github.com/almvdev/receiving-api/pkg/apperror"
	"github.com/almvdev/receiving-api/pkg/clock"
	"github.com/almvdev/receiving-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ReceptionService orchestrates goods-receipt reconciliation: loading an
// order into a working session, applying clerk edits and dock tickets,
// and registering the finalized receipt under a freshly issued folio.
type ReceptionService struct {
	catalog    repository.OrderCatalog
	sessions   repository.SessionStore
	receipts   repository.ReceiptRepository
	clk        clock.Clock
	warehouses []string
}

// NewReceptionService creates a new reception service
func NewReceptionService(
	catalog repository.OrderCatalog,
	sessions repository.SessionStore,
	receipts repository.ReceiptRepository,
	clk clock.Clock,
	warehouses []string,
) *ReceptionService {
	if len(warehouses) == 0 {
		warehouses = []string{"ALIMENTOS FAA", "ALMACEN GENERAL"}
	}
	return &ReceptionService{
		catalog:    catalog,
		sessions:   sessions,
		receipts:   receipts,
		clk:        clk,
		warehouses: warehouses,
	}
}

// Warehouses returns the warehouse identifiers receipts may be booked to.
func (s *ReceptionService) Warehouses() []string {
	return s.warehouses
}

// ListOrders lists the catalog orders for a year.
func (s *ReceptionService) ListOrders(ctx context.Context, year int) ([]entity.PurchaseOrder, error) {
	return s.catalog.ListOrders(ctx, year)
}

// GetOrder retrieves one catalog order.
func (s *ReceptionService) GetOrder(ctx context.Context, year int, orderNo string) (*entity.PurchaseOrder, error) {
	order, err := s.catalog.GetOrder(ctx, year, orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	return order, nil
}

// LoadOrder opens a reconciliation session for an order: one working
// line per order line, each pre-classified against the reference day
// with a zero penalty.
func (s *ReceptionService) LoadOrder(ctx context.Context, year int, orderNo string) (*entity.ReconciliationSession, error) {
	order, err := s.GetOrder(ctx, year, orderNo)
	if err != nil {
		return nil, err
	}

	session := &entity.ReconciliationSession{
		ID:        uuid.New(),
		State:     enum.SessionStateLoaded,
		Year:      year,
		OrderNo:   order.OrderNo,
		Supplier:  order.Supplier,
		Warehouse: s.warehouses[0],
		Order:     order,
		Lines:     s.seedLines(order),
	}

	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"session": session.ID,
		"order":   order.OrderNo,
		"lines":   len(session.Lines),
	}).Info("reconciliation session opened")

	return session, nil
}

func (s *ReceptionService) seedLines(order *entity.PurchaseOrder) []entity.ReconciliationLine {
	today := s.clk.Today()
	lines := make([]entity.ReconciliationLine, 0, len(order.Lines))
	for i := range order.Lines {
		c := ClassifyDelivery(order.Lines[i].ScheduledDate, today)
		lines = append(lines, entity.ReconciliationLine{
			OrderLine: &order.Lines[i],
			Status:    c.Status,
			DaysLate:  c.DaysLate,
			Penalty:   entity.ZeroPenalty(),
		})
	}
	return lines
}

// GetSession retrieves an active session by ID.
func (s *ReceptionService) GetSession(ctx context.Context, id uuid.UUID) (*entity.ReconciliationSession, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Session")
	}
	return session, nil
}

func (s *ReceptionService) getLoadedSession(ctx context.Context, id uuid.UUID) (*entity.ReconciliationSession, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.State == enum.SessionStateRegistered {
		return nil, apperror.NewConflictError("Session is already registered")
	}
	return session, nil
}

// LineEdit carries a partial update of one reconciliation line. Nil
// fields are left untouched.
type LineEdit struct {
	ReceivedQty *int
	Lot         *string
	Expiry      *time.Time
}

// UpdateLine applies a field edit to one line of a session and
// recomputes that line's penalty. Sibling lines are never touched.
func (s *ReceptionService) UpdateLine(ctx context.Context, sessionID uuid.UUID, itemCode string, edit LineEdit) (*entity.ReconciliationSession, error) {
	session, err := s.getLoadedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	line := session.LineByCode(itemCode)
	if line == nil {
		return nil, apperror.NewNotFoundError("Line item")
	}

	if edit.ReceivedQty != nil {
		if *edit.ReceivedQty < 0 {
			return nil, apperror.NewBadRequestError("Received quantity cannot be negative")
		}
		line.ReceivedQty = *edit.ReceivedQty
	}
	if edit.Lot != nil {
		line.Lot = *edit.Lot
	}
	if edit.Expiry != nil {
		line.Expiry = edit.Expiry
	}

	reconcileLine(line)

	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ApplyTicket decodes a raw dock-slip payload and patches the session
// with it. Decoding is all-or-nothing; application is per item, with
// updates for codes outside the loaded order silently dropped. The
// ticket's order reference and invoice fields overwrite the session
// header, reloading the working set when the ticket points at a
// different order than the one on screen.
func (s *ReceptionService) ApplyTicket(ctx context.Context, sessionID uuid.UUID, raw string) (*entity.ReconciliationSession, error) {
	session, err := s.getLoadedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	ticket, err := DecodeTicket(raw)
	if err != nil {
		logrus.WithError(err).Warn("dock ticket rejected")
		return nil, err
	}

	if ticket.OrderNo != session.OrderNo {
		order, err := s.catalog.GetOrder(ctx, session.Year, ticket.OrderNo)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, apperror.NewNotFoundError("Purchase order referenced by ticket")
		}
		session.OrderNo = order.OrderNo
		session.Supplier = order.Supplier
		session.Order = order
		session.Lines = s.seedLines(order)
	}

	session.InvoiceFolio = ticket.InvoiceRef
	receiptDate := ticket.ReceiptDate
	session.InvoiceDate = &receiptDate

	applied := 0
	for _, update := range ticket.Items {
		line := session.LineByCode(update.ItemCode)
		if line == nil {
			continue
		}
		line.ReceivedQty = update.Quantity
		line.Lot = update.Lot
		line.Expiry = update.Expiry
		reconcileLine(line)
		applied++
	}

	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"session": session.ID,
		"order":   session.OrderNo,
		"applied": applied,
		"dropped": len(ticket.Items) - applied,
	}).Info("dock ticket applied")

	return session, nil
}

// Register finalizes a session: issues the next folio, persists the
// GoodsReceipt with only the lines actually received, and marks the
// session terminal. Rejected without consuming a folio when nothing was
// received or when the warehouse is unknown.
func (s *ReceptionService) Register(ctx context.Context, sessionID uuid.UUID, warehouse string) (*entity.GoodsReceipt, error) {
	session, err := s.getLoadedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if warehouse == "" {
		warehouse = session.Warehouse
	}
	if !s.validWarehouse(warehouse) {
		return nil, apperror.NewBadRequestError("Unknown warehouse " + warehouse)
	}

	if !session.HasReceivedQuantities() {
		return nil, apperror.NewAppError(400, "No received quantities to register")
	}

	receipt := &entity.GoodsReceipt{
		Warehouse:    warehouse,
		OrderNo:      session.OrderNo,
		InvoiceFolio: session.InvoiceFolio,
		InvoiceDate:  session.InvoiceDate,
		TotalPenalty: session.TotalPenalty(),
	}
	for i := range session.Lines {
		line := &session.Lines[i]
		if line.ReceivedQty <= 0 {
			continue
		}
		receipt.Lines = append(receipt.Lines, entity.GoodsReceiptLine{
			ItemCode:    line.OrderLine.ItemCode,
			Description: line.OrderLine.Description,
			OrderedQty:  line.OrderLine.OrderedQty,
			ReceivedQty: line.ReceivedQty,
			UnitPrice:   line.OrderLine.UnitPrice,
			Lot:         line.Lot,
			Expiry:      line.Expiry,
			Status:      line.Status,
			DaysLate:    line.DaysLate,
			Penalty:     line.Penalty.Amount,
			PenaltyNote: line.Penalty.Justification,
		})
	}

	// Folio allocation and receipt persistence succeed or fail together.
	if err := s.receipts.Register(ctx, receipt); err != nil {
		return nil, err
	}

	session.State = enum.SessionStateRegistered
	session.Warehouse = warehouse
	if err := s.sessions.Put(ctx, session); err != nil {
		logrus.WithError(err).WithField("folio", receipt.Folio).Warn("failed to mark session registered")
	}

	logrus.WithFields(logrus.Fields{
		"folio":         receipt.Folio,
		"order":         receipt.OrderNo,
		"lines":         len(receipt.Lines),
		"total_penalty": receipt.TotalPenalty.String(),
	}).Info("goods receipt registered")

	return receipt, nil
}

func (s *ReceptionService) validWarehouse(name string) bool {
	for _, w := range s.warehouses {
		if w == name {
			return true
		}
	}
	return false
}

// CalendarView is the calendar query result: the fixed 42-day grid and,
// when a day was selected, the line items scheduled on it.
type CalendarView struct {
	Days     []entity.CalendarDay       `json:"days"`
	Selected []entity.PurchaseOrderLine `json:"selected,omitempty"`
}

// Calendar builds the delivery calendar for an order and a displayed
// month, independent of any reconciliation session state.
func (s *ReceptionService) Calendar(ctx context.Context, year int, orderNo string, calYear int, calMonth time.Month, selected *time.Time) (*CalendarView, error) {
	order, err := s.GetOrder(ctx, year, orderNo)
	if err != nil {
		return nil, err
	}

	view := &CalendarView{
		Days: BuildCalendar(order, calYear, calMonth, s.clk.Today()),
	}
	if selected != nil {
		view.Selected = ScheduledOn(order, *selected)
	}
	return view, nil
}

// ListReceipts lists registered goods receipts, newest folio first.
func (s *ReceptionService) ListReceipts(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.GoodsReceipt], error) {
	params.Validate()
	receipts, total, err := s.receipts.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(receipts, pag), nil
}

// GetReceipt retrieves a registered receipt by folio.
func (s *ReceptionService) GetReceipt(ctx context.Context, folio string) (*entity.GoodsReceipt, error) {
	receipt, err := s.receipts.GetByFolio(ctx, folio)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Goods receipt")
	}
	return receipt, nil
}

package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/almvdev/receiving-api/internal/domain/entity"
	domainRepo "github.com/almvdev/receiving-api/internal/domain/repository"
	"github.com/almvdev/receiving-api/pkg/pagination"
	"github.com/google/uuid"
)

// memoryCatalog is an in-memory purchase-order catalog. Used when the
// service runs without a database and by the service tests.
type memoryCatalog struct {
	orders []entity.PurchaseOrder
}

// NewMemoryCatalog creates a catalog backed by the given orders
func NewMemoryCatalog(orders []entity.PurchaseOrder) domainRepo.OrderCatalog {
	return &memoryCatalog{orders: orders}
}

func (c *memoryCatalog) GetOrder(ctx context.Context, year int, orderNo string) (*entity.PurchaseOrder, error) {
	for i := range c.orders {
		if c.orders[i].Year == year && c.orders[i].OrderNo == orderNo {
			return &c.orders[i], nil
		}
	}
	return nil, nil
}

func (c *memoryCatalog) ListOrders(ctx context.Context, year int) ([]entity.PurchaseOrder, error) {
	var orders []entity.PurchaseOrder
	for i := range c.orders {
		if c.orders[i].Year == year {
			orders = append(orders, c.orders[i])
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderNo < orders[j].OrderNo })
	return orders, nil
}

// memoryReceiptRepository is an in-memory goods-receipt store with the
// same folio guarantees as the database one: issuance and persistence
// happen under a single lock, so folios are distinct and strictly
// increasing, and failed attempts never advance the counter.
type memoryReceiptRepository struct {
	mu         sync.Mutex
	lastNumber int64
	receipts   []entity.GoodsReceipt
}

// NewMemoryReceiptRepository creates an in-memory receipt repository
// whose folio sequence starts after lastNumber
func NewMemoryReceiptRepository(lastNumber int64) domainRepo.ReceiptRepository {
	return &memoryReceiptRepository{lastNumber: lastNumber}
}

func (r *memoryReceiptRepository) Register(ctx context.Context, receipt *entity.GoodsReceipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.lastNumber + 1
	receipt.FolioNumber = next
	receipt.Folio = entity.FormatFolio(next)
	if receipt.ID == uuid.Nil {
		receipt.ID = uuid.New()
	}

	r.receipts = append(r.receipts, *receipt)
	r.lastNumber = next
	return nil
}

func (r *memoryReceiptRepository) GetByFolio(ctx context.Context, folio string) (*entity.GoodsReceipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.receipts {
		if r.receipts[i].Folio == folio {
			receipt := r.receipts[i]
			return &receipt, nil
		}
	}
	return nil, nil
}

func (r *memoryReceiptRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.GoodsReceipt, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	receipts := make([]entity.GoodsReceipt, len(r.receipts))
	copy(receipts, r.receipts)
	sort.Slice(receipts, func(i, j int) bool { return receipts[i].FolioNumber > receipts[j].FolioNumber })

	total := int64(len(receipts))
	offset := params.Offset()
	if offset >= len(receipts) {
		return nil, total, nil
	}
	end := offset + params.PerPage
	if end > len(receipts) {
		end = len(receipts)
	}
	return receipts[offset:end], total, nil
}

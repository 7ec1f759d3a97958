package repository

import (
	"context"

	"github.com/almvdev/receiving-api/internal/domain/entity"
)

// OrderCatalog defines the interface for the read-only purchase-order
// catalog the reception flow reconciles against.
type OrderCatalog interface {
	GetOrder(ctx context.Context, year int, orderNo string) (*entity.PurchaseOrder, error)
	ListOrders(ctx context.Context, year int) ([]entity.PurchaseOrder, error)
}

package repository

import (
	"context"

	"github.com/almvdev/receiving-api/internal/domain/entity"
	"github.com/almvdev/receiving-api/pkg/pagination"
)

// ReceiptRepository defines the interface for goods-receipt persistence.
//
// Register must allocate the next folio and persist the receipt as one
// atomic unit: either the receipt is stored under a freshly issued folio
// or the attempt fails and no folio number is consumed. Implementations
// must guarantee distinct, strictly increasing folios under concurrent
// registrations.
type ReceiptRepository interface {
	Register(ctx context.Context, receipt *entity.GoodsReceipt) error
	GetByFolio(ctx context.Context, folio string) (*entity.GoodsReceipt, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.GoodsReceipt, int64, error)
}

package repository

import (
	"context"
	"errors"

	"github.com/almvdev/receiving-api/internal/domain/entity"
	domainRepo "github.com/almvdev/receiving-api/internal/domain/repository"
	"github.com/almvdev/receiving-api/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const folioSequenceID = 1

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new goods-receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

// Register allocates the next folio and persists the receipt in one
// transaction. The sequence row is locked for the duration, so two
// concurrent registrations serialize on the increment and can never
// observe the same number; a rollback releases the row without the
// increment committing, so failed attempts consume nothing.
func (r *receiptRepository) Register(ctx context.Context, receipt *entity.GoodsReceipt) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq entity.FolioSequence
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&seq, "id = ?", folioSequenceID).Error; err != nil {
			return err
		}

		seq.LastNumber++
		if err := tx.Save(&seq).Error; err != nil {
			return err
		}

		receipt.FolioNumber = seq.LastNumber
		receipt.Folio = entity.FormatFolio(seq.LastNumber)

		return tx.Create(receipt).Error
	})
}

func (r *receiptRepository) GetByFolio(ctx context.Context, folio string) (*entity.GoodsReceipt, error) {
	var receipt entity.GoodsReceipt
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&receipt, "folio = ?", folio).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.GoodsReceipt, int64, error) {
	var receipts []entity.GoodsReceipt
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.GoodsReceipt{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Lines").
		Order("folio_number DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&receipts).Error
	return receipts, total, err
}

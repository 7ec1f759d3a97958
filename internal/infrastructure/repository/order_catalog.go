package repository

import (
	"context"
	"errors"

	"github.com/almvdev/receiving-api/internal/domain/entity"
	domainRepo "github.com/almvdev/receiving-api/internal/domain/repository"
	"gorm.io/gorm"
)

type orderCatalog struct {
	db *gorm.DB
}

// NewOrderCatalog creates a new database-backed purchase-order catalog
func NewOrderCatalog(db *gorm.DB) domainRepo.OrderCatalog {
	return &orderCatalog{db: db}
}

func (c *orderCatalog) GetOrder(ctx context.Context, year int, orderNo string) (*entity.PurchaseOrder, error) {
	var order entity.PurchaseOrder
	err := c.db.WithContext(ctx).
		Preload("Lines").
		First(&order, "order_no = ? AND year = ?", orderNo, year).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (c *orderCatalog) ListOrders(ctx context.Context, year int) ([]entity.PurchaseOrder, error) {
	var orders []entity.PurchaseOrder
	err := c.db.WithContext(ctx).
		Preload("Lines").
		Where("year = ?", year).
		Order("order_no").
		Find(&orders).Error
	return orders, err
}

package database

import (
	"fmt"
	"time"

	"github.com/almvdev/receiving-api/internal/config"
	"github.com/almvdev/receiving-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Info("connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	logrus.Info("running database migrations")

	err := db.AutoMigrate(
		// Catalog entities
		&entity.PurchaseOrder{},
		&entity.PurchaseOrderLine{},

		// Reception entities
		&entity.GoodsReceipt{},
		&entity.GoodsReceiptLine{},
		&entity.FolioSequence{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// SeedCatalog seeds the purchase-order catalog and the folio sequence.
// Orders already present are left untouched; the catalog is read-only
// once loaded.
func SeedCatalog(db *gorm.DB, folioStart int64) error {
	logrus.Info("seeding purchase-order catalog")

	for i := range seedOrders {
		var existing entity.PurchaseOrder
		err := db.Where("order_no = ? AND year = ?", seedOrders[i].OrderNo, seedOrders[i].Year).
			First(&existing).Error
		if err == nil {
			continue
		}
		if err := db.Create(&seedOrders[i]).Error; err != nil {
			logrus.WithError(err).Warnf("failed to seed order %s", seedOrders[i].OrderNo)
		}
	}

	var seq entity.FolioSequence
	if err := db.First(&seq, "id = ?", 1).Error; err != nil {
		seq = entity.FolioSequence{ID: 1, LastNumber: folioStart}
		if err := db.Create(&seq).Error; err != nil {
			return fmt.Errorf("failed to seed folio sequence: %w", err)
		}
	}

	return nil
}

func date(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic("bad seed date " + value)
	}
	return &t
}

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// CatalogSeed returns the built-in purchase order catalog. It backs the
// in-memory storage mode and the initial database seed.
func CatalogSeed() []entity.PurchaseOrder {
	orders := make([]entity.PurchaseOrder, len(seedOrders))
	copy(orders, seedOrders)
	return orders
}

var seedOrders = []entity.PurchaseOrder{
	{
		OrderNo:  "10401651",
		Year:     2025,
		Supplier: "PROVEEDOR EJEMPLO S.A. DE C.V.",
		Lines: []entity.PurchaseOrderLine{
			{ItemCode: "2212008007", Description: "BOLLILO CON SAL DE 160 GRAMOS", OrderedQty: 80, UnitPrice: price("10.00"), ScheduledDate: date("2025-09-01")},
			{ItemCode: "2212008008", Description: "BOLLILO MINI SIN SAL DE 80 GRAMOS", OrderedQty: 560, UnitPrice: price("4.90"), ScheduledDate: date("2025-09-04")},
			{ItemCode: "2212008011", Description: "PAN DULCE DE 100 GRAMOS", OrderedQty: 4448, UnitPrice: price("10.80"), ScheduledDate: date("2025-09-10")},
			{ItemCode: "2212008028", Description: "BOLLILO FLEIMAN DE 150GR C/U", OrderedQty: 600, UnitPrice: price("6.80")},
			{ItemCode: "2212008029", Description: "CUERNITO (DANADO) DE 100 GRAMOS", OrderedQty: 37, UnitPrice: price("10.90"), ScheduledDate: date("2025-08-28")},
			{ItemCode: "2212008037", Description: "BOLLILO MINI CON SAL DE 80 GRAMOS", OrderedQty: 2200, UnitPrice: price("4.90"), ScheduledDate: date("2025-08-20")},
		},
	},
	{
		OrderNo:  "2024-ABC",
		Year:     2024,
		Supplier: "PANIFICADORA LA LUZ",
		Lines: []entity.PurchaseOrderLine{
			{ItemCode: "P-001", Description: "CONCHA DE CHOCOLATE", OrderedQty: 200, UnitPrice: price("8.50"), ScheduledDate: date("2024-12-15")},
			{ItemCode: "P-002", Description: "OREJA DE HOJALDRE", OrderedQty: 150, UnitPrice: price("9.00"), ScheduledDate: date("2024-12-20")},
		},
	},
}

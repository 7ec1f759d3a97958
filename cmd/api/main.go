package main

import (
	"time"

	"github.com/almvdev/receiving-api/internal/application/service"
	"github.com/almvdev/receiving-api/internal/config"
	"github.com/almvdev/receiving-api/internal/domain/repository"
	"github.com/almvdev/receiving-api/internal/infrastructure/database"
	infraRepo "github.com/almvdev/receiving-api/internal/infrastructure/repository"
	"github.com/almvdev/receiving-api/internal/presentation/http/handler"
	"github.com/almvdev/receiving-api/internal/presentation/http/routes"
	"github.com/almvdev/receiving-api/pkg/clock"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if cfg.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize storage
	catalog, receiptRepo := buildStorage(cfg)

	// Reference date pins "today" for reconciliation, mainly for demos and
	// repeatable environments. Empty means the system clock.
	var clk clock.Clock = clock.SystemClock{}
	if cfg.Reception.ReferenceDate != "" {
		day, err := time.Parse("2006-01-02", cfg.Reception.ReferenceDate)
		if err != nil {
			logrus.Fatalf("Invalid reference date %q: %v", cfg.Reception.ReferenceDate, err)
		}
		clk = clock.FixedClock{Day: day}
	}

	// Initialize services
	sessionStore := infraRepo.NewSessionStore()
	receptionService := service.NewReceptionService(catalog, sessionStore, receiptRepo, clk, cfg.Reception.Warehouses)

	// Initialize handlers
	handlers := &routes.Handlers{
		Order:   handler.NewOrderHandler(receptionService),
		Session: handler.NewSessionHandler(receptionService),
		Receipt: handler.NewReceiptHandler(receptionService),
		Ticket:  handler.NewTicketHandler(),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{Cfg: cfg})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logrus.WithFields(logrus.Fields{
		"service": cfg.App.Name,
		"env":     cfg.App.Env,
		"storage": cfg.App.Storage,
		"port":    port,
	}).Info("Starting server")

	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

// buildStorage wires the order catalog and receipt repository for the
// configured storage mode.
func buildStorage(cfg *config.Config) (repository.OrderCatalog, repository.ReceiptRepository) {
	if cfg.App.Storage == "memory" {
		logrus.Info("Using in-memory storage")
		return infraRepo.NewMemoryCatalog(database.CatalogSeed()),
			infraRepo.NewMemoryReceiptRepository(cfg.Reception.FolioStart)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedCatalog(db, cfg.Reception.FolioStart); err != nil {
		logrus.Warnf("Failed to seed catalog: %v", err)
	}

	return infraRepo.NewOrderCatalog(db), infraRepo.NewReceiptRepository(db)
}

package routes

import (
	"time"

	"github.com/almvdev/receiving-api/internal/config"
	"github.com/almvdev/receiving-api/internal/presentation/http/handler"
	"github.com/almvdev/receiving-api/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Order   *handler.OrderHandler
	Session *handler.SessionHandler
	Receipt *handler.ReceiptHandler
	Ticket  *handler.TicketHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerOrderRoutes(v1, h)
		registerSessionRoutes(v1, h)
		registerReceiptRoutes(v1, h)
		registerTicketRoutes(v1, h)
	}

	return router
}

func registerOrderRoutes(v1 *gin.RouterGroup, h *Handlers) {
	orders := v1.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/warehouses", h.Order.Warehouses)
		orders.GET("/:year/:order_no", h.Order.Get)
		orders.GET("/:year/:order_no/calendar", h.Order.Calendar)
	}
}

func registerSessionRoutes(v1 *gin.RouterGroup, h *Handlers) {
	sessions := v1.Group("/sessions")
	{
		sessions.POST("", h.Session.Create)
		sessions.GET("/:id", h.Session.Get)
		sessions.PATCH("/:id/lines/:item_code", h.Session.UpdateLine)
		sessions.POST("/:id/ticket", h.Session.ApplyTicket)
		sessions.POST("/:id/register", h.Session.Register)
	}
}

func registerReceiptRoutes(v1 *gin.RouterGroup, h *Handlers) {
	receipts := v1.Group("/receipts")
	{
		receipts.GET("", h.Receipt.List)
		receipts.GET("/:folio", h.Receipt.Get)
	}
}

func registerTicketRoutes(v1 *gin.RouterGroup, h *Handlers) {
	tickets := v1.Group("/tickets")
	{
		tickets.POST("/decode", h.Ticket.Decode)
	}
}

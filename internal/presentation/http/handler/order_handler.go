package handler

import (
	"strconv"
	"time"

	"github.com/almvdev/receiving-api/internal/application/service"
	"github.com/almvdev/receiving-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles purchase-order catalog HTTP requests
type OrderHandler struct {
	receptionService *service.ReceptionService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(receptionService *service.ReceptionService) *OrderHandler {
	return &OrderHandler{receptionService: receptionService}
}

// List handles listing catalog orders for a year
func (h *OrderHandler) List(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		response.BadRequest(c, "Invalid year")
		return
	}

	orders, err := h.receptionService.ListOrders(c.Request.Context(), year)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Orders retrieved successfully", orders)
}

// Get handles getting a single catalog order
func (h *OrderHandler) Get(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		response.BadRequest(c, "Invalid year")
		return
	}

	order, err := h.receptionService.GetOrder(c.Request.Context(), year, c.Param("order_no"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// Calendar handles the delivery calendar query for an order
func (h *OrderHandler) Calendar(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		response.BadRequest(c, "Invalid year")
		return
	}

	calYear, err := strconv.Atoi(c.DefaultQuery("cal_year", strconv.Itoa(year)))
	if err != nil {
		response.BadRequest(c, "Invalid cal_year")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(c, "Invalid month")
		return
	}
	selected, ok := dateQuery(c, "day")
	if !ok {
		response.BadRequest(c, "Invalid day")
		return
	}

	view, err := h.receptionService.Calendar(c.Request.Context(), year, c.Param("order_no"), calYear, time.Month(month), selected)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Calendar built successfully", view)
}

// Warehouses handles listing the destination warehouses available for registration
func (h *OrderHandler) Warehouses(c *gin.Context) {
	response.OK(c, "Warehouses retrieved successfully", h.receptionService.Warehouses())
}

package handler

import (
	"strconv"

	"github.com/almvdev/receiving-api/internal/application/service"
	"github.com/almvdev/receiving-api/internal/presentation/http/dto/response"
	"github.com/almvdev/receiving-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// ReceiptHandler handles goods-receipt HTTP requests
type ReceiptHandler struct {
	receptionService *service.ReceptionService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receptionService *service.ReceptionService) *ReceiptHandler {
	return &ReceiptHandler{receptionService: receptionService}
}

// List handles listing registered receipts
func (h *ReceiptHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.receptionService.ListReceipts(c.Request.Context(), &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Receipts retrieved successfully", result)
}

// Get handles getting a registered receipt by folio
func (h *ReceiptHandler) Get(c *gin.Context) {
	receipt, err := h.receptionService.GetReceipt(c.Request.Context(), c.Param("folio"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", receipt)
}

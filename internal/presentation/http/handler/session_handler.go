package handler

import (
	"time"

	"github.com/almvdev/receiving-api/internal/application/service"
	"github.com/almvdev/receiving-api/internal/presentation/http/dto/request"
	"github.com/almvdev/receiving-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// SessionHandler handles reconciliation-session HTTP requests
type SessionHandler struct {
	receptionService *service.ReceptionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(receptionService *service.ReceptionService) *SessionHandler {
	return &SessionHandler{receptionService: receptionService}
}

// Create handles opening a session by loading an order
func (h *SessionHandler) Create(c *gin.Context) {
	var req request.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session, err := h.receptionService.LoadOrder(c.Request.Context(), req.Year, req.OrderNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Session created successfully", session)
}

// Get handles retrieving a session snapshot
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	session, err := h.receptionService.GetSession(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Session retrieved successfully", session)
}

// UpdateLine handles a field edit on one line of a session
func (h *SessionHandler) UpdateLine(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	var req request.UpdateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	edit := service.LineEdit{
		ReceivedQty: req.ReceivedQty,
		Lot:         req.Lot,
	}
	if req.Expiry != nil {
		expiry, err := time.Parse(dateLayout, *req.Expiry)
		if err != nil {
			response.BadRequest(c, "Invalid expiry date")
			return
		}
		edit.Expiry = &expiry
	}

	session, err := h.receptionService.UpdateLine(c.Request.Context(), id, c.Param("item_code"), edit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line updated successfully", session)
}

// ApplyTicket handles applying a dock-slip payload to a session
func (h *SessionHandler) ApplyTicket(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	var req request.ApplyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session, err := h.receptionService.ApplyTicket(c.Request.Context(), id, req.Payload)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket applied successfully", session)
}

// Register handles finalizing a session into a goods receipt
func (h *SessionHandler) Register(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	var req request.RegisterReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receptionService.Register(c.Request.Context(), id, req.Warehouse)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receipt registered successfully", receipt)
}

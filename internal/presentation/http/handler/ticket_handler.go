package handler

import (
	"github.com/almvdev/receiving-api/internal/application/service"
	"github.com/almvdev/receiving-api/internal/presentation/http/dto/request"
	"github.com/almvdev/receiving-api/internal/presentation/http/dto/response"
	"github.com/almvdev/receiving-api/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// TicketHandler handles delivery ticket HTTP requests
type TicketHandler struct{}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler() *TicketHandler {
	return &TicketHandler{}
}

// Decode handles decoding a scanned ticket payload without touching a session
func (h *TicketHandler) Decode(c *gin.Context) {
	var req request.DecodeTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid request body"))
		return
	}

	ticket, err := service.DecodeTicket(req.Payload)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket decoded successfully", ticket)
}

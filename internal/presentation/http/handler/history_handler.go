package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rodamoinho/recibos-api/internal/application/service"
	"github.com/rodamoinho/recibos-api/internal/presentation/http/dto/response"
)

// HistoryHandler handles receipt history HTTP requests
type HistoryHandler struct {
	historyService *service.HistoryService
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(historyService *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// List handles listing issued receipts
// @Summary List History
// @Description List issued receipts, most recent first
// @Tags history
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /receipts/history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	receipts, err := h.historyService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "History retrieved successfully", gin.H{
		"receipts": receipts,
	})
}

// Remove handles deleting a receipt record
// @Summary Remove Receipt
// @Description Remove one issued receipt from the history
// @Tags history
// @Security BearerAuth
// @Param number path string true "Receipt number"
// @Success 204
// @Failure 404 {object} response.APIResponse
// @Router /receipts/history/{number} [delete]
func (h *HistoryHandler) Remove(c *gin.Context) {
	number := c.Param("number")
	if err := h.historyService.Remove(c.Request.Context(), number); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rodamoinho/recibos-api/internal/application/service"
	"github.com/rodamoinho/recibos-api/internal/domain/entity"
	"github.com/rodamoinho/recibos-api/internal/presentation/http/dto/request"
	"github.com/rodamoinho/recibos-api/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

func draftInputFromRequest(req request.ReceiptDraftRequest) service.DraftInput {
	items := make([]service.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.ItemInput{
			ID:          item.ID,
			Description: item.Description,
			Value:       item.Value,
		})
	}
	return service.DraftInput{
		Date:       req.Date,
		City:       req.City,
		PayerIndex: req.PayerIndex,
		Items:      items,
		Discount:   req.Discount,
		TaxRate:    req.TaxRate,
	}
}

func exportResultData(result *service.ExportResult) gin.H {
	return gin.H{
		"receipt":     result.Receipt,
		"file_name":   result.FileName,
		"pdf":         result.PDF, // base64 in JSON
		"shared":      result.Shared,
		"mailto_link": result.MailtoLink,
	}
}

// sendExport answers either with the JSON export envelope or, when
// ?download=true, with the raw PDF as an attachment.
func sendExport(c *gin.Context, message string, result *service.ExportResult) {
	if c.Query("download") == "true" {
		c.Header("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
		c.Data(200, "application/pdf", result.PDF)
		return
	}
	response.OK(c, message, exportResultData(result))
}

// Payers handles listing the payer catalog
// @Summary List Payers
// @Description List the companies a receipt can be issued against
// @Tags receipts
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /payers [get]
func (h *ReceiptHandler) Payers(c *gin.Context) {
	response.OK(c, "Payers retrieved successfully", gin.H{
		"payers": entity.PayerCatalog(),
	})
}

// NewDraft handles creating a fresh draft
// @Summary New Draft
// @Description Return a fresh draft dated today with the live profile
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /receipts/draft [post]
func (h *ReceiptHandler) NewDraft(c *gin.Context) {
	draft, err := h.receiptService.NewDraft(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Draft created", gin.H{
		"draft": draft,
	})
}

// Totals handles computing the financial summary for a draft
// @Summary Compute Totals
// @Description Compute gross, tax and net for the submitted draft
// @Tags receipts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.ReceiptDraftRequest true "Draft state"
// @Success 200 {object} response.APIResponse
// @Router /receipts/totals [post]
func (h *ReceiptHandler) Totals(c *gin.Context) {
	var req request.ReceiptDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	totals := h.receiptService.Totals(draftInputFromRequest(req))

	response.OK(c, "Totals computed", gin.H{
		"totals": totals,
	})
}

// Preview handles rendering a draft without committing anything
// @Summary Preview Receipt
// @Description Render the draft under the next number without advancing it
// @Tags receipts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.ReceiptDraftRequest true "Draft state"
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /receipts/preview [post]
func (h *ReceiptHandler) Preview(c *gin.Context) {
	var req request.ReceiptDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.receiptService.Preview(c.Request.Context(), draftInputFromRequest(req))
	if err != nil {
		response.Error(c, err)
		return
	}

	sendExport(c, "Preview generated", result)
}

// Finalize handles issuing a receipt
// @Summary Finalize Receipt
// @Description Validate, export and record the receipt, advancing the counter
// @Tags receipts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.ReceiptDraftRequest true "Draft state"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /receipts [post]
func (h *ReceiptHandler) Finalize(c *gin.Context) {
	var req request.ReceiptDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.receiptService.Finalize(c.Request.Context(), draftInputFromRequest(req))
	if err != nil {
		response.Error(c, err)
		return
	}

	if c.Query("download") == "true" {
		c.Header("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
		c.Data(201, "application/pdf", result.PDF)
		return
	}
	response.Created(c, "Receipt issued", exportResultData(result))
}

// Enhance handles improving a service description
// @Summary Enhance Description
// @Description Rewrite a service description via the configured text service
// @Tags receipts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.EnhanceRequest true "Text to enhance"
// @Success 200 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Router /receipts/enhance [post]
func (h *ReceiptHandler) Enhance(c *gin.Context) {
	var req request.EnhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	enhanced, err := h.receiptService.EnhanceDescription(c.Request.Context(), req.Text)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Description enhanced", gin.H{
		"text": enhanced,
	})
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rodamoinho/recibos-api/internal/application/service"
	"github.com/rodamoinho/recibos-api/internal/presentation/http/dto/request"
	"github.com/rodamoinho/recibos-api/internal/presentation/http/dto/response"
	"github.com/rodamoinho/recibos-api/pkg/signature"
)

// SignatureHandler handles signature capture HTTP requests
type SignatureHandler struct {
	signatureService *service.SignatureService
}

// NewSignatureHandler creates a new signature handler
func NewSignatureHandler(signatureService *service.SignatureService) *SignatureHandler {
	return &SignatureHandler{signatureService: signatureService}
}

// Apply handles a batch of pointer events
// @Summary Apply Events
// @Description Feed pointer events into the signature pad
// @Tags signature
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.SignatureEventsRequest true "Pointer events"
// @Success 200 {object} response.APIResponse
// @Router /signature/events [post]
func (h *SignatureHandler) Apply(c *gin.Context) {
	var req request.SignatureEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	events := make([]signature.PointerEvent, 0, len(req.Events))
	for _, ev := range req.Events {
		kind := signature.EventKind(ev.Kind)
		switch kind {
		case signature.PointerDown, signature.PointerMove, signature.PointerUp, signature.PointerLeave:
		default:
			response.BadRequest(c, "Unknown pointer event kind: "+ev.Kind)
			return
		}
		events = append(events, signature.PointerEvent{
			Kind:   kind,
			Sample: signature.Sample{X: ev.X, Y: ev.Y},
		})
	}

	state, err := h.signatureService.Apply(c.Request.Context(), service.ApplyInput{
		DisplayWidth:  req.DisplayWidth,
		DisplayHeight: req.DisplayHeight,
		Events:        events,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Events applied", gin.H{
		"state": state,
		"empty": h.signatureService.Empty(),
	})
}

// Status handles fetching the pad state
// @Summary Signature Status
// @Description Report the pad state and whether anything is drawn
// @Tags signature
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /signature [get]
func (h *SignatureHandler) Status(c *gin.Context) {
	response.OK(c, "Signature status", gin.H{
		"empty": h.signatureService.Empty(),
	})
}

// Clear handles wiping the signature
// @Summary Clear Signature
// @Description Wipe the pad and the stored signature
// @Tags signature
// @Security BearerAuth
// @Success 204
// @Router /signature [delete]
func (h *SignatureHandler) Clear(c *gin.Context) {
	if err := h.signatureService.Clear(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

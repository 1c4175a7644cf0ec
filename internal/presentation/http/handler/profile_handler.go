package handler

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rodamoinho/recibos-api/internal/application/service"
	"github.com/rodamoinho/recibos-api/internal/presentation/http/dto/request"
	"github.com/rodamoinho/recibos-api/internal/presentation/http/dto/response"
)

// maxLogoUpload bounds the accepted logo payload.
const maxLogoUpload = 5 << 20

// ProfileHandler handles provider profile HTTP requests
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get handles fetching the provider profile
// @Summary Get Profile
// @Description Get the stored provider profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	provider, err := h.profileService.GetProfile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved successfully", gin.H{
		"provider": provider,
	})
}

// Update handles updating the provider profile
// @Summary Update Profile
// @Description Update the provider profile; document and phone are re-masked server-side
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.UpdateProfileRequest true "Profile data"
// @Success 200 {object} response.APIResponse
// @Router /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	provider, err := h.profileService.UpdateProfile(c.Request.Context(), service.UpdateProfileInput{
		Name:     req.Name,
		Document: req.Document,
		Address:  req.Address,
		Phone:    req.Phone,
		Email:    req.Email,
		BankInfo: req.BankInfo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile updated successfully", gin.H{
		"provider": provider,
	})
}

// UploadLogo handles uploading the receipt logo
// @Summary Upload Logo
// @Description Upload the logo rendered on receipts
// @Tags profile
// @Security BearerAuth
// @Accept octet-stream
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /profile/logo [post]
func (h *ProfileHandler) UploadLogo(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxLogoUpload))
	if err != nil {
		response.BadRequest(c, "Failed to read request body")
		return
	}
	if len(raw) == 0 {
		response.BadRequest(c, "Logo image is required")
		return
	}

	if err := h.profileService.UploadLogo(c.Request.Context(), raw); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Logo uploaded successfully", nil)
}

// GetLogo handles fetching the stored logo
// @Summary Get Logo
// @Description Download the stored logo as PNG
// @Tags profile
// @Security BearerAuth
// @Produce png
// @Success 200 {file} binary
// @Failure 404 {object} response.APIResponse
// @Router /profile/logo [get]
func (h *ProfileHandler) GetLogo(c *gin.Context) {
	png, err := h.profileService.GetLogoPNG(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(png) == 0 {
		response.NotFound(c, "No logo stored")
		return
	}

	c.Data(200, "image/png", png)
}

// RemoveLogo handles removing the stored logo
// @Summary Remove Logo
// @Description Remove the stored logo
// @Tags profile
// @Security BearerAuth
// @Success 204
// @Router /profile/logo [delete]
func (h *ProfileHandler) RemoveLogo(c *gin.Context) {
	if err := h.profileService.RemoveLogo(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rodamoinho/recibos-api/internal/application/service"
	"github.com/rodamoinho/recibos-api/internal/presentation/http/dto/request"
	"github.com/rodamoinho/recibos-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles admin login
// @Summary Login
// @Description Authenticate the operator and return a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Admin password"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"access_token": token,
		"token_type":   "Bearer",
	})
}

// Logout handles logout
// @Summary Logout
// @Description Logout (client should discard the token)
// @Tags auth
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// JWT is stateless, so we just return success
	// Client should discard the token
	response.OK(c, "Logged out successfully", nil)
}

package request

// LoginRequest represents the admin login request payload
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

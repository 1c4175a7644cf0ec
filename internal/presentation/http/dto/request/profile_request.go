package request

// UpdateProfileRequest represents the provider profile update payload.
// Document and phone may be sent raw or partially masked; the service
// re-derives the canonical mask from the digits either way.
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	BankInfo string `json:"bank_info"`
}

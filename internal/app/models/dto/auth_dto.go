package dto

// RegisterRequest represents admin registration data
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=4,max=50" example:"admin1"`
	Password string `json:"password" binding:"required,min=6" example:"secret1"`
	Email    string `json:"email" binding:"required,email" example:"admin@sms.edu"`
}

// LoginRequest represents admin login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin1"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

// AdminResponse represents an admin account in API responses.
// The stored credential is never echoed back.
type AdminResponse struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"admin1"`
	Email    string `json:"email" example:"admin@sms.edu"`
	Role     string `json:"role" example:"ADMIN"`
}

// UsernameCheckResponse reports whether a username is already taken
type UsernameCheckResponse struct {
	Exists bool `json:"exists" example:"false"`
}

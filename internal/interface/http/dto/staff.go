package dto

// RegisterRequest is the staff registration payload.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=100" example:"librarian@example.com"`
	Password string `json:"password" binding:"required,min=8,max=20" example:"shelf2026"`
	Name     string `json:"name" binding:"required,min=2,max=50" example:"Sam Librarian"`
}

// LoginRequest is the staff login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"librarian@example.com"`
	Password string `json:"password" binding:"required" example:"shelf2026"`
}

// RefreshRequest exchanges a refresh token for a new access token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshResponse carries the replacement access token.
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

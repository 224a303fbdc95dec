package dto

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the access token only; the refresh token travels in
// an HTTP-only cookie.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

type ProfileResponse struct {
	UserID   uint64 `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

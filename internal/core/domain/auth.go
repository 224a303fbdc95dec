package domain

import "time"

// UserPayload is the identity carried by both access and refresh tokens.
type UserPayload struct {
	UserID   uint64
	Email    string
	Username string
}

// RefreshClaims is a verified refresh token.
type RefreshClaims struct {
	UserPayload
	JTI       string
	ExpiresAt time.Time
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RequestContext is attached to every authenticated request.
type RequestContext struct {
	UserID   uint64
	Email    string
	Username string
}

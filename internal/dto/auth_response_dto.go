package dto

import "time"

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token              string       `json:"token"`
	TokenExpiresAt     time.Time    `json:"tokenExpiresAt"`
	RefreshToken       string       `json:"refreshToken"`
	RefreshTokenExpiry time.Time    `json:"refreshTokenExpiry"`
	User               UserResponse `json:"user"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	Token              string    `json:"token"`
	TokenExpiresAt     time.Time `json:"tokenExpiresAt"`
	RefreshToken       string    `json:"refreshToken"`
	RefreshTokenExpiry time.Time `json:"refreshTokenExpiry"`
}

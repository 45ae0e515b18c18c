package dto

import (
	"time"

	appidentity "github.com/shopnet/backend/internal/application/identity"
)

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Company   string `json:"company" binding:"max=100"`
	Position  string `json:"position" binding:"max=100"`
	Type      string `json:"type" binding:"omitempty,oneof=buyer shop"`
}

// RegisterResponse confirms a created account
type RegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ConfirmEmailRequest is the payload for email confirmation
type ConfirmEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required"`
}

// LoginRequest is the payload for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the payload for token refresh
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken           string        `json:"access_token"`
	RefreshToken          string        `json:"refresh_token"`
	TokenType             string        `json:"token_type"`
	AccessTokenExpiresAt  time.Time     `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time     `json:"refresh_token_expires_at"`
	User                  *UserResponse `json:"user,omitempty"`
}

// NewTokenResponse builds a TokenResponse from a login result
func NewTokenResponse(result *appidentity.LoginResult) TokenResponse {
	user := NewUserResponse(result.User)
	return TokenResponse{
		AccessToken:           result.AccessToken,
		RefreshToken:          result.RefreshToken,
		TokenType:             result.TokenType,
		AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
		User:                  &user,
	}
}

// NewRefreshResponse builds a TokenResponse from a refresh result
func NewRefreshResponse(result *appidentity.RefreshTokenResult) TokenResponse {
	return TokenResponse{
		AccessToken:           result.AccessToken,
		RefreshToken:          result.RefreshToken,
		TokenType:             result.TokenType,
		AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
	}
}

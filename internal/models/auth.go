package models

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// TokenTypeBearer is the token type reported to clients
const TokenTypeBearer = "bearer"

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the request shape before any lookup happens
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("Email wajib diisi"),
			is.Email.Error("Format email tidak valid"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("Password wajib diisi"),
			validation.Length(6, 0).Error("Password minimal 6 karakter"),
		),
	)
}

// TokenResponse is the payload returned by login and refresh
type TokenResponse struct {
	User      UserProfile `json:"user"`
	Token     string      `json:"token"`
	TokenType string      `json:"token_type"`
	ExpiresIn int         `json:"expires_in"`
}

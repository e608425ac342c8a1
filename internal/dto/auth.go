// File: internal/dto/auth.go
package dto

import "github.com/google/uuid"

// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required,min=8" example:"Secret123!"`
}

// swagger:model dto.RegisterResponse
type RegisterResponse struct {
	Message string    `json:"message" example:"User registered successfully"`
	UserUID uuid.UUID `json:"user_uid"`
}

// swagger:model dto.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}

// swagger:model dto.LoginResponse
type LoginResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOi..."`
	TokenType   string `json:"token_type" example:"bearer"`
}

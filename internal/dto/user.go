package dto

import (
	"github.com/SscSPs/instant_transfer/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterUserRequest defines the data needed to register a new user.
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest defines the credentials for a login call.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse defines the data returned for a registered user.
type UserResponse struct {
	UserID        string `json:"userID"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	AccountNumber string `json:"accountNumber"`
	IsVerified    bool   `json:"isVerified"`
}

// UserDetailsResponse is the profile view: user identity plus wallet balance.
type UserDetailsResponse struct {
	Username      string          `json:"username"`
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
	CurrencyCode  string          `json:"currencyCode,omitempty"`
}

// ToUserResponse converts a domain User to a UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		Username:      u.Username,
		Email:         u.Email,
		AccountNumber: u.AccountNumber(),
		IsVerified:    u.IsVerified,
	}
}

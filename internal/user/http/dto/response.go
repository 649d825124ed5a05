// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserResponse represents the API response for a user account.
// It excludes the password hash and provides a clean external
// representation of the user domain model
type UserResponse struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	Username        string    `json:"username"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`
	Role            string    `json:"role"`
	IsPremium       bool      `json:"is_premium"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AuthResponse represents the API response for signup and login: the
// account plus a freshly minted session token
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

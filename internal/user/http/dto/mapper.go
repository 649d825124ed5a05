// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	"github.com/allisson/karaoke/internal/user/domain"
	"github.com/allisson/karaoke/internal/user/usecase"
)

// ToSignupInput converts a SignupRequest DTO to a SignupInput use case input
func ToSignupInput(req SignupRequest) usecase.SignupInput {
	return usecase.SignupInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	}
}

// ToLoginInput converts a LoginRequest DTO to a LoginInput use case input
func ToLoginInput(req LoginRequest) usecase.LoginInput {
	return usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}
}

// ToUserResponse converts a domain User model to a UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		Username:        user.Username,
		ProfileImageURL: user.ProfileImageURL,
		Role:            string(user.Role),
		IsPremium:       user.IsPremium,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

// ToAuthResponse converts a domain User and session token to an AuthResponse DTO
func ToAuthResponse(user *domain.User, token string) AuthResponse {
	return AuthResponse{
		User:  ToUserResponse(user),
		Token: token,
	}
}

package dto

import (
	"time"

	"github.com/google/uuid"

	"liferiver_backend/internals/features/users/user/model"
)

// ============================
// Request DTO
// ============================

type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	FullName *string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// UpdateMeRequest: partial update — hanya field yang dikirim yang diubah.
type UpdateMeRequest struct {
	Email      *string `json:"email" validate:"omitempty,email"`
	FullName   *string `json:"full_name"`
	Phone      *string `json:"phone"`
	MemberType *string `json:"member_type" validate:"omitempty,oneof=Member Seeker"`
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// ============================
// Response DTO
// ============================

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserDTO struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	FullName   *string    `json:"full_name"`
	Phone      *string    `json:"phone"`
	Role       string     `json:"role"`
	MemberType string     `json:"member_type"`
	SiteID     *uuid.UUID `json:"site_id"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ============================
// Converter
// ============================

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		ID:         m.ID,
		Email:      m.Email,
		FullName:   m.FullName,
		Phone:      m.Phone,
		Role:       m.Role,
		MemberType: m.MemberType,
		SiteID:     m.SiteID,
		CreatedAt:  m.CreatedAt,
	}
}

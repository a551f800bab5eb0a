package dto

import (
	"time"

	"github.com/google/uuid"

	"liferiver_backend/internals/features/users/user/model"
)

// ============================
// Response DTO
// ============================

type AdminUserDTO struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  *string    `json:"full_name"`
	Role      string     `json:"role"`
	SiteID    *uuid.UUID `json:"site_id"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

// ============================
// Request DTO
// ============================

// AdminUserUpdateRequest: partial update, field nil tidak disentuh.
type AdminUserUpdateRequest struct {
	FullName *string    `json:"full_name"`
	Role     *string    `json:"role" validate:"omitempty,oneof=Admin CenterStaff BranchStaff Leader Member"`
	SiteID   *uuid.UUID `json:"site_id"`
	IsActive *bool      `json:"is_active"`
}

type AdminResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// ============================
// Converter
// ============================

func ToAdminUserDTO(m model.UserModel) AdminUserDTO {
	return AdminUserDTO{
		ID:        m.ID,
		Email:     m.Email,
		FullName:  m.FullName,
		Role:      m.Role,
		SiteID:    m.SiteID,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

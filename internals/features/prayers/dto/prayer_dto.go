package dto

import (
	"time"

	"github.com/google/uuid"

	"liferiver_backend/internals/features/prayers/model"
)

type CreatePrayerRequest struct {
	Content      string     `json:"content" validate:"required"`
	PrivacyLevel *string    `json:"privacy_level" validate:"omitempty,oneof=Private Group Public"`
	SiteID       *uuid.UUID `json:"site_id"`
}

// Moderasi: PATCH hanya boleh mengubah status.
type PrayerStatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Approved Archived"`
}

type PrayerDTO struct {
	ID           uuid.UUID  `json:"id"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	SiteID       *uuid.UUID `json:"site_id,omitempty"`
	Content      string     `json:"content"`
	PrivacyLevel string     `json:"privacy_level"`
	Status       string     `json:"status"`
	AmenCount    int        `json:"amen_count"`
	CreatedAt    time.Time  `json:"created_at"`
}

func ToPrayerDTO(m model.PrayerModel) PrayerDTO {
	return PrayerDTO{
		ID:           m.ID,
		UserID:       m.UserID,
		SiteID:       m.SiteID,
		Content:      m.Content,
		PrivacyLevel: m.PrivacyLevel,
		Status:       m.Status,
		AmenCount:    m.AmenCount,
		CreatedAt:    m.CreatedAt,
	}
}

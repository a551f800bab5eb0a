package dto

import (
	"time"

	"github.com/google/uuid"

	"liferiver_backend/internals/features/content/life_bulletin/model"
)

const BulletinDateLayout = "2006-01-02"

type CreateLifeBulletinRequest struct {
	SiteID       uuid.UUID `json:"site_id" validate:"required"`
	BulletinDate string    `json:"bulletin_date" validate:"required,datetime=2006-01-02"`
	Content      string    `json:"content" validate:"required"`
	VideoURL     *string   `json:"video_url" validate:"omitempty,url"`
	Status       *string   `json:"status" validate:"omitempty,oneof=Draft Published"`
}

type UpdateLifeBulletinRequest struct {
	BulletinDate *string `json:"bulletin_date" validate:"omitempty,datetime=2006-01-02"`
	Content      *string `json:"content"`
	VideoURL     *string `json:"video_url"`
	Status       *string `json:"status" validate:"omitempty,oneof=Draft Published"`
}

type LifeBulletinDTO struct {
	ID           uuid.UUID `json:"id"`
	SiteID       uuid.UUID `json:"site_id"`
	BulletinDate string    `json:"bulletin_date"`
	Content      string    `json:"content"`
	VideoURL     *string   `json:"video_url,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToLifeBulletinDTO(m model.LifeBulletinModel) LifeBulletinDTO {
	return LifeBulletinDTO{
		ID:           m.ID,
		SiteID:       m.SiteID,
		BulletinDate: m.BulletinDate.Format(BulletinDateLayout),
		Content:      m.Content,
		VideoURL:     m.VideoURL,
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

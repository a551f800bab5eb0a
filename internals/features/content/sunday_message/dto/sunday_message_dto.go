package dto

import (
	"time"

	"github.com/google/uuid"

	"liferiver_backend/internals/features/content/sunday_message/model"
)

const MessageDateLayout = "2006-01-02"

type CreateSundayMessageRequest struct {
	SiteID      uuid.UUID `json:"site_id" validate:"required"`
	MessageDate string    `json:"message_date" validate:"required,datetime=2006-01-02"`
	Title       string    `json:"title" validate:"required"`
	Speaker     *string   `json:"speaker"`
	YoutubeURL  string    `json:"youtube_url" validate:"required,url"`
	Description *string   `json:"description"`
}

type UpdateSundayMessageRequest struct {
	MessageDate *string `json:"message_date" validate:"omitempty,datetime=2006-01-02"`
	Title       *string `json:"title"`
	Speaker     *string `json:"speaker"`
	YoutubeURL  *string `json:"youtube_url" validate:"omitempty,url"`
	Description *string `json:"description"`
}

type SundayMessageDTO struct {
	ID          uuid.UUID `json:"id"`
	SiteID      uuid.UUID `json:"site_id"`
	MessageDate string    `json:"message_date"`
	Title       string    `json:"title"`
	Speaker     *string   `json:"speaker,omitempty"`
	YoutubeURL  string    `json:"youtube_url"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToSundayMessageDTO(m model.SundayMessageModel) SundayMessageDTO {
	return SundayMessageDTO{
		ID:          m.ID,
		SiteID:      m.SiteID,
		MessageDate: m.MessageDate.Format(MessageDateLayout),
		Title:       m.Title,
		Speaker:     m.Speaker,
		YoutubeURL:  m.YoutubeURL,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SundayMessageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SiteID      uuid.UUID `gorm:"type:uuid;not null" json:"site_id"`
	MessageDate time.Time `gorm:"type:date;not null" json:"message_date"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Speaker     *string   `gorm:"size:255" json:"speaker,omitempty"`
	YoutubeURL  string    `gorm:"size:500;not null" json:"youtube_url"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SundayMessageModel) TableName() string {
	return "sunday_messages"
}

func (m *SundayMessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

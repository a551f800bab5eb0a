package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteModel adalah batas tenant: semua konten staff dan user
// (opsional) terikat ke satu site.
type SiteModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code       string    `gorm:"size:50;unique;not null" json:"code"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	ThemeColor *string   `gorm:"size:20" json:"theme_color,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SiteModel) TableName() string {
	return "sites"
}

func (s *SiteModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

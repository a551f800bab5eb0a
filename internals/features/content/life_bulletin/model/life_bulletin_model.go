package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "Draft"
	StatusPublished = "Published"
)

type LifeBulletinModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SiteID       uuid.UUID `gorm:"type:uuid;not null" json:"site_id"`
	BulletinDate time.Time `gorm:"type:date;not null" json:"bulletin_date"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	VideoURL     *string   `gorm:"size:500" json:"video_url,omitempty"`
	Status       string    `gorm:"type:varchar(20);not null;default:'Draft'" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LifeBulletinModel) TableName() string {
	return "life_bulletins"
}

func (b *LifeBulletinModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = StatusDraft
	}
	return nil
}

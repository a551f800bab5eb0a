package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PrivacyPrivate = "Private"
	PrivacyGroup   = "Group"
	PrivacyPublic  = "Public"

	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusArchived = "Archived"
)

type PrayerModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
	SiteID       *uuid.UUID `gorm:"type:uuid" json:"site_id,omitempty"`
	Content      string     `gorm:"type:text;not null" json:"content"`
	PrivacyLevel string     `gorm:"type:varchar(20);not null;default:'Group'" json:"privacy_level"`
	Status       string     `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	AmenCount    int        `gorm:"not null;default:0" json:"amen_count"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (PrayerModel) TableName() string {
	return "prayer_requests"
}

func (p *PrayerModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.PrivacyLevel == "" {
		p.PrivacyLevel = PrivacyGroup
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	return nil
}

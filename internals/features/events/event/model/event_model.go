package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "Draft"
	StatusPublished = "Published"
	StatusClosed    = "Closed"
)

// EventModel merepresentasikan tabel events.
// Catatan: capacity & waitlist_enabled disimpan tapi TIDAK di-enforce di
// service layer manapun (mengikuti sistem asal; gap ini disengaja dibiarkan).
type EventModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SiteID          *uuid.UUID `gorm:"type:uuid" json:"site_id,omitempty"`
	Title           string     `gorm:"size:255;not null" json:"title"`
	Description     *string    `gorm:"type:text" json:"description,omitempty"`
	PosterURL       *string    `gorm:"size:500" json:"poster_url,omitempty"`
	StartAt         time.Time  `gorm:"not null" json:"start_at"`
	EndAt           *time.Time `json:"end_at,omitempty"`
	Capacity        *int       `json:"capacity,omitempty"`
	WaitlistEnabled bool       `gorm:"not null;default:false" json:"waitlist_enabled"`
	Status          string     `gorm:"type:varchar(20);not null;default:'Draft'" json:"status"`
	CreatedBy       *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (EventModel) TableName() string {
	return "events"
}

func (e *EventModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Status == "" {
		e.Status = StatusDraft
	}
	return nil
}

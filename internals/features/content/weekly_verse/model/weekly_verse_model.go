package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeeklyVerseModel: satu ayat per (site, week_start). Keunikan dicek
// di controller sebelum insert, bukan lewat unique constraint.
type WeeklyVerseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SiteID      uuid.UUID `gorm:"type:uuid;not null" json:"site_id"`
	WeekStart   time.Time `gorm:"type:date;not null" json:"week_start"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	Reference   string    `gorm:"size:255;not null" json:"reference"`
	ReadingPlan *string   `gorm:"size:255" json:"reading_plan,omitempty"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WeeklyVerseModel) TableName() string {
	return "weekly_verses"
}

func (v *WeeklyVerseModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

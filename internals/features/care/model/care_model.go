package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SubjectTypeMember    = "Member"
	SubjectTypeSeeker    = "Seeker"
	SubjectTypeFamily    = "Family"
	SubjectTypeCommunity = "Community"

	SubjectStatusActive = "Active"
	SubjectStatusPaused = "Paused"
	SubjectStatusClosed = "Closed"
)

// CareSubjectModel: orang/keluarga/komunitas yang dipantau pastoral.
type CareSubjectModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SiteID      *uuid.UUID `gorm:"type:uuid" json:"site_id,omitempty"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	SubjectType string     `gorm:"type:varchar(20);not null;default:'Member'" json:"subject_type"`
	Status      string     `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (CareSubjectModel) TableName() string {
	return "care_subjects"
}

func (s *CareSubjectModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.SubjectType == "" {
		s.SubjectType = SubjectTypeMember
	}
	if s.Status == "" {
		s.Status = SubjectStatusActive
	}
	return nil
}

// CareLogModel: catatan kunjungan/percakapan dengan skor opsional.
type CareLogModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectID      uuid.UUID  `gorm:"type:uuid;not null" json:"subject_id"`
	CreatedBy      *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	Note           string     `gorm:"type:text;not null" json:"note"`
	MoodScore      *int       `json:"mood_score,omitempty"`
	SpiritualScore *int       `json:"spiritual_score,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (CareLogModel) TableName() string {
	return "care_logs"
}

func (l *CareLogModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

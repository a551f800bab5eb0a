package dto

import (
	"time"

	"github.com/google/uuid"

	"liferiver_backend/internals/features/care/model"
)

type CreateCareSubjectRequest struct {
	Name        string     `json:"name" validate:"required"`
	SubjectType *string    `json:"subject_type" validate:"omitempty,oneof=Member Seeker Family Community"`
	Status      *string    `json:"status" validate:"omitempty,oneof=Active Paused Closed"`
	SiteID      *uuid.UUID `json:"site_id"`
}

type CreateCareLogRequest struct {
	SubjectID      uuid.UUID `json:"subject_id" validate:"required"`
	Note           string    `json:"note" validate:"required"`
	MoodScore      *int      `json:"mood_score" validate:"omitempty,min=1,max=10"`
	SpiritualScore *int      `json:"spiritual_score" validate:"omitempty,min=1,max=10"`
}

type CareSubjectDTO struct {
	ID          uuid.UUID  `json:"id"`
	SiteID      *uuid.UUID `json:"site_id,omitempty"`
	Name        string     `json:"name"`
	SubjectType string     `json:"subject_type"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

type CareLogDTO struct {
	ID             uuid.UUID  `json:"id"`
	SubjectID      uuid.UUID  `json:"subject_id"`
	CreatedBy      *uuid.UUID `json:"created_by,omitempty"`
	Note           string     `json:"note"`
	MoodScore      *int       `json:"mood_score,omitempty"`
	SpiritualScore *int       `json:"spiritual_score,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func ToCareSubjectDTO(m model.CareSubjectModel) CareSubjectDTO {
	return CareSubjectDTO{
		ID:          m.ID,
		SiteID:      m.SiteID,
		Name:        m.Name,
		SubjectType: m.SubjectType,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}
}

func ToCareLogDTO(m model.CareLogModel) CareLogDTO {
	return CareLogDTO{
		ID:             m.ID,
		SubjectID:      m.SubjectID,
		CreatedBy:      m.CreatedBy,
		Note:           m.Note,
		MoodScore:      m.MoodScore,
		SpiritualScore: m.SpiritualScore,
		CreatedAt:      m.CreatedAt,
	}
}

package dto

import (
	"time"

	"github.com/google/uuid"

	"liferiver_backend/internals/features/content/weekly_verse/model"
)

const WeekStartLayout = "2006-01-02"

type CreateWeeklyVerseRequest struct {
	SiteID      uuid.UUID `json:"site_id" validate:"required"`
	WeekStart   string    `json:"week_start" validate:"required,datetime=2006-01-02"`
	Text        string    `json:"text" validate:"required"`
	Reference   string    `json:"reference" validate:"required"`
	ReadingPlan *string   `json:"reading_plan"`
}

type UpdateWeeklyVerseRequest struct {
	WeekStart   *string `json:"week_start" validate:"omitempty,datetime=2006-01-02"`
	Text        *string `json:"text"`
	Reference   *string `json:"reference"`
	ReadingPlan *string `json:"reading_plan"`
}

type WeeklyVerseDTO struct {
	ID          uuid.UUID `json:"id"`
	SiteID      uuid.UUID `json:"site_id"`
	WeekStart   string    `json:"week_start"`
	Text        string    `json:"text"`
	Reference   string    `json:"reference"`
	ReadingPlan *string   `json:"reading_plan,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToWeeklyVerseDTO(m model.WeeklyVerseModel) WeeklyVerseDTO {
	return WeeklyVerseDTO{
		ID:          m.ID,
		SiteID:      m.SiteID,
		WeekStart:   m.WeekStart.Format(WeekStartLayout),
		Text:        m.Text,
		Reference:   m.Reference,
		ReadingPlan: m.ReadingPlan,
		UpdatedAt:   m.UpdatedAt,
	}
}

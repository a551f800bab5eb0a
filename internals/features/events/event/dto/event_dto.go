package dto

import (
	"time"

	"github.com/google/uuid"

	"liferiver_backend/internals/features/events/event/model"
)

// ============================
// Response DTO
// ============================

type EventDTO struct {
	ID              uuid.UUID  `json:"id"`
	SiteID          *uuid.UUID `json:"site_id"`
	Title           string     `json:"title"`
	Description     *string    `json:"description"`
	PosterURL       *string    `json:"poster_url"`
	StartAt         time.Time  `json:"start_at"`
	EndAt           *time.Time `json:"end_at"`
	Capacity        *int       `json:"capacity"`
	WaitlistEnabled bool       `json:"waitlist_enabled"`
	Status          string     `json:"status"`
	CreatedBy       *uuid.UUID `json:"created_by"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateEventRequest struct {
	SiteID          *uuid.UUID `json:"site_id"`
	Title           string     `json:"title" validate:"required,min=1"`
	Description     *string    `json:"description"`
	StartAt         time.Time  `json:"start_at" validate:"required"`
	EndAt           *time.Time `json:"end_at"`
	Capacity        *int       `json:"capacity"`
	WaitlistEnabled bool       `json:"waitlist_enabled"`
	Status          *string    `json:"status" validate:"omitempty,oneof=Draft Published Closed"`
}

// ============================
// Update Request DTO (partial)
// ============================

type UpdateEventRequest struct {
	SiteID          *uuid.UUID `json:"site_id"`
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	PosterURL       *string    `json:"poster_url"`
	StartAt         *time.Time `json:"start_at"`
	EndAt           *time.Time `json:"end_at"`
	Capacity        *int       `json:"capacity"`
	WaitlistEnabled *bool      `json:"waitlist_enabled"`
	Status          *string    `json:"status" validate:"omitempty,oneof=Draft Published Closed"`
}

// Apply menerapkan hanya field yang hadir di payload.
func (r UpdateEventRequest) Apply(m *model.EventModel) {
	if r.SiteID != nil {
		m.SiteID = r.SiteID
	}
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.PosterURL != nil {
		m.PosterURL = r.PosterURL
	}
	if r.StartAt != nil {
		m.StartAt = *r.StartAt
	}
	if r.EndAt != nil {
		m.EndAt = r.EndAt
	}
	if r.Capacity != nil {
		m.Capacity = r.Capacity
	}
	if r.WaitlistEnabled != nil {
		m.WaitlistEnabled = *r.WaitlistEnabled
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
}

// ============================
// Converter
// ============================

func ToEventDTO(m model.EventModel) EventDTO {
	return EventDTO{
		ID:              m.ID,
		SiteID:          m.SiteID,
		Title:           m.Title,
		Description:     m.Description,
		PosterURL:       m.PosterURL,
		StartAt:         m.StartAt,
		EndAt:           m.EndAt,
		Capacity:        m.Capacity,
		WaitlistEnabled: m.WaitlistEnabled,
		Status:          m.Status,
		CreatedBy:       m.CreatedBy,
		CreatedAt:       m.CreatedAt,
	}
}

package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"liferiver_backend/internals/features/events/registration/model"
)

// =======================
// 🔹 Request
// =======================

type CreateRegistrationRequest struct {
	EventID      uuid.UUID          `json:"event_id" validate:"required"`
	TicketCount  *int               `json:"ticket_count" validate:"omitempty,min=1"`
	IsProxy      *bool              `json:"is_proxy"`
	ProxyEntries []model.ProxyEntry `json:"proxy_entries" validate:"omitempty,dive"`
}

// UpdateRegistrationRequest: semua field pointer supaya partial update
// hanya menyentuh field yang memang dikirim client.
type UpdateRegistrationRequest struct {
	TicketCount  *int                `json:"ticket_count" validate:"omitempty,min=1"`
	IsProxy      *bool               `json:"is_proxy"`
	ProxyEntries *[]model.ProxyEntry `json:"proxy_entries" validate:"omitempty,dive"`
	Status       *string             `json:"status" validate:"omitempty,oneof=Pending Confirmed Waitlisted Cancelled"`
}

func (r UpdateRegistrationRequest) Apply(m *model.RegistrationModel) {
	if r.TicketCount != nil {
		m.TicketCount = *r.TicketCount
	}
	if r.IsProxy != nil {
		m.IsProxy = *r.IsProxy
	}
	if r.ProxyEntries != nil {
		m.ProxyEntries = datatypes.NewJSONSlice(*r.ProxyEntries)
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
}

// =======================
// 🔹 Response
// =======================

type RegistrationDTO struct {
	ID           uuid.UUID          `json:"id"`
	EventID      uuid.UUID          `json:"event_id"`
	UserID       *uuid.UUID         `json:"user_id,omitempty"`
	Status       string             `json:"status"`
	TicketCount  int                `json:"ticket_count"`
	IsProxy      bool               `json:"is_proxy"`
	ProxyEntries []model.ProxyEntry `json:"proxy_entries"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// AdminRegistrationDTO: baris hasil join registrasi + user + event
// untuk tampilan daftar peserta di sisi admin. ID berbentuk string
// karena hasil scan join, bukan model penuh.
type AdminRegistrationDTO struct {
	ID           string             `json:"id"`
	EventID      string             `json:"event_id"`
	UserID       *string            `json:"user_id"`
	Status       string             `json:"status"`
	TicketCount  int                `json:"ticket_count"`
	IsProxy      bool               `json:"is_proxy"`
	ProxyEntries []model.ProxyEntry `json:"proxy_entries"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	UserFullName *string            `json:"user_full_name"`
	UserEmail    *string            `json:"user_email"`
	UserPhone    *string            `json:"user_phone"`
	EventTitle   string             `json:"event_title"`
}

func ToRegistrationDTO(m model.RegistrationModel) RegistrationDTO {
	entries := []model.ProxyEntry(m.ProxyEntries)
	if entries == nil {
		entries = []model.ProxyEntry{}
	}
	return RegistrationDTO{
		ID:           m.ID,
		EventID:      m.EventID,
		UserID:       m.UserID,
		Status:       m.Status,
		TicketCount:  m.TicketCount,
		IsProxy:      m.IsProxy,
		ProxyEntries: entries,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

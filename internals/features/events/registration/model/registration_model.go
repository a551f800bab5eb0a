package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusPending    = "Pending"
	StatusConfirmed  = "Confirmed"
	StatusWaitlisted = "Waitlisted"
	StatusCancelled  = "Cancelled"
)

// ProxyEntry adalah peserta titipan (didaftarkan atas nama orang lain)
// yang menempel di satu registrasi. Disimpan sebagai JSON, bukan tabel.
type ProxyEntry struct {
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Relation string `json:"relation,omitempty"`
	Note     string `json:"note,omitempty"`
}

// RegistrationModel merepresentasikan tabel event_registrations.
// Invariant: maksimal satu registrasi per (user, event) — dicek di
// controller sebelum insert, TANPA unique constraint di DB, jadi
// submit paralel bisa lolos dua-duanya (race ini disengaja dibiarkan).
type RegistrationModel struct {
	ID           uuid.UUID                       `gorm:"type:uuid;primaryKey" json:"id"`
	EventID      uuid.UUID                       `gorm:"type:uuid;not null" json:"event_id"`
	UserID       *uuid.UUID                      `gorm:"type:uuid" json:"user_id,omitempty"`
	Status       string                          `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	TicketCount  int                             `gorm:"not null;default:1" json:"ticket_count"`
	IsProxy      bool                            `gorm:"not null;default:false" json:"is_proxy"`
	ProxyEntries datatypes.JSONSlice[ProxyEntry] `gorm:"column:proxy_entries" json:"proxy_entries"`
	CreatedAt    time.Time                       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time                       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RegistrationModel) TableName() string {
	return "event_registrations"
}

func (r *RegistrationModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = StatusPending
	}
	if r.TicketCount == 0 {
		r.TicketCount = 1
	}
	return nil
}

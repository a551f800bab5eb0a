package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DashboardSummaryModel: satu snapshot JSON per user, ditulis proses lain.
// Di sini hanya dibaca opportunistik.
type DashboardSummaryModel struct {
	UserID    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	Data      datatypes.JSON `gorm:"not null" json:"data"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DashboardSummaryModel) TableName() string {
	return "dashboard_summaries"
}

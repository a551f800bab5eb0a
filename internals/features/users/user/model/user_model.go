package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"liferiver_backend/internals/constants"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string     `gorm:"size:255;unique;not null;index" json:"email"`
	PasswordHash string     `gorm:"column:password_hash;not null" json:"-"`
	FullName     *string    `gorm:"size:255" json:"full_name,omitempty"`
	Phone        *string    `gorm:"size:50" json:"phone,omitempty"`
	Role         string     `gorm:"type:varchar(20);not null;default:'Member'" json:"role"`
	MemberType   string     `gorm:"type:varchar(20);not null;default:'Member'" json:"member_type"`
	SiteID       *uuid.UUID `gorm:"type:uuid" json:"site_id,omitempty"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = constants.RoleMember
	}
	if u.MemberType == "" {
		u.MemberType = constants.MemberTypeMember
	}
	return nil
}

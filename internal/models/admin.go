package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminUser mirrors one auth-provider user. Rows are written only by the
// webhook consumer and the migrate-admins CLI; the service never creates
// admin users on its own.
type AdminUser struct {
	ID         string         `gorm:"type:char(36);primaryKey" json:"id"`
	ExternalID string         `gorm:"size:200;uniqueIndex;not null" json:"external_id"`
	Email      string         `gorm:"size:200;not null" json:"email"`
	GivenName  string         `gorm:"size:200" json:"given_name"`
	FamilyName string         `gorm:"size:200" json:"family_name"`
	Roles      datatypes.JSON `gorm:"type:json" json:"roles"`
	Picture    string         `gorm:"size:1000" json:"picture"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (a *AdminUser) BeforeCreate(tx *gorm.DB) error { ensureID(&a.ID); return nil }

func (AdminUser) TableName() string { return "admin_users" }

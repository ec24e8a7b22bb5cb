package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Submission status values. The enum is flat: any admin-triggered
// transition between members is allowed, and none is terminal.
const (
	SubmissionStatusNew       = "new"
	SubmissionStatusRead      = "read"
	SubmissionStatusResponded = "responded"
	SubmissionStatusSpam      = "spam"
	SubmissionStatusArchived  = "archived"
)

// ValidSubmissionStatus reports whether s is a member of the status enum.
func ValidSubmissionStatus(s string) bool {
	switch s {
	case SubmissionStatusNew, SubmissionStatusRead, SubmissionStatusResponded,
		SubmissionStatusSpam, SubmissionStatusArchived:
		return true
	}
	return false
}

// ContactSubmission is an append-only visitor contact-form row. Visitors
// never update it; admins update status and notes only.
type ContactSubmission struct {
	ID           string         `gorm:"type:char(36);primaryKey" json:"id"`
	Name         string         `gorm:"size:200;not null" json:"name"`
	Email        string         `gorm:"size:200;not null" json:"email"`
	Phone        string         `gorm:"size:100" json:"phone"`
	Message      string         `gorm:"type:text;not null" json:"message"`
	Status       string         `gorm:"size:20;not null;default:new;index" json:"status"`
	IsSpam       bool           `gorm:"not null;default:false" json:"is_spam"`
	SpamMetadata datatypes.JSON `gorm:"type:json" json:"spam_metadata"`
	AdminNotes   string         `gorm:"type:text" json:"admin_notes"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Company is an office card on the contact page.
type Company struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Region    string    `gorm:"size:200;not null" json:"region"`
	Address   string    `gorm:"size:1000;not null" json:"address"`
	Phone     string    `gorm:"size:100;not null" json:"phone"`
	Email     string    `gorm:"size:200;not null" json:"email"`
	MapURL    string    `gorm:"size:1000" json:"map_url"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapSettings is the contact-page map configuration. Readers expect at most
// one active row.
type MapSettings struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	EmbedURL  string    `gorm:"size:2000;not null" json:"embed_url"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Zoom      int       `gorm:"not null;default:12" json:"zoom"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FormSettings configures one public form variant. Fields holds the
// field list as schemaless JSON edited by the admin panel.
type FormSettings struct {
	ID             string         `gorm:"type:char(36);primaryKey" json:"id"`
	FormKey        string         `gorm:"size:100;not null;index" json:"form_key"`
	Title          string         `gorm:"size:500;not null" json:"title"`
	Subtitle       string         `gorm:"size:500" json:"subtitle"`
	Fields         datatypes.JSON `gorm:"type:json" json:"fields"`
	SuccessMessage string         `gorm:"size:1000" json:"success_message"`
	NotifyEmail    string         `gorm:"size:200" json:"notify_email"`
	IsActive       bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// PrivacyPolicy is a singleton content row.
type PrivacyPolicy struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Title     string    `gorm:"size:500;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *ContactSubmission) BeforeCreate(tx *gorm.DB) error { ensureID(&c.ID); return nil }
func (c *Company) BeforeCreate(tx *gorm.DB) error           { ensureID(&c.ID); return nil }
func (m *MapSettings) BeforeCreate(tx *gorm.DB) error       { ensureID(&m.ID); return nil }
func (f *FormSettings) BeforeCreate(tx *gorm.DB) error      { ensureID(&f.ID); return nil }
func (p *PrivacyPolicy) BeforeCreate(tx *gorm.DB) error     { ensureID(&p.ID); return nil }

func (ContactSubmission) TableName() string { return "contact_submissions" }
func (Company) TableName() string           { return "companies" }
func (MapSettings) TableName() string       { return "map_settings" }
func (FormSettings) TableName() string      { return "form_settings" }
func (PrivacyPolicy) TableName() string     { return "privacy_policies" }

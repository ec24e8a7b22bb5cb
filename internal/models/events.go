package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EventCategory groups event submissions (trade fair, congress, expo).
// Deleting a category is blocked while submissions still reference it.
type EventCategory struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Slug      string    `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventSubmission is a visitor stand-request for a specific event.
// Same append-only lifecycle as ContactSubmission.
type EventSubmission struct {
	ID           string         `gorm:"type:char(36);primaryKey" json:"id"`
	Name         string         `gorm:"size:200;not null" json:"name"`
	Email        string         `gorm:"size:200;not null" json:"email"`
	Phone        string         `gorm:"size:100" json:"phone"`
	EventName    string         `gorm:"size:500;not null" json:"event_name"`
	EventDate    *time.Time     `json:"event_date"`
	City         string         `gorm:"size:200" json:"city"`
	StandSize    string         `gorm:"size:100" json:"stand_size"`
	Message      string         `gorm:"type:text" json:"message"`
	CategoryID   string         `gorm:"type:char(36);index" json:"category_id"`
	Status       string         `gorm:"size:20;not null;default:new;index" json:"status"`
	IsSpam       bool           `gorm:"not null;default:false" json:"is_spam"`
	SpamMetadata datatypes.JSON `gorm:"type:json" json:"spam_metadata"`
	AdminNotes   string         `gorm:"type:text" json:"admin_notes"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	Category *EventCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (e *EventCategory) BeforeCreate(tx *gorm.DB) error   { ensureID(&e.ID); return nil }
func (e *EventSubmission) BeforeCreate(tx *gorm.DB) error { ensureID(&e.ID); return nil }

func (EventCategory) TableName() string   { return "event_categories" }
func (EventSubmission) TableName() string { return "event_submissions" }

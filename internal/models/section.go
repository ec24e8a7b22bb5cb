package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PageSection is one named, independently toggleable block of page content.
// Readers expect at most one active row per (page, section) pair; the pair
// is enforced by convention, not by a unique constraint, so inactive
// variants of the same section can coexist.
type PageSection struct {
	ID         string         `gorm:"type:char(36);primaryKey" json:"id"`
	Page       string         `gorm:"size:100;not null;index:idx_page_section" json:"page"`
	Section    string         `gorm:"size:100;not null;index:idx_page_section" json:"section"`
	Heading    string         `gorm:"size:500" json:"heading"`
	Subheading string         `gorm:"size:500" json:"subheading"`
	Body       string         `gorm:"type:text" json:"body"`
	Images     datatypes.JSON `gorm:"type:json" json:"images"`
	Extra      datatypes.JSON `gorm:"type:json" json:"extra"`
	IsActive   bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	Items []SectionItem `gorm:"foreignKey:SectionID" json:"items,omitempty"`
}

// SectionItem is an ordered child row of a section: an FAQ entry, a service
// card, a feature bullet. Ordered by SortOrder, ties broken by insertion.
type SectionItem struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	SectionID string    `gorm:"type:char(36);not null;index" json:"section_id"`
	Title     string    `gorm:"size:500;not null" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	Icon      string    `gorm:"size:100" json:"icon"`
	ImageURL  string    `gorm:"size:1000" json:"image_url"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *PageSection) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

func (s *SectionItem) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

func (PageSection) TableName() string {
	return "page_sections"
}

func (SectionItem) TableName() string {
	return "section_items"
}
